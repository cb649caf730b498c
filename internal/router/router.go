package router

import (
	"github.com/knaranjo357/icfes/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen in place.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// ResetScreenMsg requests the router to drop the whole stack and start
// over from one screen. Sent after login, logout and exam completion,
// where back-navigation into the old stack would be wrong.
type ResetScreenMsg struct {
	Screen screen.Screen
}

// AuthState reports whether a session is active. The router consults it
// before showing any screen that requires authentication.
type AuthState interface {
	Authenticated() bool
}

// Router manages a stack of screens gated by authentication state.
type Router struct {
	stack    []screen.Screen
	auth     AuthState
	fallback func() screen.Screen
}

// New creates a Router with the given initial screen. fallback builds the
// public screen shown when an auth-only screen is requested without a
// session.
func New(initial screen.Screen, auth AuthState, fallback func() screen.Screen) *Router {
	return &Router{
		stack:    []screen.Screen{initial},
		auth:     auth,
		fallback: fallback,
	}
}

// Push adds a screen on top of the stack and calls its Init(). Pushing an
// auth-only screen while unauthenticated resets to the fallback instead.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	if !r.permitted(s) {
		return r.Reset(r.fallback())
	}
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace swaps the active screen in place and calls the new screen's
// Init(). Subject to the same auth gate as Push.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if !r.permitted(s) {
		return r.Reset(r.fallback())
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Reset drops the entire stack and starts over from s.
func (r *Router) Reset(s screen.Screen) tea.Cmd {
	if !r.permitted(s) {
		s = r.fallback()
	}
	r.stack = []screen.Screen{s}
	return s.Init()
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation
// messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case ResetScreenMsg:
		return r.Reset(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	// A session can lapse underneath an auth-only screen (logout from a
	// key handler); re-check before delivering.
	if !r.permitted(active) {
		return r.Reset(r.fallback())
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

func (r *Router) permitted(s screen.Screen) bool {
	req, ok := s.(screen.AuthRequirer)
	if !ok || !req.RequiresAuth() {
		return true
	}
	return r.auth == nil || r.auth.Authenticated()
}

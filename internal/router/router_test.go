package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/knaranjo357/icfes/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	initRan  bool
	authOnly bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) RequiresAuth() bool                      { return s.authOnly }

// stubAuth is a toggleable AuthState.
type stubAuth struct {
	authed bool
}

func (a *stubAuth) Authenticated() bool { return a.authed }

func newTestRouter(initial screen.Screen, auth *stubAuth) *Router {
	return New(initial, auth, func() screen.Screen {
		return &stubScreen{title: "landing"}
	})
}

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := newTestRouter(s1, &stubAuth{})

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := newTestRouter(s1, &stubAuth{})

	r.Push(&stubScreen{title: "second"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := newTestRouter(&stubScreen{title: "first"}, &stubAuth{})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after bottom pop, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := newTestRouter(&stubScreen{title: "first"}, &stubAuth{})

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestReset(t *testing.T) {
	r := newTestRouter(&stubScreen{title: "first"}, &stubAuth{})
	r.Push(&stubScreen{title: "second"})
	r.Push(&stubScreen{title: "third"})

	r.Reset(&stubScreen{title: "fresh"})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after reset, got %d", r.Depth())
	}
	if r.Active().Title() != "fresh" {
		t.Errorf("expected active 'fresh', got %q", r.Active().Title())
	}
}

func TestAuthGate_PushFallsBackWhenUnauthenticated(t *testing.T) {
	r := newTestRouter(&stubScreen{title: "first"}, &stubAuth{authed: false})

	r.Push(&stubScreen{title: "dashboard", authOnly: true})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after gated push, got %d", r.Depth())
	}
	if r.Active().Title() != "landing" {
		t.Errorf("expected fallback 'landing', got %q", r.Active().Title())
	}
}

func TestAuthGate_PushAllowedWhenAuthenticated(t *testing.T) {
	r := newTestRouter(&stubScreen{title: "first"}, &stubAuth{authed: true})

	r.Push(&stubScreen{title: "dashboard", authOnly: true})

	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
}

func TestAuthGate_SessionLapseResetsOnUpdate(t *testing.T) {
	auth := &stubAuth{authed: true}
	r := newTestRouter(&stubScreen{title: "first"}, auth)
	r.Push(&stubScreen{title: "dashboard", authOnly: true})

	auth.authed = false
	r.Update(tea.KeyPressMsg{Code: 'x'})

	if r.Active().Title() != "landing" {
		t.Errorf("expected reset to 'landing' after session lapse, got %q", r.Active().Title())
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

func TestRouterMessages(t *testing.T) {
	r := newTestRouter(&stubScreen{title: "first"}, &stubAuth{authed: true})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.Active().Title() != "second" {
		t.Errorf("PushScreenMsg: active = %q, want 'second'", r.Active().Title())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "swapped"}})
	if r.Active().Title() != "swapped" {
		t.Errorf("ReplaceScreenMsg: active = %q, want 'swapped'", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" {
		t.Errorf("PopScreenMsg: active = %q, want 'first'", r.Active().Title())
	}

	r.Update(ResetScreenMsg{Screen: &stubScreen{title: "root"}})
	if r.Depth() != 1 || r.Active().Title() != "root" {
		t.Errorf("ResetScreenMsg: depth %d active %q, want 1/'root'", r.Depth(), r.Active().Title())
	}
}

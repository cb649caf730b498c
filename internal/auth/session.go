package auth

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/knaranjo357/icfes/internal/api"
)

// Gateway is the slice of the remote API the session store needs.
type Gateway interface {
	Register(ctx context.Context, email, password string) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
}

// Session is an authenticated session: a bearer token and the user it
// belongs to. Both are present or the session does not exist.
type Session struct {
	Token string
	User  api.User
}

// Store owns the active session. It is instantiated once and injected into
// every screen that needs authentication state; there are no ambient
// globals. All mutations write through to disk immediately, so memory and
// disk never diverge outside the async gap of an in-flight login.
type Store struct {
	gateway Gateway
	storage *fileStorage
	session *Session
	logW    io.Writer
}

// NewStore creates a Store persisting to sessionFile.
func NewStore(gateway Gateway, sessionFile string) *Store {
	return &Store{
		gateway: gateway,
		storage: newFileStorage(sessionFile),
		logW:    os.Stderr,
	}
}

// Hydrate loads a previously persisted session. Called once at startup,
// before the first render. A corrupt session file is discarded.
func (s *Store) Hydrate() {
	persisted, err := s.storage.load()
	if err != nil {
		fmt.Fprintf(s.logW, "warning: discarding unreadable session: %v\n", err)
		_ = s.storage.clear()
		return
	}
	if persisted == nil {
		return
	}
	s.session = &Session{Token: persisted.Token, User: persisted.User}
}

// Login authenticates against the backend. On success the session is stored
// in memory and on disk and true is returned. Every failure path returns
// false; errors are logged, never propagated.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	resp, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(s.logW, "login failed: %v\n", err)
		return false
	}
	if resp.Token == "" {
		return false
	}

	// The login response carries no profile, so synthesize the local user
	// record the way the backend would shape it.
	session := &Session{
		Token: resp.Token,
		User: api.User{
			CreatedAt: time.Now().Format(time.RFC3339),
			Email:     email,
			Role:      "estudiante",
		},
	}

	if err := s.storage.save(&persistedSession{Token: session.Token, User: session.User}); err != nil {
		fmt.Fprintf(s.logW, "warning: session not persisted: %v\n", err)
	}
	s.session = session
	return true
}

// Register creates an account and immediately logs in with the same
// credentials. Fails closed.
func (s *Store) Register(ctx context.Context, email, password string) bool {
	if _, err := s.gateway.Register(ctx, email, password); err != nil {
		fmt.Fprintf(s.logW, "registration failed: %v\n", err)
		return false
	}
	return s.Login(ctx, email, password)
}

// Logout clears the in-memory and persisted session unconditionally.
// No network call is made; the token is simply forgotten.
func (s *Store) Logout() {
	s.session = nil
	if err := s.storage.clear(); err != nil {
		fmt.Fprintf(s.logW, "warning: session file not removed: %v\n", err)
	}
}

// Session returns the active session, or nil when unauthenticated.
func (s *Store) Session() *Session {
	return s.session
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	return s.session != nil
}

// Token returns the active bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

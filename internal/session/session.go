package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned by Login when the username/password pair
// does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	// Username and Password are the only accepted credentials. The check is a
	// placeholder until a real identity provider exists.
	Username = "admin"
	Password = "123"

	// DefaultDisplayName is shown when the login name is empty.
	DefaultDisplayName = "Administrador"
)

// Session is the transient authentication state of the running shell.
// It is never written to disk; quitting the program discards it.
type Session struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	DisplayName   string    `json:"display_name"`
	StartedAt     time.Time `json:"started_at"`
}

// Gate holds the current session and performs the login check.
type Gate struct {
	current Session
	now     func() time.Time
}

// NewGate returns a gate with an unauthenticated session.
func NewGate() *Gate {
	return &Gate{now: time.Now}
}

// Login validates the credentials and, on success, replaces the current
// session with a fresh authenticated one.
func (g *Gate) Login(username, password string) (*Session, error) {
	if username != Username || password != Password {
		return nil, ErrInvalidCredentials
	}

	name := username
	if name == "" {
		name = DefaultDisplayName
	}
	g.current = Session{
		ID:            uuid.New().String(),
		Authenticated: true,
		DisplayName:   name,
		StartedAt:     g.now(),
	}
	s := g.current
	return &s, nil
}

// Logout clears the session. Calling it while logged out is a no-op.
func (g *Gate) Logout() {
	g.current = Session{}
}

// Authenticated reports whether a login has succeeded since the last logout.
func (g *Gate) Authenticated() bool {
	return g.current.Authenticated
}

// Current returns a copy of the current session.
func (g *Gate) Current() Session {
	return g.current
}

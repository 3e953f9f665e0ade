package session_test

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/PGP-Health-System/pgp/internal/session"
)

// Feature: session gate, Property 1: only the fixed pair authenticates
func TestLoginRejectsEveryOtherPair(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		user := rapid.String().Draw(t, "user")
		pass := rapid.String().Draw(t, "pass")
		if user == session.Username && pass == session.Password {
			return
		}

		g := session.NewGate()
		s, err := g.Login(user, pass)
		if !errors.Is(err, session.ErrInvalidCredentials) {
			t.Fatalf("Login(%q, %q): want ErrInvalidCredentials, got %v", user, pass, err)
		}
		if s != nil {
			t.Fatalf("expected nil session on failure, got %+v", s)
		}
		if g.Authenticated() {
			t.Fatal("gate authenticated after failed login")
		}
	})
}

func TestLoginSucceedsWithFixedPair(t *testing.T) {
	g := session.NewGate()
	s, err := g.Login("admin", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Authenticated {
		t.Error("session not authenticated")
	}
	if s.DisplayName != "admin" {
		t.Errorf("DisplayName: want %q, got %q", "admin", s.DisplayName)
	}
	if s.ID == "" {
		t.Error("expected a session ID")
	}
	if !g.Authenticated() {
		t.Error("gate should report authenticated")
	}
}

func TestLoginIsCaseSensitive(t *testing.T) {
	g := session.NewGate()
	if _, err := g.Login("Admin", "123"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials for %q, got %v", "Admin", err)
	}
	if _, err := g.Login("admin ", "123"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Errorf("want ErrInvalidCredentials for trailing space, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	g := session.NewGate()
	if _, err := g.Login("admin", "123"); err != nil {
		t.Fatal(err)
	}
	g.Logout()
	if g.Authenticated() {
		t.Error("still authenticated after logout")
	}
	if got := g.Current(); got != (session.Session{}) {
		t.Errorf("expected zero session, got %+v", got)
	}

	// Logging out twice is harmless.
	g.Logout()
	if g.Authenticated() {
		t.Error("still authenticated after second logout")
	}
}

func TestEachLoginGetsNewID(t *testing.T) {
	g := session.NewGate()
	first, err := g.Login("admin", "123")
	if err != nil {
		t.Fatal(err)
	}
	g.Logout()
	second, err := g.Login("admin", "123")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct session IDs, both %q", first.ID)
	}
}

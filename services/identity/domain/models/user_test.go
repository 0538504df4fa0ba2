package models

import (
	"errors"
	"testing"

	identitydomain "github.com/aikombin/aikombin-server/services/identity/domain"
)

func TestNormalizeEmail(t *testing.T) {
	t.Run("lower-cases and trims", func(t *testing.T) {
		got, err := NormalizeEmail("  Ayse@Example.COM ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "ayse@example.com" {
			t.Fatalf("expected normalized email, got %q", got)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "@example.com", "a b@example.com"} {
			if _, err := NormalizeEmail(email); !errors.Is(err, identitydomain.ErrInvalidEmail) {
				t.Fatalf("%q: expected ErrInvalidEmail, got %v", email, err)
			}
		}
	})
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("hunter42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePassword("12345"); !errors.Is(err, identitydomain.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ayse@Example.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ayse@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Disabled {
		t.Fatal("new accounts must not start disabled")
	}
	if user.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a generated id")
	}

	if _, err := NewUser("bad", "hash"); !errors.Is(err, identitydomain.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

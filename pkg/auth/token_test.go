package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/config"
	"github.com/aikombin/aikombin-server/pkg/logger"
)

var testSecret = []byte("test-secret-at-least-32-bytes-long!")

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Fatalf("expected %s, got %s", userID, got)
	}
}

func TestTokenIssuer_Verify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)

	t.Run("garbage token", func(t *testing.T) {
		if _, err := issuer.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenIssuer([]byte("some-other-32-byte-signing-secret!")).Issue(uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := issuer.Issue(uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := issuer.Verify(token + "x"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestTokenIssuer_IssueWithoutSecret(t *testing.T) {
	if _, err := NewTokenIssuer(nil).Issue(uuid.New()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRequireBearer(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	log := logger.New(&config.Config{LogLevel: "error"})
	userID := uuid.New()

	var gotUserID uuid.UUID
	handler := RequireBearer(issuer, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := issuer.Issue(userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/outfits", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotUserID != userID {
			t.Fatalf("expected %s in context, got %s", userID, gotUserID)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/outfits", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/outfits", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

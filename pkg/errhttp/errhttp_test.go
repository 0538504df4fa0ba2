package errhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	closetdomain "github.com/aikombin/aikombin-server/services/closet/domain"
	identitydomain "github.com/aikombin/aikombin-server/services/identity/domain"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrUserNotFound", identitydomain.ErrUserNotFound, http.StatusNotFound},
		{"ErrItemNotFound", closetdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrOutfitNotFound", outfitdomain.ErrOutfitNotFound, http.StatusNotFound},
		{"ErrEmailAlreadyInUse", identitydomain.ErrEmailAlreadyInUse, http.StatusConflict},
		{"ErrWrongPassword", identitydomain.ErrWrongPassword, http.StatusUnauthorized},
		{"ErrAccountDisabled", identitydomain.ErrAccountDisabled, http.StatusForbidden},
		{"ErrOperationNotAllowed", identitydomain.ErrOperationNotAllowed, http.StatusForbidden},
		{"ErrInvalidEmail", identitydomain.ErrInvalidEmail, http.StatusUnprocessableEntity},
		{"ErrWeakPassword", identitydomain.ErrWeakPassword, http.StatusUnprocessableEntity},
		{"ErrInvalidCategory", closetdomain.ErrInvalidCategory, http.StatusUnprocessableEntity},
		{"ErrIncompleteMetadata", outfitdomain.ErrIncompleteMetadata, http.StatusUnprocessableEntity},
		{"ErrEmptySelection", outfitdomain.ErrEmptySelection, http.StatusUnprocessableEntity},
		{"ErrBlankName", outfitdomain.ErrBlankName, http.StatusUnprocessableEntity},
		{"ErrAnalysisFailed", outfitdomain.ErrAnalysisFailed, http.StatusBadGateway},
		{"analysis deadline", fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"wrapped ErrUserNotFound", fmt.Errorf("get user: %w", identitydomain.ErrUserNotFound), http.StatusNotFound},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, closetdomain.ErrItemNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, closetdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}

// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/aikombin/aikombin-server/pkg/httpx"
	closetdomain "github.com/aikombin/aikombin-server/services/closet/domain"
	identitydomain "github.com/aikombin/aikombin-server/services/identity/domain"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, identitydomain.ErrUserNotFound),
		errors.Is(err, closetdomain.ErrItemNotFound),
		errors.Is(err, outfitdomain.ErrOutfitNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, identitydomain.ErrEmailAlreadyInUse):
		return http.StatusConflict // 409
	case errors.Is(err, identitydomain.ErrWrongPassword):
		return http.StatusUnauthorized // 401
	case errors.Is(err, identitydomain.ErrAccountDisabled),
		errors.Is(err, identitydomain.ErrOperationNotAllowed):
		return http.StatusForbidden // 403
	case errors.Is(err, identitydomain.ErrInvalidEmail),
		errors.Is(err, identitydomain.ErrWeakPassword),
		errors.Is(err, closetdomain.ErrInvalidCategory),
		errors.Is(err, closetdomain.ErrMissingPhoto),
		errors.Is(err, outfitdomain.ErrMissingPhoto),
		errors.Is(err, outfitdomain.ErrIncompleteMetadata),
		errors.Is(err, outfitdomain.ErrEmptySelection),
		errors.Is(err, outfitdomain.ErrBlankName),
		errors.Is(err, outfitdomain.ErrInvalidOutfit):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout // 504
	case errors.Is(err, outfitdomain.ErrAnalysisFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

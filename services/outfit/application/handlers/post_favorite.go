package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
)

// PostFavoriteHandler handles POST /outfits/{id}/favorite requests.
type PostFavoriteHandler struct {
	svc *appsvcs.Services
}

// NewPostFavoriteHandler returns a PostFavoriteHandler backed by the given services.
func NewPostFavoriteHandler(svc *appsvcs.Services) *PostFavoriteHandler {
	return &PostFavoriteHandler{svc: svc}
}

// Execute toggles the favorite flag on an outfit. Toggling an id that no
// longer exists is a no-op, so a stale client cannot fail here.
//
//	@Summary		Toggle favorite
//	@Description	Flips the favorite flag on the outfit
//	@Tags			outfits
//	@Produce		json
//	@Param			id	path	string	true	"Outfit id"
//	@Success		204	"toggled"
//	@Failure		401	{object}	ErrorResponse
//	@Router			/outfits/{id}/favorite [post]
func (h *PostFavoriteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.svc.Outfit.ToggleFavorite(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

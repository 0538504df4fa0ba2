package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
)

// DeleteOutfitHandler handles DELETE /outfits/{id} requests.
type DeleteOutfitHandler struct {
	svc *appsvcs.Services
}

// NewDeleteOutfitHandler returns a DeleteOutfitHandler backed by the given services.
func NewDeleteOutfitHandler(svc *appsvcs.Services) *DeleteOutfitHandler {
	return &DeleteOutfitHandler{svc: svc}
}

// Execute removes the outfit immediately. There is no undo; deleting an id
// that no longer exists is a no-op.
//
//	@Summary		Delete outfit
//	@Description	Removes the outfit from the user's collection
//	@Tags			outfits
//	@Produce		json
//	@Param			id	path	string	true	"Outfit id"
//	@Success		204	"deleted"
//	@Failure		401	{object}	ErrorResponse
//	@Router			/outfits/{id} [delete]
func (h *DeleteOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.svc.Outfit.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// OutfitsResponse is the listing returned by GET /outfits.
type OutfitsResponse struct {
	Outfits []models.Outfit `json:"outfits"`
} // @name OutfitsResponse

// GetOutfitsHandler handles GET /outfits requests.
type GetOutfitsHandler struct {
	svc *appsvcs.Services
}

// NewGetOutfitsHandler returns a GetOutfitsHandler backed by the given services.
func NewGetOutfitsHandler(svc *appsvcs.Services) *GetOutfitsHandler {
	return &GetOutfitsHandler{svc: svc}
}

// Execute lists the user's outfits, newest first.
//
//	@Summary		List outfits
//	@Description	Returns the user's outfits, newest first; favorites=true filters to favorites
//	@Tags			outfits
//	@Produce		json
//	@Param			favorites	query		bool	false	"Only favorite outfits"
//	@Success		200			{object}	OutfitsResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/outfits [get]
func (h *GetOutfitsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	favoritesOnly := r.URL.Query().Get("favorites") == "true"
	outfits, err := h.svc.Outfit.List(r.Context(), userID, favoritesOnly)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, OutfitsResponse{Outfits: outfits})
}

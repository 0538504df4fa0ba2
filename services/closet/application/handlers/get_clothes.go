package handlers

import (
	"net/http"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	appsvcs "github.com/aikombin/aikombin-server/services/closet/application/services"
	"github.com/aikombin/aikombin-server/services/closet/domain/models"
)

// ClothesResponse is the listing returned by GET /clothes.
type ClothesResponse struct {
	Clothes []ClothingItemResponse `json:"clothes"`
} // @name ClothesResponse

// GetClothesHandler handles GET /clothes requests.
type GetClothesHandler struct {
	svc *appsvcs.Services
}

// NewGetClothesHandler returns a GetClothesHandler backed by the given services.
func NewGetClothesHandler(svc *appsvcs.Services) *GetClothesHandler {
	return &GetClothesHandler{svc: svc}
}

// Execute lists the user's closet, newest first.
//
//	@Summary		List clothes
//	@Description	Returns the user's clothing items, newest first
//	@Tags			clothes
//	@Produce		json
//	@Success		200	{object}	ClothesResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/clothes [get]
func (h *GetClothesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	items, err := h.svc.Closet.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ClothesResponse{Clothes: toItemResponses(items)})
}

// toItemResponses maps domain items onto the wire shape.
func toItemResponses(items []models.ClothingItem) []ClothingItemResponse {
	out := make([]ClothingItemResponse, len(items))
	for i, item := range items {
		out[i] = ClothingItemResponse{
			ID:        item.ID,
			UserID:    item.UserID,
			Photo:     item.Photo,
			Category:  item.Category.String(),
			CreatedAt: item.CreatedAt,
			Season:    item.Season,
			Color:     item.Color,
			Style:     item.Style,
		}
	}
	return out
}

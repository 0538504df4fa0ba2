package handlers

import (
	"net/http"
	"strconv"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// CreateOutfitRequest is the request body for POST /v1/outfits.
// Ids that do not resolve to owned clothing items are ignored.
type CreateOutfitRequest struct {
	Name        string   `json:"name"         validate:"required"       example:"Friday look"`
	ClothingIDs []string `json:"clothing_ids" validate:"required,min=1" example:"1718035200000"`
} // @name CreateOutfitRequest

// OutfitPageResponse is the paginated listing returned by GET /v1/outfits.
type OutfitPageResponse struct {
	Outfits []models.Outfit `json:"outfits"`
	Total   int             `json:"total"`
} // @name OutfitPageResponse

// V1OutfitsHandler serves the bearer-authenticated outfit endpoints.
type V1OutfitsHandler struct {
	svc    *appsvcs.Services
	closet appsvcs.ClothingLookup
}

// NewV1OutfitsHandler returns a V1OutfitsHandler backed by the given services.
func NewV1OutfitsHandler(svc *appsvcs.Services, closet appsvcs.ClothingLookup) *V1OutfitsHandler {
	return &V1OutfitsHandler{svc: svc, closet: closet}
}

// Create bundles owned clothing items into a named outfit.
//
//	@Summary		Create outfit from wardrobe
//	@Tags			v1
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOutfitRequest	true	"Name and clothing ids"
//	@Success		201		{object}	OutfitResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/v1/outfits [post]
func (h *V1OutfitsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateOutfitRequest](w, r)
	if !ok {
		return
	}

	wardrobe, err := h.closet.List(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	outfit, err := h.svc.Outfit.CreateFromClothingIDs(r.Context(), userID, req.Name, req.ClothingIDs, wardrobe)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, outfit)
}

// Page lists the user's outfits with pagination.
//
//	@Summary		List outfits (paginated)
//	@Tags			v1
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	OutfitPageResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/v1/outfits [get]
func (h *V1OutfitsHandler) Page(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	outfits, total, err := h.svc.Outfit.ListPage(r.Context(), userID, limit, offset)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, OutfitPageResponse{Outfits: outfits, Total: total})
}

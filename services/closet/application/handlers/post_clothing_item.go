package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/closet/application/services"
)

// CreateClothingItemRequest is the request body for POST /clothes.
// Photo is a URI or data-URI reference captured on the device.
type CreateClothingItemRequest struct {
	Photo    string `json:"photo"    validate:"required"                                       example:"https://cdn.example.com/photos/abc.jpg"`
	Category string `json:"category" validate:"required,oneof=hat top bottom shoes accessory" example:"top"`
} // @name CreateClothingItemRequest

// ClothingItemResponse describes one clothing item.
type ClothingItemResponse struct {
	ID        string    `json:"id"        example:"1718035200000"`
	UserID    uuid.UUID `json:"userId"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Photo     string    `json:"photo"     example:"https://cdn.example.com/photos/abc.jpg"`
	Category  string    `json:"category"  example:"top"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	Season    string    `json:"season,omitempty" example:"summer"`
	Color     string    `json:"color,omitempty"  example:"blue"`
	Style     string    `json:"style,omitempty"  example:"casual"`
} // @name ClothingItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid clothing category"`
} // @name ErrorResponse

// PostClothingItemHandler handles POST /clothes requests.
type PostClothingItemHandler struct {
	svc *appsvcs.Services
}

// NewPostClothingItemHandler returns a PostClothingItemHandler backed by the given services.
func NewPostClothingItemHandler(svc *appsvcs.Services) *PostClothingItemHandler {
	return &PostClothingItemHandler{svc: svc}
}

// Execute adds a clothing item to the user's closet.
//
//	@Summary		Add clothing item
//	@Description	Saves a photographed garment under the chosen category
//	@Tags			clothes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateClothingItemRequest	true	"Clothing item"
//	@Success		201		{object}	ClothingItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/clothes [post]
func (h *PostClothingItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateClothingItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Closet.Add(r.Context(), userID, req.Photo, req.Category)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ClothingItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		Photo:     item.Photo,
		Category:  item.Category.String(),
		CreatedAt: item.CreatedAt,
	})
}

package handlers

import (
	"net/http"

	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// DetectRequest is the request body for POST /v1/analyze.
type DetectRequest struct {
	Image string `json:"image" validate:"required" example:"<base64-encoded image>"`
} // @name DetectRequest

// DetectionResponse lists the garments detected in the image.
type DetectionResponse = models.DetectionResult

// PostDetectHandler handles POST /v1/analyze requests.
type PostDetectHandler struct {
	svc *appsvcs.Services
}

// NewPostDetectHandler returns a PostDetectHandler backed by the given services.
func NewPostDetectHandler(svc *appsvcs.Services) *PostDetectHandler {
	return &PostDetectHandler{svc: svc}
}

// Execute runs per-garment detection on a base64 image.
//
//	@Summary		Detect garments
//	@Description	Returns the garments detected in the image with confidence and bounding boxes
//	@Tags			v1
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DetectRequest	true	"Base64 image"
//	@Success		200		{object}	DetectionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/v1/analyze [post]
func (h *PostDetectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[DetectRequest](w, r)
	if !ok {
		return
	}

	result, err := h.svc.Outfit.DetectGarments(r.Context(), req.Image)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

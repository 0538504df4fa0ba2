package handlers

import (
	"net/http"

	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// AnalyzeRequest is the request body for POST /outfits/analyze.
// All five context fields are required; analysis never runs on partial context.
type AnalyzeRequest struct {
	Photo    string `json:"photo"    validate:"required" example:"https://cdn.example.com/photos/look.jpg"`
	Occasion string `json:"occasion" validate:"required" example:"Work"`
	Season   string `json:"season"   validate:"required" example:"Winter"`
	Weather  string `json:"weather"  validate:"required" example:"Rainy"`
	Time     string `json:"time"     validate:"required" example:"Morning"`
	Mood     string `json:"mood"     validate:"required" example:"Confident"`
} // @name AnalyzeRequest

// AnalysisResponse is the style analysis for one photo and context.
type AnalysisResponse = models.AnalysisResult

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"analysis failed"`
} // @name ErrorResponse

// PostAnalyzeHandler handles POST /outfits/analyze requests.
type PostAnalyzeHandler struct {
	svc *appsvcs.Services
}

// NewPostAnalyzeHandler returns a PostAnalyzeHandler backed by the given services.
func NewPostAnalyzeHandler(svc *appsvcs.Services) *PostAnalyzeHandler {
	return &PostAnalyzeHandler{svc: svc}
}

// Execute runs style analysis on a combined-look photo.
//
//	@Summary		Analyze outfit
//	@Description	Scores a combined-look photo in its situational context
//	@Tags			outfits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AnalyzeRequest	true	"Photo and context"
//	@Success		200		{object}	AnalysisResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		504		{object}	ErrorResponse
//	@Router			/outfits/analyze [post]
func (h *PostAnalyzeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AnalyzeRequest](w, r)
	if !ok {
		return
	}

	result, err := h.svc.Outfit.Analyze(r.Context(), req.Photo, models.EventMetadata{
		Occasion: req.Occasion,
		Season:   req.Season,
		Weather:  req.Weather,
		Time:     req.Time,
		Mood:     req.Mood,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}

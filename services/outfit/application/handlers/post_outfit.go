package handlers

import (
	"net/http"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// SaveOutfitRequest is the request body for POST /outfits (quick-capture path).
// When Analysis is omitted the analysis runs server-side before the save, so a
// failed analysis aborts the whole request and nothing is persisted.
type SaveOutfitRequest struct {
	Photo    string `json:"photo"    validate:"required" example:"https://cdn.example.com/photos/look.jpg"`
	Occasion string `json:"occasion" validate:"required" example:"Work"`
	Season   string `json:"season"   validate:"required" example:"Winter"`
	Weather  string `json:"weather"  validate:"required" example:"Rainy"`
	Time     string `json:"time"     validate:"required" example:"Morning"`
	Mood     string `json:"mood"     validate:"required" example:"Confident"`

	Analysis *models.AnalysisResult `json:"analysis,omitempty"`
} // @name SaveOutfitRequest

// OutfitResponse is one saved outfit in the wire shape the client stores.
type OutfitResponse = models.Outfit

// PostOutfitHandler handles POST /outfits requests.
type PostOutfitHandler struct {
	svc *appsvcs.Services
}

// NewPostOutfitHandler returns a PostOutfitHandler backed by the given services.
func NewPostOutfitHandler(svc *appsvcs.Services) *PostOutfitHandler {
	return &PostOutfitHandler{svc: svc}
}

// Execute saves a quick-capture outfit at the head of the user's collection.
//
//	@Summary		Save outfit
//	@Description	Persists a combined-look photo with its context and analysis
//	@Tags			outfits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SaveOutfitRequest	true	"Outfit to save"
//	@Success		201		{object}	OutfitResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/outfits [post]
func (h *PostOutfitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SaveOutfitRequest](w, r)
	if !ok {
		return
	}

	meta := models.EventMetadata{
		Occasion: req.Occasion,
		Season:   req.Season,
		Weather:  req.Weather,
		Time:     req.Time,
		Mood:     req.Mood,
	}

	analysis := req.Analysis
	if analysis == nil {
		analysis, err = h.svc.Outfit.Analyze(r.Context(), req.Photo, meta)
		if err != nil {
			errhttp.WriteError(w, err)
			return
		}
	}

	outfit, err := h.svc.Outfit.SaveQuickCapture(r.Context(), userID, req.Photo, meta, analysis)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, outfit)
}

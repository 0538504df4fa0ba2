package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	pkgvalidator "github.com/aikombin/aikombin-server/pkg/validator"
	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
)

// ComposerSelectRequest is the request body for POST /outfits/composer/select.
type ComposerSelectRequest struct {
	ItemID string `json:"item_id" validate:"required" example:"1718035200000"`
} // @name ComposerSelectRequest

// ComposerFinalizeRequest is the request body for POST /outfits/composer/finalize.
type ComposerFinalizeRequest struct {
	Name string `json:"name" validate:"required" example:"Friday look"`
} // @name ComposerFinalizeRequest

// ComposerStateResponse is the composer snapshot returned by every composer endpoint.
type ComposerStateResponse struct {
	State     string                                              `json:"state" example:"composing"`
	Selection map[closetmodels.Category]closetmodels.ClothingItem `json:"selection"`
	Dirty     bool                                                `json:"dirty"`
} // @name ComposerStateResponse

// ComposerHandler serves the outfit composer flow. One handler covers the
// whole flow since every endpoint ends by returning the same state snapshot.
type ComposerHandler struct {
	svc *appsvcs.Services
}

// NewComposerHandler returns a ComposerHandler backed by the given services.
func NewComposerHandler(svc *appsvcs.Services) *ComposerHandler {
	return &ComposerHandler{svc: svc}
}

// State returns the current composer snapshot.
//
//	@Summary		Composer state
//	@Tags			composer
//	@Produce		json
//	@Success		200	{object}	ComposerStateResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/outfits/composer [get]
func (h *ComposerHandler) State(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.writeSnapshot(w, userID)
}

// Select toggles a clothing item in its category slot.
//
//	@Summary		Toggle selection
//	@Description	Selects the item, replaces a same-category selection, or deselects it when tapped again
//	@Tags			composer
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ComposerSelectRequest	true	"Item to toggle"
//	@Success		200		{object}	ComposerStateResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/outfits/composer/select [post]
func (h *ComposerHandler) Select(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ComposerSelectRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Composer.Select(r.Context(), userID, req.ItemID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, userID)
}

// Clear discards the whole selection.
//
//	@Summary		Clear selection
//	@Tags			composer
//	@Produce		json
//	@Success		200	{object}	ComposerStateResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/outfits/composer/clear [post]
func (h *ComposerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.svc.Composer.ClearAll(userID)
	h.writeSnapshot(w, userID)
}

// Finish moves the composer into the naming phase.
//
//	@Summary		Request finish
//	@Description	Fails with 422 while the selection is empty
//	@Tags			composer
//	@Produce		json
//	@Success		200	{object}	ComposerStateResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/outfits/composer/finish [post]
func (h *ComposerHandler) Finish(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.svc.Composer.RequestFinish(userID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	h.writeSnapshot(w, userID)
}

// Cancel abandons the name entry and keeps the selection.
//
//	@Summary		Cancel naming
//	@Tags			composer
//	@Produce		json
//	@Success		200	{object}	ComposerStateResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/outfits/composer/cancel [post]
func (h *ComposerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.svc.Composer.CancelNaming(userID)
	h.writeSnapshot(w, userID)
}

// Finalize names, saves and resets the composed outfit.
//
//	@Summary		Save composed outfit
//	@Description	Persists the named selection at the head of the collection and clears the composer
//	@Tags			composer
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ComposerFinalizeRequest	true	"Outfit name"
//	@Success		201		{object}	OutfitResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/outfits/composer/finalize [post]
func (h *ComposerHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ComposerFinalizeRequest](w, r)
	if !ok {
		return
	}

	outfit, err := h.svc.Composer.Finalize(r.Context(), userID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, outfit)
}

func (h *ComposerHandler) writeSnapshot(w http.ResponseWriter, userID uuid.UUID) {
	state, selection, dirty := h.svc.Composer.Snapshot(userID)
	httpx.JSON(w, http.StatusOK, ComposerStateResponse{
		State:     string(state),
		Selection: selection,
		Dirty:     dirty,
	})
}

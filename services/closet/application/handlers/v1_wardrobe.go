package handlers

import (
	"net/http"
	"strconv"

	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/pkg/errhttp"
	"github.com/aikombin/aikombin-server/pkg/httpx"
	"github.com/aikombin/aikombin-server/pkg/storage"
	appsvcs "github.com/aikombin/aikombin-server/services/closet/application/services"
)

// maxUploadBytes caps wardrobe photo uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// WardrobePageResponse is the paginated listing returned by GET /v1/wardrobe.
type WardrobePageResponse struct {
	Items []ClothingItemResponse `json:"items"`
	Total int                    `json:"total"`
} // @name WardrobePageResponse

// WardrobeHandler serves the bearer-authenticated wardrobe endpoints.
// Uploads go to object storage; stored records keep the object key as the
// photo reference.
type WardrobeHandler struct {
	svc    *appsvcs.Services
	photos *storage.PhotoStore
}

// NewWardrobeHandler returns a WardrobeHandler backed by the given services.
func NewWardrobeHandler(svc *appsvcs.Services, photos *storage.PhotoStore) *WardrobeHandler {
	return &WardrobeHandler{svc: svc, photos: photos}
}

// Upload adds a photographed garment with optional tags.
//
//	@Summary		Upload wardrobe item
//	@Description	Stores the image and saves the garment with its tags
//	@Tags			wardrobe
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image		formData	file	true	"Garment photo"
//	@Param			category	formData	string	true	"hat, top, bottom, shoes or accessory"
//	@Param			season		formData	string	false	"Season tag"
//	@Param			color		formData	string	false	"Color tag"
//	@Param			style		formData	string	false	"Style tag"
//	@Success		201	{object}	ClothingItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/v1/wardrobe [post]
func (h *WardrobeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if h.photos == nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "photo storage is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close() //nolint:errcheck

	objectKey, err := h.photos.Upload(r.Context(), userID, file, header.Header.Get("Content-Type"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadGateway, "photo upload failed")
		return
	}

	item, err := h.svc.Closet.AddTagged(r.Context(), userID, objectKey,
		r.FormValue("category"), r.FormValue("season"), r.FormValue("color"), r.FormValue("style"))
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
		Season:    item.Season,
		Color:     item.Color,
		Style:     item.Style,
	})
}

// Page lists the wardrobe with filters and pagination. Photo references are
// swapped for presigned URLs when object storage is configured.
//
//	@Summary		List wardrobe
//	@Tags			wardrobe
//	@Produce		json
//	@Param			category	query		string	false	"Filter by category"
//	@Param			season		query		string	false	"Filter by season"
//	@Param			color		query		string	false	"Filter by color"
//	@Param			style		query		string	false	"Filter by style"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200	{object}	WardrobePageResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/v1/wardrobe [get]
func (h *WardrobeHandler) Page(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	items, total, err := h.svc.Closet.ListFiltered(r.Context(), userID, appsvcs.Filter{
		Category: q.Get("category"),
		Season:   q.Get("season"),
		Color:    q.Get("color"),
		Style:    q.Get("style"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := toItemResponses(items)
	if h.photos != nil {
		for i := range out {
			if url, err := h.photos.PresignedURL(r.Context(), out[i].Photo); err == nil {
				out[i].Photo = url
			}
		}
	}
	httpx.JSON(w, http.StatusOK, WardrobePageResponse{Items: out, Total: total})
}

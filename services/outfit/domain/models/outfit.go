package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
)

// Score bounds produced by every analyzer implementation.
const (
	MinScore = 80
	MaxScore = 100
)

// EventMetadata captures the situation an outfit is being dressed for.
// It is never stored on its own; it travels into the analysis request and
// is embedded in the saved outfit as eventDetails.
type EventMetadata struct {
	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	Weather  string `json:"weather"`
	Time     string `json:"time"`
	Mood     string `json:"mood"`
}

// Validate reports ErrIncompleteMetadata unless all five fields are non-blank.
// Callers must validate before invoking an analyzer; analyzers do not re-check.
func (m EventMetadata) Validate() error {
	for _, v := range []string{m.Occasion, m.Season, m.Weather, m.Time, m.Mood} {
		if strings.TrimSpace(v) == "" {
			return outfitdomain.ErrIncompleteMetadata
		}
	}
	return nil
}

// AnalysisResult is the style analysis generated for one photo and context.
// It is computed fresh per invocation, never recomputed after being attached
// to a saved outfit, and carries a copy of the originating event metadata
// for display convenience.
type AnalysisResult struct {
	Style           string   `json:"style"`
	Colors          []string `json:"colors"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`

	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	Weather  string `json:"weather"`
	Time     string `json:"time"`
	Mood     string `json:"mood"`
}

// DetectedGarment is one per-garment detection from the v1 analyze endpoint.
type DetectedGarment struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence"`
	Box        [4]int  `json:"box"`
}

// DetectionResult is the response shape of POST /v1/analyze.
type DetectionResult struct {
	DetectedItems []DetectedGarment `json:"detected_items"`
	AnalysisDate  time.Time         `json:"analysis_date"`
}

// Outfit is a named bundle of selected clothing items (composer path) or a
// single combined-look photo with its analysis (quick-capture path), owned by
// one user. The only mutation after save is the favorite toggle; deletion is
// hard and immediate.
//
// JSON field names match the mobile client's stored records.
type Outfit struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// Composer path: at most one item per category.
	Clothes map[closetmodels.Category]closetmodels.ClothingItem `json:"clothes,omitempty"`

	// Quick-capture path.
	Photo        string          `json:"photo,omitempty"`
	EventDetails *EventMetadata  `json:"eventDetails,omitempty"`
	Analysis     *AnalysisResult `json:"analysis,omitempty"`

	IsFavorite bool `json:"isFavorite"`
}

// NewComposedOutfit builds a composer-path outfit. The selection must be
// non-empty and the name non-blank.
func NewComposedOutfit(userID uuid.UUID, name string, clothes map[closetmodels.Category]closetmodels.ClothingItem) (*Outfit, error) {
	if len(clothes) == 0 {
		return nil, outfitdomain.ErrEmptySelection
	}
	if strings.TrimSpace(name) == "" {
		return nil, outfitdomain.ErrBlankName
	}

	selection := make(map[closetmodels.Category]closetmodels.ClothingItem, len(clothes))
	for cat, item := range clothes {
		selection[cat] = item
	}

	now := time.Now().UTC()
	return &Outfit{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		Clothes:   selection,
	}, nil
}

// NewQuickCaptureOutfit builds a quick-capture outfit from a combined-look
// photo, its event details and a completed analysis.
func NewQuickCaptureOutfit(userID uuid.UUID, photo string, meta EventMetadata, analysis *AnalysisResult) (*Outfit, error) {
	if photo == "" || analysis == nil {
		return nil, outfitdomain.ErrInvalidOutfit
	}

	now := time.Now().UTC()
	return &Outfit{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		UserID:       userID,
		CreatedAt:    now,
		Photo:        photo,
		EventDetails: &meta,
		Analysis:     analysis,
	}, nil
}

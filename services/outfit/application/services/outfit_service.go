package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/events"
	"github.com/aikombin/aikombin-server/pkg/logger"
	"github.com/aikombin/aikombin-server/pkg/recordstore"
	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
	domainevents "github.com/aikombin/aikombin-server/services/outfit/domain/events"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// OutfitService orchestrates the analyze → save flow and the outfit
// collection operations. Analysis is delegated to the injected Analyzer and
// bounded by a timeout; a failed analysis aborts the flow and nothing
// partial is ever persisted.
type OutfitService struct {
	store           recordstore.Store
	analyzer        models.Analyzer
	detector        models.Detector
	bus             *events.EventBus
	log             logger.Logger
	analysisTimeout time.Duration
}

// NewOutfitService wires an OutfitService. bus may be nil (no event publishing,
// used by the worker and in tests).
func NewOutfitService(
	store recordstore.Store,
	analyzer models.Analyzer,
	detector models.Detector,
	bus *events.EventBus,
	log logger.Logger,
	analysisTimeout time.Duration,
) *OutfitService {
	return &OutfitService{
		store:           store,
		analyzer:        analyzer,
		detector:        detector,
		bus:             bus,
		log:             log,
		analysisTimeout: analysisTimeout,
	}
}

// Analyze validates the inputs and runs the configured analyzer under the
// analysis deadline. The caller owns ctx; dismissing the flow cancels the call.
func (s *OutfitService) Analyze(ctx context.Context, photo string, meta models.EventMetadata) (*models.AnalysisResult, error) {
	if photo == "" {
		return nil, outfitdomain.ErrMissingPhoto
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.analysisTimeout)
	defer cancel()

	result, err := s.analyzer.Analyze(ctx, photo, meta)
	if err != nil {
		if errors.Is(err, outfitdomain.ErrAnalysisFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, err)
	}
	return result, nil
}

// DetectGarments runs per-garment detection for the v1 analyze endpoint.
func (s *OutfitService) DetectGarments(ctx context.Context, imageBase64 string) (*models.DetectionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.analysisTimeout)
	defer cancel()
	return s.detector.DetectGarments(ctx, imageBase64)
}

// SaveQuickCapture persists a quick-capture outfit (photo + event details +
// completed analysis) at the head of the owner's collection.
func (s *OutfitService) SaveQuickCapture(ctx context.Context, userID uuid.UUID, photo string, meta models.EventMetadata, analysis *models.AnalysisResult) (*models.Outfit, error) {
	outfit, err := models.NewQuickCaptureOutfit(userID, photo, meta, analysis)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

// SaveComposed persists a composer-path outfit built from selected clothes.
func (s *OutfitService) SaveComposed(ctx context.Context, userID uuid.UUID, name string, clothes map[closetmodels.Category]closetmodels.ClothingItem) (*models.Outfit, error) {
	outfit, err := models.NewComposedOutfit(userID, name, clothes)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, outfit); err != nil {
		return nil, err
	}
	return outfit, nil
}

// Save persists an already-constructed outfit (used by the composer flow).
func (s *OutfitService) Save(ctx context.Context, outfit *models.Outfit) error {
	return s.persist(ctx, outfit)
}

// List returns the user's outfits, newest first, optionally favorites only.
// Records that no longer decode are skipped rather than failing the listing.
func (s *OutfitService) List(ctx context.Context, userID uuid.UUID, favoritesOnly bool) ([]models.Outfit, error) {
	key := recordstore.NewKey(recordstore.KindOutfits, userID)
	raws, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load outfits: %w", err)
	}

	outfits := make([]models.Outfit, 0, len(raws))
	for _, raw := range raws {
		var outfit models.Outfit
		if err := json.Unmarshal(raw, &outfit); err != nil {
			continue
		}
		if favoritesOnly && !outfit.IsFavorite {
			continue
		}
		outfits = append(outfits, outfit)
	}
	return outfits, nil
}

// ListPage returns one page of the user's outfits plus the total count.
func (s *OutfitService) ListPage(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Outfit, int, error) {
	outfits, err := s.List(ctx, userID, false)
	if err != nil {
		return nil, 0, err
	}
	total := len(outfits)
	start := min(max(offset, 0), total)
	end := total
	if limit > 0 {
		end = min(start+limit, total)
	}
	return outfits[start:end], total, nil
}

// ToggleFavorite flips the favorite flag on the given outfit.
// An unknown id is a silent no-op, matching the store contract.
func (s *OutfitService) ToggleFavorite(ctx context.Context, userID uuid.UUID, outfitID string) error {
	key := recordstore.NewKey(recordstore.KindOutfits, userID)
	if err := s.store.ToggleFavorite(ctx, key, outfitID); err != nil {
		return fmt.Errorf("toggle favorite: %w", err)
	}
	return nil
}

// Delete removes the outfit from the owner's collection immediately.
// There is no soft-delete or undo; an unknown id is a silent no-op.
func (s *OutfitService) Delete(ctx context.Context, userID uuid.UUID, outfitID string) error {
	key := recordstore.NewKey(recordstore.KindOutfits, userID)
	if err := s.store.DeleteRecord(ctx, key, outfitID); err != nil {
		return fmt.Errorf("delete outfit: %w", err)
	}
	return nil
}

// CreateFromClothingIDs bundles the user's existing clothing items into an
// outfit for the v1 API. Unknown ids are ignored; an all-unknown request
// fails with ErrEmptySelection. When two ids share a category the later one
// wins, preserving the one-item-per-category invariant.
func (s *OutfitService) CreateFromClothingIDs(ctx context.Context, userID uuid.UUID, name string, clothingIDs []string, wardrobe []closetmodels.ClothingItem) (*models.Outfit, error) {
	byID := make(map[string]closetmodels.ClothingItem, len(wardrobe))
	for _, item := range wardrobe {
		byID[item.ID] = item
	}

	clothes := make(map[closetmodels.Category]closetmodels.ClothingItem)
	for _, id := range clothingIDs {
		if item, ok := byID[id]; ok {
			clothes[item.Category] = item
		}
	}

	return s.SaveComposed(ctx, userID, name, clothes)
}

func (s *OutfitService) persist(ctx context.Context, outfit *models.Outfit) error {
	raw, err := json.Marshal(outfit)
	if err != nil {
		return fmt.Errorf("marshal outfit: %w", err)
	}

	key := recordstore.NewKey(recordstore.KindOutfits, outfit.UserID)
	if err := s.store.UpsertNewest(ctx, key, raw); err != nil {
		return fmt.Errorf("save outfit: %w", err)
	}

	s.publishSaved(ctx, outfit)
	return nil
}

// publishSaved emits outfit.saved. The outfit is already durable at this
// point, so a bus failure is logged rather than surfaced.
func (s *OutfitService) publishSaved(ctx context.Context, outfit *models.Outfit) {
	if s.bus == nil {
		return
	}

	event := domainevents.OutfitSavedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OutfitID:   outfit.ID,
		UserID:     outfit.UserID,
		Name:       outfit.Name,
		OccurredAt: outfit.CreatedAt,
	}
	if outfit.Analysis != nil {
		event.Score = outfit.Analysis.Score
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal outfit.saved event", "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")

	if err := s.bus.Publish(ctx, domainevents.TopicOutfitSaved, msg); err != nil {
		s.log.WarnContext(ctx, "publish outfit.saved failed", "outfit_id", outfit.ID, "error", err)
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/recordstore"
	"github.com/aikombin/aikombin-server/services/closet/domain/models"
)

// Filter narrows wardrobe listings for the v1 API.
// Zero-value fields match everything; negative Limit and Offset behave
// like zero.
type Filter struct {
	Category string
	Season   string
	Color    string
	Style    string
	Limit    int
	Offset   int
}

// ClosetService manages the per-user clothing collection.
// All persistence goes through the injected record store; new items are
// prepended so the collection stays newest-first.
type ClosetService struct {
	store recordstore.Store
}

// NewClosetService returns a ClosetService backed by the given record store.
func NewClosetService(store recordstore.Store) *ClosetService {
	return &ClosetService{store: store}
}

// Add validates and persists a new clothing item for the user.
func (s *ClosetService) Add(ctx context.Context, userID uuid.UUID, photo, category string) (*models.ClothingItem, error) {
	cat, err := models.NewCategory(category)
	if err != nil {
		return nil, err
	}

	item, err := models.NewClothingItem(userID, photo, cat)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal clothing item: %w", err)
	}
	key := recordstore.NewKey(recordstore.KindClothes, userID)
	if err := s.store.UpsertNewest(ctx, key, raw); err != nil {
		return nil, fmt.Errorf("save clothing item: %w", err)
	}
	return item, nil
}

// AddTagged persists an item carrying the optional wardrobe tags from a v1 upload.
func (s *ClosetService) AddTagged(ctx context.Context, userID uuid.UUID, photo, category, season, color, style string) (*models.ClothingItem, error) {
	cat, err := models.NewCategory(category)
	if err != nil {
		return nil, err
	}
	item, err := models.NewClothingItem(userID, photo, cat)
	if err != nil {
		return nil, err
	}
	item.Season = season
	item.Color = color
	item.Style = style

	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal clothing item: %w", err)
	}
	key := recordstore.NewKey(recordstore.KindClothes, userID)
	if err := s.store.UpsertNewest(ctx, key, raw); err != nil {
		return nil, fmt.Errorf("save clothing item: %w", err)
	}
	return item, nil
}

// List returns the user's clothing items, newest first. Records that no
// longer decode are skipped rather than failing the whole listing.
func (s *ClosetService) List(ctx context.Context, userID uuid.UUID) ([]models.ClothingItem, error) {
	key := recordstore.NewKey(recordstore.KindClothes, userID)
	raws, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load clothes: %w", err)
	}

	items := make([]models.ClothingItem, 0, len(raws))
	for _, raw := range raws {
		var item models.ClothingItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListFiltered applies the v1 wardrobe filter and pagination.
// Returns the page plus the total match count ignoring pagination.
func (s *ClosetService) ListFiltered(ctx context.Context, userID uuid.UUID, f Filter) ([]models.ClothingItem, int, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	matched := make([]models.ClothingItem, 0, len(items))
	for _, item := range items {
		if f.Category != "" && item.Category.String() != f.Category {
			continue
		}
		if f.Season != "" && item.Season != f.Season {
			continue
		}
		if f.Color != "" && item.Color != f.Color {
			continue
		}
		if f.Style != "" && item.Style != f.Style {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	start := min(max(f.Offset, 0), total)
	end := total
	if f.Limit > 0 {
		end = min(start+f.Limit, total)
	}
	return matched[start:end], total, nil
}

// ReplaceAll overwrites the user's entire clothing collection.
// This is the only item-removal path, matching the capture flow's semantics.
func (s *ClosetService) ReplaceAll(ctx context.Context, userID uuid.UUID, items []models.ClothingItem) error {
	raws := make([]json.RawMessage, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal clothing item: %w", err)
		}
		raws[i] = raw
	}
	key := recordstore.NewKey(recordstore.KindClothes, userID)
	if err := s.store.Save(ctx, key, raws); err != nil {
		return fmt.Errorf("replace clothes: %w", err)
	}
	return nil
}

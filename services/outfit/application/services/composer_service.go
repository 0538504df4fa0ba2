package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	closetdomain "github.com/aikombin/aikombin-server/services/closet/domain"
	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// ClothingLookup resolves a user's clothing items; satisfied by the closet
// application service.
type ClothingLookup interface {
	List(ctx context.Context, userID uuid.UUID) ([]closetmodels.ClothingItem, error)
}

// ComposerService holds one Composer per user session and drives the
// select → name → save flow. Composer state is in-memory only; it resets on
// restart, exactly like the original per-screen selection state.
type ComposerService struct {
	mu        sync.Mutex
	composers map[uuid.UUID]*models.Composer

	closet  ClothingLookup
	outfits *OutfitService
}

// NewComposerService returns a ComposerService backed by the given services.
func NewComposerService(closet ClothingLookup, outfits *OutfitService) *ComposerService {
	return &ComposerService{
		composers: make(map[uuid.UUID]*models.Composer),
		closet:    closet,
		outfits:   outfits,
	}
}

// Select toggles the clothing item with itemID in its category slot.
func (s *ComposerService) Select(ctx context.Context, userID uuid.UUID, itemID string) error {
	items, err := s.closet.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("resolve clothing item: %w", err)
	}

	for _, item := range items {
		if item.ID == itemID {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.composer(userID).Select(item, item.Category)
			return nil
		}
	}
	return closetdomain.ErrItemNotFound
}

// ClearAll discards the user's selection (composer dismissed).
func (s *ComposerService) ClearAll(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer(userID).ClearAll()
}

// RequestFinish moves the composer into the naming phase.
func (s *ComposerService) RequestFinish(userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composer(userID).RequestFinish()
}

// CancelNaming abandons the name-entry step and keeps the selection.
func (s *ComposerService) CancelNaming(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.composer(userID).CancelNaming()
}

// Finalize validates, builds and persists the composed outfit, then resets
// the composer. The composer state is only reset after the save succeeds.
func (s *ComposerService) Finalize(ctx context.Context, userID uuid.UUID, name string) (*models.Outfit, error) {
	s.mu.Lock()
	composer := s.composer(userID)
	outfit, err := models.NewComposedOutfit(userID, name, composer.Selection())
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.outfits.Save(ctx, outfit); err != nil {
		return nil, err
	}

	s.mu.Lock()
	composer.ClearAll()
	s.mu.Unlock()
	return outfit, nil
}

// Snapshot returns the current flow state, selection and dirty flag.
func (s *ComposerService) Snapshot(userID uuid.UUID) (models.ComposerState, map[closetmodels.Category]closetmodels.ClothingItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.composer(userID)
	return c.State(), c.Selection(), c.Dirty()
}

// composer returns the user's composer, creating it on first use.
// Callers must hold s.mu.
func (s *ComposerService) composer(userID uuid.UUID) *models.Composer {
	c, ok := s.composers[userID]
	if !ok {
		c = models.NewComposer()
		s.composers[userID] = c
	}
	return c
}

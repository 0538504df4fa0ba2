package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicOutfitSaved is the Watermill topic published when an outfit is persisted.
const TopicOutfitSaved = "outfit.saved"

// OutfitSavedEvent is published after an outfit lands in the owner's collection.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicOutfitSaved).
type OutfitSavedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OutfitID   string    `json:"outfit_id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name,omitempty"`
	Score      int       `json:"score,omitempty"` // 0 for composer-path outfits without analysis
	OccurredAt time.Time `json:"occurred_at"`
}

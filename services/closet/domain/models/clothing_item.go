package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	closetdomain "github.com/aikombin/aikombin-server/services/closet/domain"
)

// ClothingItem is one photographed garment or accessory tagged with a category.
// Items are immutable after creation; the only delete path is a bulk overwrite
// of the owning user's collection.
//
// JSON field names match the mobile client's stored records so collections
// written by older app versions load unchanged.
type ClothingItem struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Photo     string    `json:"photo"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`

	// Optional tags carried by wardrobe uploads from the v1 API.
	Season string `json:"season,omitempty"`
	Color  string `json:"color,omitempty"`
	Style  string `json:"style,omitempty"`
}

// NewClothingItem constructs a valid ClothingItem with a creation-timestamp id.
func NewClothingItem(userID uuid.UUID, photo string, category Category) (*ClothingItem, error) {
	if photo == "" {
		return nil, closetdomain.ErrMissingPhoto
	}
	now := time.Now().UTC()
	return &ClothingItem{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		UserID:    userID,
		Photo:     photo,
		Category:  category,
		CreatedAt: now,
	}, nil
}

package recordstore

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind names one per-user record collection.
type Kind string

// Collection kinds. The rendered key keeps the original client's layout
// ("clothes_<userID>", "outfits_<userID>") so stored data stays portable.
const (
	KindClothes Kind = "clothes"
	KindOutfits Kind = "outfits"
)

// Key addresses exactly one collection: the (kind, owner) pair.
// Using a composite type instead of concatenated strings rules out
// cross-user key typos at compile time.
type Key struct {
	Kind   Kind
	UserID uuid.UUID
}

// NewKey returns the collection key for the given kind and owner.
func NewKey(kind Kind, userID uuid.UUID) Key {
	return Key{Kind: kind, UserID: userID}
}

// String renders the stored key, e.g. "outfits_1b4e28ba-…".
func (k Key) String() string {
	return fmt.Sprintf("%s_%s", k.Kind, k.UserID)
}

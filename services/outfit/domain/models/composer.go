package models

import (
	"github.com/google/uuid"

	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
)

// ComposerState names the phases of the outfit-building flow.
type ComposerState string

const (
	// StateIdle: nothing selected.
	StateIdle ComposerState = "idle"
	// StateComposing: at least one category selected.
	StateComposing ComposerState = "composing"
	// StateNaming: the user asked to finish; waiting for a name.
	StateNaming ComposerState = "naming"
)

// Composer is the per-session selection state for assembling an outfit:
// at most one clothing item per category. Selection is a toggle: selecting
// the already-selected item for a category deselects it.
//
// Composer is not safe for concurrent use; the owning service serializes
// access per session.
type Composer struct {
	selection map[closetmodels.Category]closetmodels.ClothingItem
	state     ComposerState
}

// NewComposer returns an idle Composer with an empty selection.
func NewComposer() *Composer {
	return &Composer{
		selection: make(map[closetmodels.Category]closetmodels.ClothingItem),
		state:     StateIdle,
	}
}

// Select toggles item in the given category slot: the same id deselects,
// any other item replaces the current selection for that category.
func (c *Composer) Select(item closetmodels.ClothingItem, category closetmodels.Category) {
	if current, ok := c.selection[category]; ok && current.ID == item.ID {
		delete(c.selection, category)
	} else {
		c.selection[category] = item
	}

	if c.state != StateNaming {
		c.state = StateIdle
		if len(c.selection) > 0 {
			c.state = StateComposing
		}
	}
}

// ClearAll empties the selection and returns to idle. Used when the composer
// flow is dismissed.
func (c *Composer) ClearAll() {
	c.selection = make(map[closetmodels.Category]closetmodels.ClothingItem)
	c.state = StateIdle
}

// RequestFinish moves to the naming phase. Fails with ErrEmptySelection when
// nothing is selected.
func (c *Composer) RequestFinish() error {
	if len(c.selection) == 0 {
		return outfitdomain.ErrEmptySelection
	}
	c.state = StateNaming
	return nil
}

// CancelNaming abandons the naming phase and returns to composing.
func (c *Composer) CancelNaming() {
	if c.state == StateNaming {
		c.state = StateComposing
	}
}

// Finalize builds an outfit from the current selection and resets the
// composer to idle. Fails with ErrEmptySelection when nothing is selected
// (regardless of name) and ErrBlankName when name is blank or whitespace.
func (c *Composer) Finalize(userID uuid.UUID, name string) (*Outfit, error) {
	outfit, err := NewComposedOutfit(userID, name, c.selection)
	if err != nil {
		return nil, err
	}
	c.ClearAll()
	return outfit, nil
}

// Selection returns a copy of the current category → item selection.
func (c *Composer) Selection() map[closetmodels.Category]closetmodels.ClothingItem {
	out := make(map[closetmodels.Category]closetmodels.ClothingItem, len(c.selection))
	for cat, item := range c.selection {
		out[cat] = item
	}
	return out
}

// State returns the current flow phase.
func (c *Composer) State() ComposerState {
	return c.state
}

// Dirty reports whether navigating away would discard work; callers should
// prompt for confirmation before clearing a dirty composer.
func (c *Composer) Dirty() bool {
	return c.state == StateComposing || c.state == StateNaming
}

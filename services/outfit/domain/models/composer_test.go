package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
)

func testItem(id string, category closetmodels.Category) closetmodels.ClothingItem {
	return closetmodels.ClothingItem{
		ID:       id,
		UserID:   uuid.New(),
		Photo:    "photo-" + id,
		Category: category,
	}
}

func TestComposer_Select(t *testing.T) {
	t.Run("selecting fills the category slot", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)

		sel := c.Selection()
		if sel[closetmodels.CategoryTop].ID != "1" {
			t.Fatalf("expected item 1 in top slot, got %+v", sel)
		}
		if c.State() != StateComposing {
			t.Fatalf("expected composing state, got %q", c.State())
		}
	})

	t.Run("selecting the same item again deselects it", func(t *testing.T) {
		c := NewComposer()
		item := testItem("1", closetmodels.CategoryTop)
		c.Select(item, closetmodels.CategoryTop)
		c.Select(item, closetmodels.CategoryTop)

		if len(c.Selection()) != 0 {
			t.Fatalf("expected empty selection, got %+v", c.Selection())
		}
		if c.State() != StateIdle {
			t.Fatalf("expected idle state, got %q", c.State())
		}
	})

	t.Run("selecting a different item replaces the slot", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)
		c.Select(testItem("2", closetmodels.CategoryTop), closetmodels.CategoryTop)

		sel := c.Selection()
		if len(sel) != 1 || sel[closetmodels.CategoryTop].ID != "2" {
			t.Fatalf("expected only item 2 in top slot, got %+v", sel)
		}
	})

	t.Run("different categories stack up", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)
		c.Select(testItem("2", closetmodels.CategoryBottom), closetmodels.CategoryBottom)
		c.Select(testItem("3", closetmodels.CategoryShoes), closetmodels.CategoryShoes)

		if len(c.Selection()) != 3 {
			t.Fatalf("expected 3 selected categories, got %d", len(c.Selection()))
		}
	})
}

func TestComposer_Flow(t *testing.T) {
	t.Run("finish with empty selection fails", func(t *testing.T) {
		c := NewComposer()
		if err := c.RequestFinish(); !errors.Is(err, outfitdomain.ErrEmptySelection) {
			t.Fatalf("expected ErrEmptySelection, got %v", err)
		}
		if c.State() != StateIdle {
			t.Fatalf("expected idle state, got %q", c.State())
		}
	})

	t.Run("finish then cancel keeps the selection", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)

		if err := c.RequestFinish(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.State() != StateNaming {
			t.Fatalf("expected naming state, got %q", c.State())
		}

		c.CancelNaming()
		if c.State() != StateComposing {
			t.Fatalf("expected composing state, got %q", c.State())
		}
		if len(c.Selection()) != 1 {
			t.Fatal("cancel must not discard the selection")
		}
	})

	t.Run("clear resets everything", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)
		c.ClearAll()

		if len(c.Selection()) != 0 || c.State() != StateIdle {
			t.Fatalf("expected empty idle composer, got %d items in %q", len(c.Selection()), c.State())
		}
	})

	t.Run("dirty while composing and naming", func(t *testing.T) {
		c := NewComposer()
		if c.Dirty() {
			t.Fatal("fresh composer must not be dirty")
		}
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)
		if !c.Dirty() {
			t.Fatal("composing must be dirty")
		}
		if err := c.RequestFinish(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.Dirty() {
			t.Fatal("naming must be dirty")
		}
	})
}

func TestComposer_Finalize(t *testing.T) {
	userID := uuid.New()

	t.Run("builds outfit and resets", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)
		c.Select(testItem("2", closetmodels.CategoryBottom), closetmodels.CategoryBottom)

		outfit, err := c.Finalize(userID, "Friday look")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outfit.Name != "Friday look" || len(outfit.Clothes) != 2 {
			t.Fatalf("unexpected outfit: %+v", outfit)
		}
		if outfit.UserID != userID {
			t.Fatalf("expected owner %s, got %s", userID, outfit.UserID)
		}
		if c.State() != StateIdle || len(c.Selection()) != 0 {
			t.Fatal("finalize must reset the composer")
		}
	})

	t.Run("blank name fails and keeps the selection", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)

		if _, err := c.Finalize(userID, "   "); !errors.Is(err, outfitdomain.ErrBlankName) {
			t.Fatalf("expected ErrBlankName, got %v", err)
		}
		if len(c.Selection()) != 1 {
			t.Fatal("failed finalize must not discard the selection")
		}
	})

	t.Run("empty selection fails regardless of name", func(t *testing.T) {
		c := NewComposer()
		if _, err := c.Finalize(userID, "Friday look"); !errors.Is(err, outfitdomain.ErrEmptySelection) {
			t.Fatalf("expected ErrEmptySelection, got %v", err)
		}
	})

	t.Run("outfit selection is a copy", func(t *testing.T) {
		c := NewComposer()
		c.Select(testItem("1", closetmodels.CategoryTop), closetmodels.CategoryTop)

		outfit, err := c.Finalize(userID, "look")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c.Select(testItem("2", closetmodels.CategoryTop), closetmodels.CategoryTop)
		if len(outfit.Clothes) != 1 || outfit.Clothes[closetmodels.CategoryTop].ID != "1" {
			t.Fatal("saved outfit must not track later composer edits")
		}
	})
}

package models

import (
	"fmt"

	closetdomain "github.com/aikombin/aikombin-server/services/closet/domain"
)

// Category is a value object naming one wardrobe slot.
// A user selects at most one clothing item per category when composing an outfit.
type Category string

// The fixed category set.
const (
	CategoryHat       Category = "hat"
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// AllCategories lists every valid category in display order.
func AllCategories() []Category {
	return []Category{CategoryHat, CategoryTop, CategoryBottom, CategoryShoes, CategoryAccessory}
}

// NewCategory constructs a valid Category or returns ErrInvalidCategory.
func NewCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryHat, CategoryTop, CategoryBottom, CategoryShoes, CategoryAccessory:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", closetdomain.ErrInvalidCategory, s)
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}

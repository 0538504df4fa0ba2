package domain

import "errors"

// Sentinel errors for the closet domain. Use errors.Is() to check these.
var (
	// ErrInvalidCategory indicates the category is not one of the fixed set.
	ErrInvalidCategory = errors.New("invalid clothing category")

	// ErrMissingPhoto indicates a clothing item was submitted without a photo reference.
	ErrMissingPhoto = errors.New("photo reference is required")

	// ErrItemNotFound indicates the requested clothing item does not exist.
	ErrItemNotFound = errors.New("clothing item not found")
)

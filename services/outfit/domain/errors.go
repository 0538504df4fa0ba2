package domain

import "errors"

// Sentinel errors for the outfit domain. Use errors.Is() to check these.
var (
	// ErrOutfitNotFound indicates the requested outfit does not exist.
	ErrOutfitNotFound = errors.New("outfit not found")

	// ErrEmptySelection indicates an outfit was finalized with no clothing selected.
	ErrEmptySelection = errors.New("outfit must contain at least one clothing item")

	// ErrBlankName indicates a composer-path outfit was finalized without a usable name.
	ErrBlankName = errors.New("outfit name must not be blank")

	// ErrIncompleteMetadata indicates one or more event details are missing
	// before analysis.
	ErrIncompleteMetadata = errors.New("occasion, season, weather, time and mood are all required")

	// ErrMissingPhoto indicates analysis was requested without a photo reference.
	ErrMissingPhoto = errors.New("photo reference is required")

	// ErrInvalidOutfit indicates an outfit satisfies neither the composer path
	// (selected clothes) nor the quick-capture path (photo plus analysis).
	ErrInvalidOutfit = errors.New("outfit needs selected clothes or a photo with analysis")

	// ErrAnalysisFailed wraps any failure inside the analysis service.
	// No partial result is ever returned alongside it.
	ErrAnalysisFailed = errors.New("outfit analysis failed")
)

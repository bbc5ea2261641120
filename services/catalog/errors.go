package catalog

import "errors"

var (
	// ErrNotFound is returned when a catalog entry does not exist.
	ErrNotFound = errors.New("catalog entry not found")

	// ErrInvalidEntry is returned when a catalog entry fails validation.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

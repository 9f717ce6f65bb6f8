package catalog

import "errors"

// Domain errors for catalog loading and lookup

var (
	ErrEmptyID       = errors.New("catalog entry id is required")
	ErrEmptyName     = errors.New("catalog entry name is required")
	ErrNegativePrice = errors.New("catalog entry price cannot be negative")

	ErrDuplicateID   = errors.New("duplicate catalog entry id")
	ErrDuplicateName = errors.New("duplicate catalog entry name")
	ErrEmptyCatalog  = errors.New("catalog must contain at least one entry")

	ErrEntryNotFound = errors.New("catalog entry not found")
)

package wiki

import "errors"

var (
	// ErrEntryNotFound indicates the wiki entry doesn't exist.
	ErrEntryNotFound = errors.New("wiki entry not found")
	// ErrInvalidInput indicates invalid wiki entry input.
	ErrInvalidInput = errors.New("invalid wiki entry input")
)

package experiment

import "errors"

var (
	// ErrExperimentNotFound indicates the experiment doesn't exist.
	ErrExperimentNotFound = errors.New("experiment not found")
	// ErrInvalidInput indicates invalid experiment input.
	ErrInvalidInput = errors.New("invalid experiment input")
)

package dailylog

import "errors"

// ErrInvalidInput indicates invalid daily log input.
var ErrInvalidInput = errors.New("invalid daily log input")

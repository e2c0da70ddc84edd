package mdcontents

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidLevel indicates a heading level outside 1..MaxLevel reached
	// the numberer. Levels are never clamped.
	ErrInvalidLevel = errors.New("invalid heading level")

	// ErrInvalidInput indicates document text that is not valid UTF-8.
	ErrInvalidInput = errors.New("invalid markdown input")
)

package net

import "errors"

// Precondition violations surfaced by the Network API. Callers can match
// them with errors.Is; the returned errors wrap these with detail.
var (
	// ErrInvalidConfiguration reports a layer-size sequence with fewer
	// than 2 entries, a non-positive layer width, learning rate, or
	// epoch count.
	ErrInvalidConfiguration = errors.New("invalid network configuration")

	// ErrDimensionMismatch reports an input or target vector whose
	// length does not match the expected layer width.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyDataset reports zero samples passed to Train.
	ErrEmptyDataset = errors.New("empty dataset")
)

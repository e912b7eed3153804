package bperf

import (
	"errors"
	"fmt"
)

// Error kinds returned by the engine. Callers match them with errors.Is, the
// returned errors wrap them with a message naming the failed operation.
var (
	ErrNaN             = errors.New("value is NaN")
	ErrNotFinite       = errors.New("value is not finite")
	ErrOverflow        = errors.New("an overflow occurred")
	ErrZeroDivision    = errors.New("division by zero")
	ErrInvalidState    = errors.New("invalid state")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrRoundingFailure = errors.New("rounding failure")

	// ErrInvalidPrecision and ErrWeightSumMismatch are invalid states.
	ErrInvalidPrecision  = fmt.Errorf("%w: precision must be greater than or equal to 1", ErrInvalidState)
	ErrWeightSumMismatch = fmt.Errorf("%w: weights must sum to 100%%", ErrInvalidState)

	// Fetcher boundary.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRuntimeFailure  = errors.New("runtime failure")
)

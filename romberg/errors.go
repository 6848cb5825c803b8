// Package romberg: sentinel error set.
// All public entry points MUST return these sentinels on precondition
// violations and tests MUST check them via errors.Is.

package romberg

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveDepth is returned when the extrapolation table is
	// given no rows to work with.
	ErrNonPositiveDepth = errors.New("romberg: table depth must be >= 1")

	// ErrInfiniteLimit is returned when an integration limit is NaN or
	// infinite.
	ErrInfiniteLimit = errors.New("romberg: integration limit must be finite")

	// ErrInvertedLimits is returned when the lower limit exceeds the
	// upper one. Equal limits are fine and integrate to zero.
	ErrInvertedLimits = errors.New("romberg: lower limit must be <= upper limit")
)

// validate rejects malformed arguments before any sampling happens.
func validate(a, b float64, depth int) error {
	if depth < 1 {
		return ErrNonPositiveDepth
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrInfiniteLimit
	}
	if a > b {
		return ErrInvertedLimits
	}

	return nil
}

// Package newtoncotes: sentinel error set.
// All public entry points MUST return these sentinels on precondition
// violations and tests MUST check them via errors.Is.

package newtoncotes

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveSteps is returned when the subinterval count is
	// below one.
	ErrNonPositiveSteps = errors.New("newtoncotes: number of steps must be >= 1")

	// ErrInfiniteLimit is returned when an integration limit is NaN or
	// infinite; these rules sample a finite uniform grid.
	ErrInfiniteLimit = errors.New("newtoncotes: integration limit must be finite")

	// ErrInvertedLimits is returned when the lower limit exceeds the
	// upper one. Equal limits are fine and integrate to zero.
	ErrInvertedLimits = errors.New("newtoncotes: lower limit must be <= upper limit")
)

// validate rejects malformed arguments before any sampling happens.
func validate(a, b float64, n int) error {
	if n < 1 {
		return ErrNonPositiveSteps
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrInfiniteLimit
	}
	if a > b {
		return ErrInvertedLimits
	}

	return nil
}

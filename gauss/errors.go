// Package gauss: sentinel error set.
// All public entry points MUST return these sentinels on precondition
// violations and tests MUST check them via errors.Is. Precision loss at
// extreme degrees is advisory (logged), never an error.

package gauss

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveDegree is returned when a rule is requested with
	// fewer than one point.
	ErrNonPositiveDegree = errors.New("gauss: rule degree must be >= 1")

	// ErrInfiniteLimit is returned when an integration limit is NaN or
	// infinite. Only Legendre takes limits; the other families carry
	// their domain in the weight function.
	ErrInfiniteLimit = errors.New("gauss: integration limit must be finite")

	// ErrInvertedLimits is returned when the lower limit is not strictly
	// below the upper one.
	ErrInvertedLimits = errors.New("gauss: lower limit must be < upper limit")
)

// validateDegree rejects empty rules before any solve happens.
func validateDegree(n int) error {
	if n < 1 {
		return ErrNonPositiveDegree
	}

	return nil
}

// validateLimits rejects malformed [a, b] intervals.
func validateLimits(a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrInfiniteLimit
	}
	if a >= b {
		return ErrInvertedLimits
	}

	return nil
}

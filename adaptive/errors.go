// Package adaptive: sentinel error set.
// All public entry points MUST return these sentinels on precondition
// violations and tests MUST check them via errors.Is. ErrMinStepReached
// is the one runtime failure: it reports an integrand the tolerance
// cannot be met for, which silent truncation would hide.

package adaptive

import (
	"errors"
	"math"
)

var (
	// ErrMinStepReached is returned when no subinterval wider than minH
	// meets its pro-rated tolerance share.
	ErrMinStepReached = errors.New("adaptive: tolerance not reachable above the minimum step width")

	// ErrInfiniteLimit is returned when an integration limit is NaN or
	// infinite.
	ErrInfiniteLimit = errors.New("adaptive: integration limit must be finite")

	// ErrInvertedLimits is returned when the lower limit is not strictly
	// below the upper one.
	ErrInvertedLimits = errors.New("adaptive: lower limit must be < upper limit")

	// ErrNonPositiveMinStep is returned when minH is zero or negative;
	// the subdivision would never terminate.
	ErrNonPositiveMinStep = errors.New("adaptive: minimum step width must be > 0")

	// ErrNonPositiveTolerance is returned when the tolerance is zero or
	// negative; no estimate pair could ever be accepted.
	ErrNonPositiveTolerance = errors.New("adaptive: tolerance must be > 0")
)

// validate rejects malformed arguments before any sampling happens.
func validate(a, b, minH, tolerance float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrInfiniteLimit
	}
	if a >= b {
		return ErrInvertedLimits
	}
	if minH <= 0 || math.IsNaN(minH) {
		return ErrNonPositiveMinStep
	}
	if tolerance <= 0 || math.IsNaN(tolerance) {
		return ErrNonPositiveTolerance
	}

	return nil
}

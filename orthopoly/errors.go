// Package orthopoly: sentinel error set. Matched via errors.Is.

package orthopoly

import "errors"

var (
	// ErrZeroDerivative is returned when Newton-Raphson lands on a point
	// with a vanishing derivative and cannot take a step.
	ErrZeroDerivative = errors.New("orthopoly: derivative is zero at iterate")

	// ErrNoConvergence is returned when Newton-Raphson exhausts its
	// iteration budget before the step size drops below tolerance.
	ErrNoConvergence = errors.New("orthopoly: newton-raphson did not converge")
)

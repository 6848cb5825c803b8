// Package orthopoly: the polynomial family contract.

package orthopoly

import "fmt"

// Polynomial is the common surface of every family in this package.
// Implementations are immutable value types; constructing one allocates
// nothing and methods are safe for concurrent use.
type Polynomial interface {
	// Degree reports the polynomial degree n.
	Degree() int

	// Eval computes the polynomial value at x via the family's
	// three-term recurrence in O(n).
	Eval(x float64) float64

	// Zeros returns all n real zeros in ascending order.
	Zeros() ([]float64, error)
}

// checkDegree rejects negative degrees at construction time. A negative
// degree is a programmer error, not user input, hence the panic.
func checkDegree(family string, degree int) {
	if degree < 0 {
		panic(fmt.Sprintf("orthopoly: New%s(%d): degree must be >= 0", family, degree))
	}
}

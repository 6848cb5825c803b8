// Package eigen: sentinel error set.
// All public entry points MUST return these sentinels on precondition
// violations and tests MUST check them via errors.Is. Dimension checks run
// before any computation; numeric degeneracy (a zero Sturm pivot) is
// absorbed internally and never surfaces as an error.

package eigen

import "errors"

var (
	// ErrEmptyMatrix is returned when the matrix has no rows (n == 0).
	ErrEmptyMatrix = errors.New("eigen: matrix must have at least one row")

	// ErrDimensionMismatch is returned when the diagonal and off-diagonal
	// slices differ in length; one array per band, same n for both.
	ErrDimensionMismatch = errors.New("eigen: diagonal and off-diagonal lengths differ")

	// ErrIndexOutOfRange is returned when a requested eigenvalue index k
	// lies outside [0, n).
	ErrIndexOutOfRange = errors.New("eigen: eigenvalue index out of range")
)

// validate rejects malformed band slices before any arithmetic happens.
func validate(diag, off []float64) error {
	if len(diag) == 0 {
		return ErrEmptyMatrix
	}
	if len(diag) != len(off) {
		return ErrDimensionMismatch
	}

	return nil
}

// Package eigen: shared value types and numeric constants.

package eigen

// epsilon is the float64 machine epsilon (2⁻⁵²), the spacing between 1.0
// and the next representable value. Bisection tolerances and the Sturm
// zero-pivot guard are expressed in this unit.
const epsilon = 0x1p-52

// parallelRowThreshold is the minimum number of matrix rows before
// GershgorinBounds switches from a plain fold to a chunked parallel
// reduction. Below it the goroutine overhead outweighs the row work.
const parallelRowThreshold = 4096

// Interval is a closed interval [Lower, Upper] on the real line.
// GershgorinBounds produces one guaranteed to contain every eigenvalue;
// each bisection then shrinks its own private copy of it.
type Interval struct {
	Lower float64
	Upper float64
}

// Width reports Upper - Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// merge returns the union hull of two intervals. Min/max are associative
// and commutative, so merge order never affects the result — the parallel
// reduction in GershgorinBounds relies on exactly that.
func merge(a, b Interval) Interval {
	return Interval{Lower: min(a.Lower, b.Lower), Upper: max(a.Upper, b.Upper)}
}

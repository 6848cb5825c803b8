// Package newtoncotes implements the classic composite Newton-Cotes
// rules over a finite interval [a, b] split into n equal subintervals.
//
// 📐 The rules, cheapest to sharpest:
//
//	Rectangle          midpoint sample per subinterval      error O(h²)
//	Trapezoid          endpoints, linear interpolant        error O(h²)
//	Simpson            + midpoint, quadratic interpolant    error O(h⁴)
//	NewtonThreeEighths + third points, cubic interpolant    error O(h⁴)
//
// with h = (b−a)/n. All four share the same signature and validation:
//
//	integral, err := newtoncotes.Simpson(math.Sin, 0, math.Pi, 1000)
//
// Unlike Gauss rules these need no precomputation and work with any
// integrand sampleable on a uniform grid; the price is slower
// convergence. Increase n until the result stabilizes, keeping
// h = (b−a)/n below 1 (Euler-Maclaurin error terms scale in powers
// of h).
//
// Complexity: O(n) function evaluations, O(1) memory, per call.
//
// Errors:
//   - ErrNonPositiveSteps — n < 1.
//   - ErrInfiniteLimit    — a or b is NaN or ±Inf.
//   - ErrInvertedLimits   — a > b (a == b integrates to 0).
package newtoncotes

// Package romberg estimates ∫_a^b f(x) dx by Richardson extrapolation
// of the composite trapezoid rule.
//
// 🪜 How the ladder works
//
//	Row i holds the trapezoid estimate with 2^i subintervals, refined by
//	reusing all previous samples and adding only the new midpoints.
//	Column j removes the h^(2j) error term of the Euler-Maclaurin
//	expansion by combining adjacent rows:
//
//	    R[i][j] = R[i][j-1] + (R[i][j-1] − R[i-1][j-1]) / (4^j − 1)
//
//	The running estimate is the diagonal R[i][i]; for smooth integrands
//	it gains roughly two orders of accuracy per row.
//
// Usage:
//
//	integral, err := romberg.Integrate(math.Exp, 0, 1, 20)
//
// The depth argument caps the number of rows (and so the cost at
// 2^(depth−1)+1 evaluations); the ladder stops early once two successive
// diagonal estimates agree to the configured tolerance (WithTolerance).
// Discontinuous or singular integrands defeat the extrapolation — use
// package adaptive for those.
//
// Complexity: O(2^rows) function evaluations, O(depth) memory.
//
// Errors:
//   - ErrNonPositiveDepth — depth < 1.
//   - ErrInfiniteLimit    — a or b is NaN or ±Inf.
//   - ErrInvertedLimits   — a > b (a == b integrates to 0).
package romberg

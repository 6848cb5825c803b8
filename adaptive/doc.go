// Package adaptive integrates functions whose behavior varies across
// the interval, concentrating samples where the integrand is difficult.
//
// 🔍 Simpson-Simpson adaptation
//
//	Starting at the left end, the method finds the widest dyadic
//	subinterval on which the plain Simpson estimate and the two-panel
//	composite Simpson estimate agree to the pro-rated tolerance
//
//	    2·tolerance·len/(b−a)
//
//	accepts the composite value there, then repeats from the right edge
//	of the accepted piece until it reaches b. Disagreement halves the
//	subinterval; already-computed samples are reused on the way down.
//
// Usage:
//
//	integral, err := adaptive.Simpson(f, 0, 1, 1e-3, 1e-9)
//
// A smooth region is crossed in a handful of wide panels while a spike
// or kink gets resolved down to minH. If even a minH-wide subinterval
// cannot meet its tolerance share the method gives up with
// ErrMinStepReached rather than return a silently wrong value.
//
// Complexity: O(samples) time, O(log((b−a)/minH)) memory for the
// pending-interval chain.
//
// Errors:
//   - ErrMinStepReached      — tolerance unreachable above minH.
//   - ErrInfiniteLimit       — a or b is NaN or ±Inf.
//   - ErrInvertedLimits      — a >= b.
//   - ErrNonPositiveMinStep  — minH <= 0.
//   - ErrNonPositiveTolerance — tolerance <= 0.
package adaptive

// Package gauss builds Gauss quadrature rules on top of the orthopoly
// zero solvers and evaluates integrals with them.
//
// 🎯 What a rule is
//
//	An n-point rule is a set of nodes x_i and weights w_i such that
//
//	    Σ w_i·f(x_i)
//
//	equals ∫ f(x)·w(x) dx exactly for every polynomial f of degree
//	≤ 2n−1, where w(x) is the weight function of the polynomial family.
//
// Families and their integrals:
//
//	Laguerre         ∫₀^∞  f(x)·e⁻ˣ dx
//	Hermite          ∫_ℝ   f(x)·e^(−x²) dx
//	ChebyshevFirst   ∫₋₁¹  f(x)/√(1−x²) dx
//	ChebyshevSecond  ∫₋₁¹  f(x)·√(1−x²) dx
//	Legendre         ∫_a^b f(x) dx
//
// Usage:
//
//	integral, err := gauss.Laguerre(func(x float64) float64 { return 1 }, 20)
//	// integral ≈ 1 (∫₀^∞ e⁻ˣ dx)
//
// Nodes and weights are also available directly:
//
//	rule, err := gauss.NewHermiteRule(64)
//	for i := range rule.Nodes { ... rule.Weights[i] ... }
//
// Construction cost is dominated by the eigenvalue solve of the Jacobi
// matrix, O(n²·log(range/ulp)); both Chebyshev rules are closed-form and
// cost O(n). Evaluation is always O(n) function calls.
//
// Large Hermite degrees push 2ⁿ⁻¹·n! past the float64 range; the weight
// ratio is then recomputed exactly with math/big before converting back.
// If nodes or weights still degrade to NaN the rule is returned as-is and
// an advisory is written to the configured slog.Logger (WithLogger).
//
// Errors:
//   - ErrNonPositiveDegree — n < 1.
//   - ErrInfiniteLimit     — Legendre limit is NaN or ±Inf.
//   - ErrInvertedLimits    — Legendre limits with a >= b.
package gauss

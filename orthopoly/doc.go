// Package orthopoly evaluates classical orthogonal polynomial families —
// Laguerre, Hermite, Chebyshev (both kinds) and Legendre — and computes
// their zeros.
//
// 🚀 Why do the zeros matter?
//
//	The n zeros of a degree-n orthogonal polynomial are the nodes of the
//	corresponding n-point Gauss quadrature rule. They are also exactly
//	the eigenvalues of the family's tridiagonal Jacobi matrix, built from
//	the three-term recurrence coefficients — which is how this package
//	computes them (see the eigen package).
//
// Families and their Jacobi bands (row i, 0-based):
//
//	Laguerre  L_n : diag 2i+1, off i          (weight e⁻ˣ  on [0, ∞))
//	Hermite   H_n : diag 0,    off √(i/2)     (weight e⁻ˣ² on ℝ)
//	Legendre  P_n : diag 0,    off i/√(4i²−1) (weight 1    on [−1, 1])
//	Chebyshev T_n, U_n : zeros in closed cosine form — no eigen solve
//
// Evaluation uses the families' three-term recurrences in O(n); no
// coefficient tables are materialized. Zeros are always returned in
// ascending order, matching eigen.Eigenvalues.
//
// For Laguerre polynomials of large degree the package also offers
// ApproximateZeros (Bessel-J₀-based asymptotics) and NewtonRaphson
// refinement — a cheap starting point when the full eigenvalue solve is
// not needed.
//
// Errors:
//   - ErrZeroDerivative — Newton-Raphson hit a flat spot.
//   - ErrNoConvergence  — Newton-Raphson exhausted its iteration budget.
//
// Constructors panic on negative degree (programmer error); a degree of
// zero is valid and has no zeros.
package orthopoly

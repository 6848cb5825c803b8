// Package eigen computes all eigenvalues of real symmetric tridiagonal
// matrices by Sturm-sequence bisection.
//
// 🚀 Why tridiagonal matrices?
//
//	The zeros of a degree-n orthogonal polynomial (Laguerre, Hermite,
//	Legendre, …) are exactly the eigenvalues of its tridiagonal Jacobi
//	matrix, built from the polynomial's three-term recurrence. Every
//	Gauss quadrature rule therefore reduces to the problem this package
//	solves.
//
// The matrix is never materialized: two equal-length slices are the matrix.
//
//	diag[i] — main-diagonal entry of row i
//	off[i]  — sub/super-diagonal entry coupling rows i-1 and i (off[0] is
//	          by convention unused; only its absolute value can leak into
//	          the row-0 Gershgorin radius)
//
// Algorithm Outline:
//  1. GershgorinBounds — an interval [lower, upper] guaranteed to contain
//     every eigenvalue, as the union of per-row intervals
//     diag[i] ± (|off[i]| + |off[i+1]|).
//  2. CountLessThan(x) — the Sturm recurrence
//     q ← diag[i] − x − off[i]²/q
//     counts sign changes, i.e. eigenvalues strictly below x, in O(n).
//  3. KthEigenvalue — bisect [lower, upper], keeping the half that still
//     contains the k-th eigenvalue according to the Sturm count, until the
//     interval is narrower than eps·(|upper|+|lower|).
//
// Eigenvalues returns all n roots in ascending order. By default each
// index is searched independently on a worker pool — the inputs are
// read-only, so the searches share nothing and cannot race. The
// WithSharedBounds option switches to a strictly sequential descending
// sweep that reuses every Sturm count to tighten the bounds of
// neighbouring indices (less redundant work, no parallelism).
//
// Complexity:
//
//	Time   = O(n² · log(range/ulp)) for all n eigenvalues
//	Memory = O(n)
//
// Every bisection halves its interval, so termination is guaranteed in a
// few dozen iterations per root; no operation can hang and there is no
// hidden state between calls.
//
// Errors:
//   - ErrEmptyMatrix        — n == 0.
//   - ErrDimensionMismatch  — len(diag) != len(off).
//   - ErrIndexOutOfRange    — k outside [0, n).
package eigen

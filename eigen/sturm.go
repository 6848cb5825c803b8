package eigen

import "math"

// CountLessThan returns the number of eigenvalues of (diag, off) that are
// strictly less than x. The result is always in [0, n].
//
// It runs the three-term Sturm recurrence over the bands,
//
//	q ← diag[i] − x − off[i]²/q        (q starts at 1)
//
// counting one eigenvalue per negative q. The q values are the ratios of
// successive leading principal minors of (M − x·I); tracking the ratio
// instead of the minors themselves keeps the scan O(n) and overflow-free.
//
// When q underflows to exactly zero the next division would blow up, so
// the recurrence substitutes |off[i]|/eps for off[i]²/q — the standard
// guard that preserves the sign pattern without producing NaN or Inf.
func CountLessThan(diag, off []float64, x float64) (int, error) {
	if err := validate(diag, off); err != nil {
		return 0, err
	}

	return countLessThan(diag, off, x), nil
}

// countLessThan assumes validated inputs.
func countLessThan(diag, off []float64, x float64) int {
	q := 1.0
	count := 0
	for i := range diag {
		if q == 0 {
			q = diag[i] - x - math.Abs(off[i])/epsilon
		} else {
			q = diag[i] - x - off[i]*off[i]/q
		}
		// Signbit, not q<0: a q of -0.0 is a sign change too.
		if math.Signbit(q) {
			count++
		}
	}

	return count
}

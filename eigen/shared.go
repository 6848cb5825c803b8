package eigen

import "math"

// sharedBoundsSweep computes all n eigenvalues in one strictly sequential
// descending sweep (k = n-1 down to 0), sharing bound information between
// the searches.
//
// Two solve-local arrays hold the tightest known enclosure per index,
// both initialized to the global Gershgorin bounds. Eigenvalues are
// ordered, so every Sturm count c taken anywhere in the sweep carries
// information about two indices at once:
//
//	λ[c-1] < mid  — mid tightens the upper bound of index c-1
//	λ[c]   ≥ mid  — mid tightens the lower bound of index c
//
// and each finished root caps the upper bound of the index below it.
// Later searches therefore start from intervals already narrowed by
// earlier ones instead of re-deriving them from scratch.
//
// The arrays are mutated across iterations of the outer sweep, which is
// exactly why this function is sequential: run concurrently it would need
// per-slot synchronization that erases the saved work. They are discarded
// when the call returns — nothing is promoted to package state.
func sharedBoundsSweep(diag, off []float64, bounds Interval) []float64 {
	n := len(diag)
	out := make([]float64, n)

	lowerBounds := make([]float64, n)
	upperBounds := make([]float64, n)
	for i := range lowerBounds {
		lowerBounds[i] = bounds.Lower
		upperBounds[i] = bounds.Upper
	}

	var lower, upper, mid, tolerance float64
	var c int
	for k := n - 1; k >= 0; k-- {
		// λ[k] dominates every λ[i] with i <= k, so the tightest lower
		// bound recorded for any index up to k applies to k as well.
		lower = lowerBounds[k]
		for i := 0; i < k; i++ {
			if lowerBounds[i] > lower {
				lower = lowerBounds[i]
			}
		}
		upper = upperBounds[k]

		tolerance = 2 * epsilon * (math.Abs(upper) + math.Abs(lower))
		for math.Abs(upper-lower) > tolerance {
			mid = (upper + lower) / 2
			c = countLessThan(diag, off, mid)

			if c < n && mid > lowerBounds[c] {
				lowerBounds[c] = mid
			}
			if c > 0 && mid < upperBounds[c-1] {
				upperBounds[c-1] = mid
			}

			if c >= k+1 {
				upper = mid
			} else {
				lower = mid
			}

			tolerance = epsilon * (math.Abs(upper) + math.Abs(lower))
			if tolerance == 0 {
				tolerance = epsilon
			}
		}

		out[k] = (lower + upper) / 2

		// λ[k-1] cannot exceed the root just pinned down.
		if k > 0 && upper < upperBounds[k-1] {
			upperBounds[k-1] = upper
		}
	}

	return out
}

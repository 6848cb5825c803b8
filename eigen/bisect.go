package eigen

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// KthEigenvalue returns the k-th smallest eigenvalue of (diag, off),
// k in [0, n). Indexing is ascending and matches the order of the vector
// returned by Eigenvalues — no "k-th largest" convention anywhere in the
// public surface.
//
// The root is isolated by bisecting the Gershgorin interval: the midpoint
// Sturm count tells which half still contains eigenvalue k. The loop stops
// once the interval is narrower than eps·(|upper|+|lower|) — a tolerance
// that tracks the interval's own magnitude rather than a fixed absolute
// bound, so roots near zero converge as tightly as large ones.
func KthEigenvalue(diag, off []float64, k int) (float64, error) {
	if err := validate(diag, off); err != nil {
		return 0, err
	}
	if k < 0 || k >= len(diag) {
		return 0, ErrIndexOutOfRange
	}

	return kthEigenvalue(diag, off, k, gershgorin(diag, off)), nil
}

// kthEigenvalue bisects bounds down to eigenvalue k. Inputs are assumed
// validated; bounds is a private copy, so concurrent calls never interact.
func kthEigenvalue(diag, off []float64, k int, bounds Interval) float64 {
	lower, upper := bounds.Lower, bounds.Upper

	tolerance := 2 * epsilon * (math.Abs(upper) + math.Abs(lower))
	var mid float64
	for math.Abs(upper-lower) > tolerance {
		mid = (upper + lower) / 2

		// c eigenvalues lie strictly below mid: eigenvalue k is below mid
		// exactly when c >= k+1.
		if countLessThan(diag, off, mid) >= k+1 {
			upper = mid
		} else {
			lower = mid
		}

		tolerance = epsilon * (math.Abs(upper) + math.Abs(lower))
		if tolerance == 0 {
			tolerance = epsilon
		}
	}

	return (lower + upper) / 2
}

// Eigenvalues returns all n eigenvalues of (diag, off) in ascending order.
//
// By default every index is searched independently on a pool of
// WithWorkers goroutines (runtime.NumCPU() when unset): the band slices
// are only ever read and each worker writes a distinct result slot, so the
// searches are race-free by construction and the output order is fixed by
// index, never by completion time. WithSharedBounds selects the sequential
// sweep from shared.go instead.
//
// The inputs are borrowed for the duration of the call and never mutated;
// calling twice on the same slices returns identical results.
func Eigenvalues(diag, off []float64, opts ...Option) ([]float64, error) {
	if err := validate(diag, off); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	bounds := gershgorin(diag, off)
	if o.sharedBounds {
		return sharedBoundsSweep(diag, off, bounds), nil
	}

	return parallelBisect(diag, off, bounds, o.workers), nil
}

// parallelBisect fans the per-index searches out over a worker pool.
// Work is handed out through an atomic counter so uneven convergence
// speeds cannot starve a worker.
func parallelBisect(diag, off []float64, bounds Interval, workers int) []float64 {
	n := len(diag)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	out := make([]float64, n)
	if workers == 1 {
		for k := 0; k < n; k++ {
			out[k] = kthEigenvalue(diag, off, k, bounds)
		}

		return out
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				k := int(next.Add(1)) - 1
				if k >= n {
					return
				}
				out[k] = kthEigenvalue(diag, off, k, bounds)
			}
		}()
	}
	wg.Wait()

	return out
}

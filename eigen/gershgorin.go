package eigen

import (
	"math"
	"runtime"
	"sync"
)

// GershgorinBounds returns an interval guaranteed to contain every
// eigenvalue of the symmetric tridiagonal matrix (diag, off).
//
// Row i contributes the candidate interval diag[i] ± r_i, where
// r_i = |off[i]| + |off[i+1]| and the last row only has the single term
// |off[n-1]|. The result is the union hull of all row intervals.
//
// The per-row intervals are independent and combined with an associative
// min/max merge, so large matrices are reduced in parallel chunks; the
// chunking never changes the result.
func GershgorinBounds(diag, off []float64) (Interval, error) {
	if err := validate(diag, off); err != nil {
		return Interval{}, err
	}

	return gershgorin(diag, off), nil
}

// gershgorin assumes validated inputs.
func gershgorin(diag, off []float64) Interval {
	n := len(diag)

	// Seed with the last row, whose radius has a single off-diagonal term.
	last := Interval{
		Lower: diag[n-1] - math.Abs(off[n-1]),
		Upper: diag[n-1] + math.Abs(off[n-1]),
	}
	if n == 1 {
		return last
	}

	if n-1 >= parallelRowThreshold {
		return merge(last, rowHullParallel(diag, off, n-1))
	}

	return merge(last, rowHull(diag, off, 0, n-1))
}

// rowHull folds rows [from, to) into their union hull sequentially.
func rowHull(diag, off []float64, from, to int) Interval {
	hull := Interval{Lower: math.Inf(1), Upper: math.Inf(-1)}
	var r float64
	for i := from; i < to; i++ {
		r = math.Abs(off[i]) + math.Abs(off[i+1])
		hull.Lower = min(hull.Lower, diag[i]-r)
		hull.Upper = max(hull.Upper, diag[i]+r)
	}

	return hull
}

// rowHullParallel splits rows [0, rows) across one chunk per CPU and
// merges the partial hulls. Inputs are read-only; each worker writes only
// its own slot, so no synchronization beyond the WaitGroup is needed.
func rowHullParallel(diag, off []float64, rows int) Interval {
	workers := runtime.NumCPU()
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers

	partial := make([]Interval, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		from := w * chunk
		to := min(from+chunk, rows)
		wg.Add(1)
		go func(w, from, to int) {
			defer wg.Done()
			partial[w] = rowHull(diag, off, from, to)
		}(w, from, to)
	}
	wg.Wait()

	hull := partial[0]
	for _, p := range partial[1:] {
		hull = merge(hull, p)
	}

	return hull
}

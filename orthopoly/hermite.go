package orthopoly

import (
	"math"

	"github.com/katalvlaran/integra/eigen"
)

// Hermite is the degree-n (physicists') Hermite polynomial H_n,
// orthogonal on ℝ with weight e⁻ˣ².
type Hermite struct {
	degree int
}

// NewHermite returns H_n. Panics if degree is negative.
func NewHermite(degree int) Hermite {
	checkDegree("Hermite", degree)

	return Hermite{degree: degree}
}

// Degree reports n.
func (h Hermite) Degree() int { return h.degree }

// Eval computes H_n(x) via the recurrence
//
//	H_k = 2x·H_{k-1} − 2(k-1)·H_{k-2}
func (h Hermite) Eval(x float64) float64 {
	if h.degree == 0 {
		return 1
	}
	if h.degree == 1 {
		return 2 * x
	}

	previous := 1.0  // H_{k-2}
	current := 2 * x // H_{k-1}
	var next float64 // H_k
	for k := 2; k <= h.degree; k++ {
		next = 2*x*current - 2*float64(k-1)*previous
		previous, current = current, next
	}

	return next
}

// Zeros returns the n zeros of H_n in ascending order, computed as the
// eigenvalues of the Jacobi matrix diag = 0, off[i] = √(i/2). The zeros
// are symmetric about the origin; odd degrees include 0 itself.
func (h Hermite) Zeros() ([]float64, error) {
	if h.degree == 0 {
		return []float64{}, nil
	}

	diag := make([]float64, h.degree)
	off := make([]float64, h.degree)
	for i := 1; i < h.degree; i++ {
		off[i] = math.Sqrt(float64(i) / 2)
	}

	return eigen.Eigenvalues(diag, off)
}

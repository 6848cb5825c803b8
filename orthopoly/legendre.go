package orthopoly

import (
	"math"

	"github.com/katalvlaran/integra/eigen"
)

// Legendre is the degree-n Legendre polynomial P_n, orthogonal on
// [−1, 1] with weight 1.
type Legendre struct {
	degree int
}

// NewLegendre returns P_n. Panics if degree is negative.
func NewLegendre(degree int) Legendre {
	checkDegree("Legendre", degree)

	return Legendre{degree: degree}
}

// Degree reports n.
func (p Legendre) Degree() int { return p.degree }

// Eval computes P_n(x) via the recurrence
//
//	k·P_k = (2k−1)·x·P_{k-1} − (k−1)·P_{k-2}
func (p Legendre) Eval(x float64) float64 {
	if p.degree == 0 {
		return 1
	}
	if p.degree == 1 {
		return x
	}

	previous := 1.0  // P_{k-2}
	current := x     // P_{k-1}
	var next float64 // P_k
	for k := 2; k <= p.degree; k++ {
		kf := float64(k)
		next = ((2*kf-1)*x*current - (kf-1)*previous) / kf
		previous, current = current, next
	}

	return next
}

// EvalDerivative computes P'_n(x) = n·(x·P_n(x) − P_{n-1}(x))/(x²−1).
// The closed form degenerates at x = ±1; those endpoints are never nodes
// of a Gauss-Legendre rule, so the degenerate value 0 is returned there.
func (p Legendre) EvalDerivative(x float64) float64 {
	if p.degree == 0 || x == 1 || x == -1 {
		return 0
	}
	n := float64(p.degree)

	return n * (x*p.Eval(x) - NewLegendre(p.degree-1).Eval(x)) / (x*x - 1)
}

// Zeros returns the n zeros of P_n in ascending order, computed as the
// eigenvalues of the Jacobi matrix diag = 0, off[i] = i/√(4i²−1)
// (the Golub-Welsch bands for the Legendre recurrence).
func (p Legendre) Zeros() ([]float64, error) {
	if p.degree == 0 {
		return []float64{}, nil
	}

	diag := make([]float64, p.degree)
	off := make([]float64, p.degree)
	for i := 1; i < p.degree; i++ {
		fi := float64(i)
		off[i] = fi / math.Sqrt(4*fi*fi-1)
	}

	return eigen.Eigenvalues(diag, off)
}

package orthopoly

import "github.com/katalvlaran/integra/eigen"

// Laguerre is the degree-n Laguerre polynomial L_n, orthogonal on
// [0, ∞) with weight e⁻ˣ.
type Laguerre struct {
	degree int
}

// NewLaguerre returns L_n. Panics if degree is negative.
func NewLaguerre(degree int) Laguerre {
	checkDegree("Laguerre", degree)

	return Laguerre{degree: degree}
}

// Degree reports n.
func (l Laguerre) Degree() int { return l.degree }

// Eval computes L_n(x) via the recurrence
//
//	k·L_k = (2(k-1)+1 − x)·L_{k-1} − (k-1)·L_{k-2}
func (l Laguerre) Eval(x float64) float64 {
	if l.degree == 0 {
		return 1
	}
	if l.degree == 1 {
		return 1 - x
	}

	previous := 1.0  // L_{k-2}
	current := 1 - x // L_{k-1}
	var next float64 // L_k
	for k := 2; k <= l.degree; k++ {
		a := float64(2*(k-1) + 1)
		b := float64(k - 1)
		next = ((a-x)*current - b*previous) / float64(k)
		previous, current = current, next
	}

	return next
}

// EvalDerivative computes L'_n(x) = n·(L_n(x) − L_{n-1}(x))/x.
// At x = 0 (or degree 0) the closed form degenerates and 0 is returned.
func (l Laguerre) EvalDerivative(x float64) float64 {
	if x == 0 || l.degree == 0 {
		return 0
	}
	n := float64(l.degree)

	return (n*l.Eval(x) - n*NewLaguerre(l.degree-1).Eval(x)) / x
}

// Zeros returns the n zeros of L_n in ascending order, computed as the
// eigenvalues of the Jacobi matrix diag[i] = 2i+1, off[i] = i.
func (l Laguerre) Zeros() ([]float64, error) {
	if l.degree == 0 {
		return []float64{}, nil
	}

	diag := make([]float64, l.degree)
	off := make([]float64, l.degree)
	for i := range diag {
		diag[i] = float64(2*i + 1)
		off[i] = float64(i)
	}

	return eigen.Eigenvalues(diag, off)
}

// ApproximateZero estimates the m-th zero (1-based, ascending) of L_n
// from the m-th positive zero of the Bessel function J₀:
//
//	x_m ≈ j₀ₘ²/(4k_n) · (1 + (j₀ₘ² − 2)/(48·k_n²)),  k_n = n + 1/2
//
// The expansion is sharp for the small zeros (m ≪ n) and degrades
// toward m = n; use the estimates as Newton-Raphson starting points for
// the lower zeros, or fall back to Zeros for the full set.
func (l Laguerre) ApproximateZero(m int) float64 {
	kn := float64(l.degree) + 0.5
	j0m := BesselJ0Zero(m)

	term1 := j0m * j0m / (4 * kn)
	term2 := 1 + (j0m*j0m-2)/(48*kn*kn)

	return term1 * term2
}

// ApproximateZeros returns Bessel-based estimates of all n zeros in
// ascending order, without an eigenvalue solve.
func (l Laguerre) ApproximateZeros() []float64 {
	zeros := make([]float64, l.degree)
	for m := 1; m <= l.degree; m++ {
		zeros[m-1] = l.ApproximateZero(m)
	}

	return zeros
}

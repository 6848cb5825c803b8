package orthopoly

import "math"

// ChebyshevFirst is the degree-n Chebyshev polynomial of the first kind
// T_n, orthogonal on [−1, 1] with weight 1/√(1−x²).
type ChebyshevFirst struct {
	degree int
}

// NewChebyshevFirst returns T_n. Panics if degree is negative.
func NewChebyshevFirst(degree int) ChebyshevFirst {
	checkDegree("ChebyshevFirst", degree)

	return ChebyshevFirst{degree: degree}
}

// Degree reports n.
func (c ChebyshevFirst) Degree() int { return c.degree }

// Eval computes T_n(x) = cos(n·arccos x) for x in [−1, 1].
func (c ChebyshevFirst) Eval(x float64) float64 {
	return math.Cos(float64(c.degree) * math.Acos(x))
}

// Zeros returns the n zeros of T_n in ascending order. Chebyshev zeros
// have the closed form cos((2k−1)π/(2n)), k = 1..n — no eigenvalue solve
// is needed (the Jacobi route would give the same nodes at n× the cost).
func (c ChebyshevFirst) Zeros() ([]float64, error) {
	zeros := make([]float64, c.degree)
	n := float64(c.degree)
	for i := range zeros {
		k := float64(c.degree - i) // descending k ⇒ ascending cosine
		zeros[i] = math.Cos((2*k - 1) * math.Pi / (2 * n))
	}

	return zeros, nil
}

// ChebyshevSecond is the degree-n Chebyshev polynomial of the second kind
// U_n, orthogonal on [−1, 1] with weight √(1−x²).
type ChebyshevSecond struct {
	degree int
}

// NewChebyshevSecond returns U_n. Panics if degree is negative.
func NewChebyshevSecond(degree int) ChebyshevSecond {
	checkDegree("ChebyshevSecond", degree)

	return ChebyshevSecond{degree: degree}
}

// Degree reports n.
func (c ChebyshevSecond) Degree() int { return c.degree }

// Eval computes U_n(x) = sin((n+1)θ)/sin θ with θ = arccos x.
// The removable singularities at x = ±1 take the limit values ±(n+1).
func (c ChebyshevSecond) Eval(x float64) float64 {
	n := float64(c.degree)
	switch x {
	case 1:
		return n + 1
	case -1:
		if c.degree%2 == 0 {
			return n + 1
		}

		return -(n + 1)
	}
	theta := math.Acos(x)

	return math.Sin((n+1)*theta) / math.Sin(theta)
}

// Zeros returns the n zeros of U_n in ascending order:
// cos(kπ/(n+1)), k = 1..n.
func (c ChebyshevSecond) Zeros() ([]float64, error) {
	zeros := make([]float64, c.degree)
	n := float64(c.degree)
	for i := range zeros {
		k := float64(c.degree - i)
		zeros[i] = math.Cos(k * math.Pi / (n + 1))
	}

	return zeros, nil
}

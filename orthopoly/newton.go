package orthopoly

import "math"

// newtonMaxIterations bounds the refinement loop; well-separated
// polynomial zeros converge quadratically in far fewer steps.
const newtonMaxIterations = 200

// NewtonRaphson refines the root estimate x0 of f by Newton iteration
//
//	x ← x − f(x)/df(x)
//
// until the step size drops below tolerance. It is the standard companion
// to ApproximateZeros: a Bessel-based estimate plus a few Newton steps
// recovers a Gauss node without any eigenvalue solve.
//
// Returns ErrZeroDerivative when the iteration lands on a flat spot and
// ErrNoConvergence when the iteration budget runs out.
func NewtonRaphson(f, df func(float64) float64, x0, tolerance float64) (float64, error) {
	x := x0
	var fx, dfx, delta float64
	for i := 0; i < newtonMaxIterations; i++ {
		fx = f(x)
		if fx == 0 {
			return x, nil
		}

		dfx = df(x)
		if dfx == 0 {
			return 0, ErrZeroDerivative
		}

		delta = -fx / dfx
		x += delta
		if math.Abs(delta) < tolerance {
			return x, nil
		}
	}

	return 0, ErrNoConvergence
}

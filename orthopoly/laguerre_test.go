package orthopoly_test

import (
	"testing"

	"github.com/katalvlaran/integra/orthopoly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// laguerre5Zeros are the zeros of L_5 (Abramowitz & Stegun, table 25.9).
var laguerre5Zeros = []float64{
	0.263560319718141, 1.413403059106517, 3.596425771040722,
	7.085810005858837, 12.640800844275783,
}

// TestLaguerre_Eval pins closed-form values of low-degree polynomials:
// L_2(x) = (x²−4x+2)/2, L_3(x) = (−x³+9x²−18x+6)/6.
func TestLaguerre_Eval(t *testing.T) {
	assert.Equal(t, 1.0, orthopoly.NewLaguerre(0).Eval(3.7), "L_0 is constant 1")
	assert.Equal(t, -2.0, orthopoly.NewLaguerre(1).Eval(3), "L_1(x) = 1-x")
	assert.InDelta(t, -0.5, orthopoly.NewLaguerre(2).Eval(1), 1e-15)
	assert.InDelta(t, -1.0/3, orthopoly.NewLaguerre(3).Eval(2), 1e-15)
}

// TestLaguerre_Zeros checks the eigenvalue-based zeros of L_5 against
// tabulated values, ascending.
func TestLaguerre_Zeros(t *testing.T) {
	zeros, err := orthopoly.NewLaguerre(5).Zeros()
	require.NoError(t, err)
	require.Len(t, zeros, 5)
	for i, want := range laguerre5Zeros {
		assert.InDelta(t, want, zeros[i], 1e-6, "zero %d", i)
	}
}

// TestLaguerre_ZerosDegreeZero: a constant polynomial has no zeros.
func TestLaguerre_ZerosDegreeZero(t *testing.T) {
	zeros, err := orthopoly.NewLaguerre(0).Zeros()
	require.NoError(t, err)
	assert.Empty(t, zeros)
}

// TestLaguerre_EvalDerivative checks L'_n against a central finite
// difference away from the x=0 degeneracy.
func TestLaguerre_EvalDerivative(t *testing.T) {
	l := orthopoly.NewLaguerre(6)
	const h = 1e-6
	for _, x := range []float64{0.5, 1.0, 2.5, 7.0} {
		want := (l.Eval(x+h) - l.Eval(x-h)) / (2 * h)
		assert.InDelta(t, want, l.EvalDerivative(x), 1e-4, "L'_6(%v)", x)
	}

	assert.Zero(t, l.EvalDerivative(0), "closed form degenerates at x=0")
}

// TestLaguerre_ApproximateZeros verifies the Bessel-based estimates:
// sharp for the small zeros, strictly increasing throughout, and close
// enough on the lower half for Newton refinement to finish the job.
func TestLaguerre_ApproximateZeros(t *testing.T) {
	l := orthopoly.NewLaguerre(10)

	exact, err := l.Zeros()
	require.NoError(t, err)

	approx := l.ApproximateZeros()
	require.Len(t, approx, 10)
	for i := 1; i < len(approx); i++ {
		assert.Greater(t, approx[i], approx[i-1], "estimates must be increasing")
	}

	// The asymptotic expansion degrades toward m = n; only the lower
	// zeros are reliable Newton starting points.
	for i := 0; i < 5; i++ {
		assert.InDelta(t, exact[i], approx[i], 5e-2, "estimate %d too far off", i)

		refined, err := orthopoly.NewtonRaphson(l.Eval, l.EvalDerivative, approx[i], 1e-12)
		require.NoError(t, err, "refining estimate %d", i)
		assert.InDelta(t, exact[i], refined, 1e-8, "refined zero %d", i)
	}
}

// TestNewLaguerre_NegativeDegreePanics: negative degree is a programmer error.
func TestNewLaguerre_NegativeDegreePanics(t *testing.T) {
	assert.Panics(t, func() { orthopoly.NewLaguerre(-1) })
}

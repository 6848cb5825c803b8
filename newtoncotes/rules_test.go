package newtoncotes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integra/newtoncotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x float64) float64 { return x * x }
func cube(x float64) float64   { return x * x * x }

// integrator is the shared signature of all four rules.
type integrator func(func(float64) float64, float64, float64, int) (float64, error)

var rules = map[string]integrator{
	"rectangle": newtoncotes.Rectangle,
	"trapezoid": newtoncotes.Trapezoid,
	"simpson":   newtoncotes.Simpson,
	"newton3/8": newtoncotes.NewtonThreeEighths,
}

// TestRules_SquareOverUnit: ∫₀¹ x² dx = 1/3 with a fine grid; every
// rule must land within its O(h²) budget.
func TestRules_SquareOverUnit(t *testing.T) {
	for name, rule := range rules {
		got, err := rule(square, 0, 1, 1000)
		require.NoError(t, err, name)
		assert.InDelta(t, 1.0/3, got, 1e-6, name)
	}
}

// TestRules_SineOverHalfPeriod: ∫₀^π sin(x) dx = 2; the fourth-order
// rules should be ~1e-12 here, the second-order ones ~1e-6.
func TestRules_SineOverHalfPeriod(t *testing.T) {
	for name, rule := range rules {
		got, err := rule(math.Sin, 0, math.Pi, 1000)
		require.NoError(t, err, name)
		assert.InDelta(t, 2.0, got, 1e-5, name)
	}

	got, err := newtoncotes.Simpson(math.Sin, 0, math.Pi, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-11, "simpson is fourth order")
}

// TestRules_CubicExactness: Simpson and Newton 3/8 integrate cubics
// exactly even with a single subinterval; trapezoid is exact on lines.
func TestRules_CubicExactness(t *testing.T) {
	got, err := newtoncotes.Simpson(cube, 0, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-15)

	got, err = newtoncotes.NewtonThreeEighths(cube, 0, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-15)

	line := func(x float64) float64 { return 3*x - 7 }
	got, err = newtoncotes.Trapezoid(line, -2, 5, 1)
	require.NoError(t, err)
	assert.InDelta(t, 3*(25-4)/2.0-7*7, got, 1e-12)
}

// TestRules_SecondOrderConvergence: halving h divides the rectangle
// error by about four.
func TestRules_SecondOrderConvergence(t *testing.T) {
	coarse, err := newtoncotes.Rectangle(math.Exp, 0, 1, 100)
	require.NoError(t, err)
	fine, err := newtoncotes.Rectangle(math.Exp, 0, 1, 200)
	require.NoError(t, err)

	want := math.E - 1
	ratio := math.Abs(coarse-want) / math.Abs(fine-want)
	assert.InDelta(t, 4.0, ratio, 0.1)
}

// TestRules_DegenerateInterval: a == b integrates to zero, no error.
func TestRules_DegenerateInterval(t *testing.T) {
	for name, rule := range rules {
		got, err := rule(math.Exp, 2, 2, 10)
		require.NoError(t, err, name)
		assert.Zero(t, got, name)
	}
}

// TestRules_Validation: the shared sentinels, via every rule.
func TestRules_Validation(t *testing.T) {
	for name, rule := range rules {
		_, err := rule(square, 0, 1, 0)
		assert.ErrorIs(t, err, newtoncotes.ErrNonPositiveSteps, name)

		_, err = rule(square, math.Inf(-1), 1, 10)
		assert.ErrorIs(t, err, newtoncotes.ErrInfiniteLimit, name)

		_, err = rule(square, 0, math.NaN(), 10)
		assert.ErrorIs(t, err, newtoncotes.ErrInfiniteLimit, name)

		_, err = rule(square, 1, 0, 10)
		assert.ErrorIs(t, err, newtoncotes.ErrInvertedLimits, name)
	}
}

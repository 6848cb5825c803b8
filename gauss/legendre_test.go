package gauss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integra/gauss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLegendre_Polynomial: a 5-point rule is exact through degree 9.
func TestLegendre_Polynomial(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	got, err := gauss.Legendre(square, 0, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-12)

	ninth := func(x float64) float64 { return math.Pow(x, 9) }
	got, err = gauss.Legendre(ninth, -1, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-12, "odd power over a symmetric interval")
}

// TestLegendre_Exponential: ∫₀¹ eˣ dx = e − 1 to near machine precision
// with 10 points.
func TestLegendre_Exponential(t *testing.T) {
	got, err := gauss.Legendre(math.Exp, 0, 1, 10)
	require.NoError(t, err)
	assert.InDelta(t, math.E-1, got, 1e-12)
}

// TestLegendre_WideInterval: the affine map must scale weights too:
// ∫₀^π sin(x) dx = 2.
func TestLegendre_WideInterval(t *testing.T) {
	got, err := gauss.Legendre(math.Sin, 0, math.Pi, 12)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

// TestNewLegendreRule_Shape: symmetric ascending nodes in (−1, 1),
// positive weights summing to 2.
func TestNewLegendreRule_Shape(t *testing.T) {
	rule, err := gauss.NewLegendreRule(9)
	require.NoError(t, err)
	require.Equal(t, 9, rule.Len())

	var sum float64
	for i := range rule.Nodes {
		assert.Positive(t, rule.Weights[i], "weight %d", i)
		assert.InDelta(t, -rule.Nodes[8-i], rule.Nodes[i], 1e-10, "symmetry at %d", i)
		sum += rule.Weights[i]
	}
	assert.InDelta(t, 2.0, sum, 1e-10, "weights must sum to the interval length")
}

// TestLegendre_Validation: finite ordered limits, positive degree.
func TestLegendre_Validation(t *testing.T) {
	_, err := gauss.Legendre(math.Sin, math.Inf(-1), 1, 5)
	assert.ErrorIs(t, err, gauss.ErrInfiniteLimit)

	_, err = gauss.Legendre(math.Sin, 0, math.NaN(), 5)
	assert.ErrorIs(t, err, gauss.ErrInfiniteLimit)

	_, err = gauss.Legendre(math.Sin, 1, 1, 5)
	assert.ErrorIs(t, err, gauss.ErrInvertedLimits)

	_, err = gauss.Legendre(math.Sin, 0, 1, 0)
	assert.ErrorIs(t, err, gauss.ErrNonPositiveDegree)
}

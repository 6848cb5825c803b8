package gauss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integra/gauss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChebyshevFirst_Moments: ∫₋₁¹ x^m/√(1−x²) dx is π, 0, π/2, 0, 3π/8
// for m = 0..4.
func TestChebyshevFirst_Moments(t *testing.T) {
	for _, tc := range []struct {
		m    int
		want float64
	}{
		{m: 0, want: math.Pi},
		{m: 1, want: 0},
		{m: 2, want: math.Pi / 2},
		{m: 3, want: 0},
		{m: 4, want: 3 * math.Pi / 8},
	} {
		f := func(x float64) float64 { return math.Pow(x, float64(tc.m)) }

		got, err := gauss.ChebyshevFirst(f, 5)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "moment %d", tc.m)
	}
}

// TestChebyshevSecond_Moments: ∫₋₁¹ x^m·√(1−x²) dx is π/2, 0, π/8 for
// m = 0..2.
func TestChebyshevSecond_Moments(t *testing.T) {
	for _, tc := range []struct {
		m    int
		want float64
	}{
		{m: 0, want: math.Pi / 2},
		{m: 1, want: 0},
		{m: 2, want: math.Pi / 8},
	} {
		f := func(x float64) float64 { return math.Pow(x, float64(tc.m)) }

		got, err := gauss.ChebyshevSecond(f, 5)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "moment %d", tc.m)
	}
}

// TestNewChebyshevRules_Shape: both rules are closed-form; nodes must be
// ascending in (−1, 1) and first-kind weights all equal π/n.
func TestNewChebyshevRules_Shape(t *testing.T) {
	first, err := gauss.NewChebyshevFirstRule(8)
	require.NoError(t, err)
	second, err := gauss.NewChebyshevSecondRule(8)
	require.NoError(t, err)

	for _, rule := range []gauss.Rule{first, second} {
		require.Equal(t, 8, rule.Len())
		for i, x := range rule.Nodes {
			assert.Greater(t, x, -1.0)
			assert.Less(t, x, 1.0)
			if i > 0 {
				assert.Greater(t, x, rule.Nodes[i-1], "ordering at %d", i)
			}
		}
	}

	for i, w := range first.Weights {
		assert.InDelta(t, math.Pi/8, w, 1e-15, "first-kind weight %d", i)
	}
}

// TestChebyshev_Validation: degree must be at least one.
func TestChebyshev_Validation(t *testing.T) {
	_, err := gauss.ChebyshevFirst(math.Cos, 0)
	assert.ErrorIs(t, err, gauss.ErrNonPositiveDegree)

	_, err = gauss.ChebyshevSecond(math.Cos, -1)
	assert.ErrorIs(t, err, gauss.ErrNonPositiveDegree)
}

package gauss

import (
	"math"

	"github.com/katalvlaran/integra/orthopoly"
)

// NewChebyshevFirstRule builds the n-point Gauss-Chebyshev rule for
// ∫₋₁¹ f(x)/√(1−x²) dx. Nodes are the cosine zeros of T_n and every
// weight is the constant π/n — no eigenvalue solve involved.
func NewChebyshevFirstRule(n int) (Rule, error) {
	if err := validateDegree(n); err != nil {
		return Rule{}, err
	}

	nodes, err := orthopoly.NewChebyshevFirst(n).Zeros()
	if err != nil {
		return Rule{}, err
	}

	w := math.Pi / float64(n)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = w
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}

// ChebyshevFirst approximates ∫₋₁¹ f(x)/√(1−x²) dx with the n-point rule.
func ChebyshevFirst(f func(float64) float64, n int) (float64, error) {
	rule, err := NewChebyshevFirstRule(n)
	if err != nil {
		return 0, err
	}

	return rule.Integrate(f), nil
}

// NewChebyshevSecondRule builds the n-point Gauss-Chebyshev rule for
// ∫₋₁¹ f(x)·√(1−x²) dx. Nodes are the zeros of U_n; the weight paired
// with node cos(iπ/(n+1)) is
//
//	w_i = π/(n+1) · sin²(iπ/(n+1))
func NewChebyshevSecondRule(n int) (Rule, error) {
	if err := validateDegree(n); err != nil {
		return Rule{}, err
	}

	nodes, err := orthopoly.NewChebyshevSecond(n).Zeros()
	if err != nil {
		return Rule{}, err
	}

	np1 := float64(n + 1)
	weights := make([]float64, n)
	for j := range weights {
		// nodes are ascending: node j is cos(iπ/(n+1)) with i = n−j.
		angle := float64(n-j) * math.Pi / np1
		s := math.Sin(angle)
		weights[j] = math.Pi / np1 * s * s
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}

// ChebyshevSecond approximates ∫₋₁¹ f(x)·√(1−x²) dx with the n-point rule.
func ChebyshevSecond(f func(float64) float64, n int) (float64, error) {
	rule, err := NewChebyshevSecondRule(n)
	if err != nil {
		return 0, err
	}

	return rule.Integrate(f), nil
}

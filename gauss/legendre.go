package gauss

import "github.com/katalvlaran/integra/orthopoly"

// NewLegendreRule builds the n-point Gauss-Legendre rule for
// ∫₋₁¹ f(x) dx. Nodes are the zeros of P_n via the Golub-Welsch Jacobi
// matrix; the weight at x_i is
//
//	w_i = 2 / ((1−x_i²)·P'_n(x_i)²)
//
// Use Legendre to integrate over an arbitrary finite [a, b].
func NewLegendreRule(n int) (Rule, error) {
	if err := validateDegree(n); err != nil {
		return Rule{}, err
	}

	p := orthopoly.NewLegendre(n)
	nodes, err := p.Zeros()
	if err != nil {
		return Rule{}, err
	}

	weights := make([]float64, n)
	for i, x := range nodes {
		d := p.EvalDerivative(x)
		weights[i] = 2 / ((1 - x*x) * d * d)
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}

// Legendre approximates ∫_a^b f(x) dx with the n-point Gauss-Legendre
// rule, affinely mapped from [−1, 1] onto [a, b].
func Legendre(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validateLimits(a, b); err != nil {
		return 0, err
	}

	rule, err := NewLegendreRule(n)
	if err != nil {
		return 0, err
	}

	shift := (a + b) / 2
	scale := (b - a) / 2

	var sum float64
	for i, t := range rule.Nodes {
		sum += rule.Weights[i] * f(shift+scale*t)
	}

	return scale * sum, nil
}

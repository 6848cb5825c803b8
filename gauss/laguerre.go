package gauss

import "github.com/katalvlaran/integra/orthopoly"

// NewLaguerreRule builds the n-point Gauss-Laguerre rule for
// ∫₀^∞ f(x)·e⁻ˣ dx. Nodes are the zeros of L_n; the weight at x_i is
//
//	w_i = x_i / ((n+1)²·L_{n+1}(x_i)²)
func NewLaguerreRule(n int) (Rule, error) {
	if err := validateDegree(n); err != nil {
		return Rule{}, err
	}

	nodes, err := orthopoly.NewLaguerre(n).Zeros()
	if err != nil {
		return Rule{}, err
	}

	next := orthopoly.NewLaguerre(n + 1) // L_{n+1}
	np1 := float64(n + 1)

	weights := make([]float64, n)
	for i, x := range nodes {
		l := next.Eval(x)
		weights[i] = x / (np1 * np1 * l * l)
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}

// Laguerre approximates ∫₀^∞ f(x)·e⁻ˣ dx with the n-point rule.
func Laguerre(f func(float64) float64, n int) (float64, error) {
	rule, err := NewLaguerreRule(n)
	if err != nil {
		return 0, err
	}

	return rule.Integrate(f), nil
}

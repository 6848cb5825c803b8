package gauss

// Rule is a ready-to-evaluate quadrature rule: paired nodes and weights,
// ascending in the nodes. Both slices always have equal length.
type Rule struct {
	Nodes   []float64
	Weights []float64
}

// Len reports the number of points in the rule.
func (r Rule) Len() int { return len(r.Nodes) }

// Integrate evaluates Σ w_i·f(x_i).
func (r Rule) Integrate(f func(float64) float64) float64 {
	var sum float64
	for i, x := range r.Nodes {
		sum += r.Weights[i] * f(x)
	}

	return sum
}

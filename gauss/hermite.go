package gauss

import (
	"log/slog"
	"math"
	"math/big"

	"github.com/katalvlaran/integra/orthopoly"
)

var sqrtPi = math.Sqrt(math.Pi)

// NewHermiteRule builds the n-point Gauss-Hermite rule for
// ∫_ℝ f(x)·e^(−x²) dx. Nodes are the zeros of H_n; the weight at x_i is
//
//	w_i = 2ⁿ⁻¹·n!·√π / (n²·H_{n-1}(x_i)²)
//
// Past n ≈ 170 the numerator (and H_{n-1} at the outermost nodes) leaves
// the float64 range; overflowing ratios are recomputed exactly with
// math/big and converted back. Should nodes or weights still come out
// NaN, the rule is returned as computed and an advisory is logged.
func NewHermiteRule(n int, opts ...Option) (Rule, error) {
	if err := validateDegree(n); err != nil {
		return Rule{}, err
	}
	o := gatherOptions(opts...)

	nodes, err := orthopoly.NewHermite(n).Zeros()
	if err != nil {
		return Rule{}, err
	}

	prev := orthopoly.NewHermite(n - 1) // H_{n-1}
	nf := float64(n)
	numerator := math.Pow(2, nf-1) * floatFactorial(n)

	var bigNumerator *big.Float // built on first overflow only
	weights := make([]float64, n)
	for i, x := range nodes {
		h := prev.Eval(x)
		denominator := nf * nf * h * h

		if math.IsInf(numerator, 0) || math.IsInf(denominator, 0) {
			if bigNumerator == nil {
				bigNumerator = hermiteBigNumerator(n)
			}
			weights[i] = hermiteBigWeight(bigNumerator, nf, h)

			continue
		}

		weights[i] = numerator * sqrtPi / denominator
	}

	if hasNaN(nodes) || hasNaN(weights) {
		o.logger.Warn("gauss: hermite rule degraded; nodes or weights underflowed",
			slog.Int("n", n))
	}

	return Rule{Nodes: nodes, Weights: weights}, nil
}

// Hermite approximates ∫_ℝ f(x)·e^(−x²) dx with the n-point rule.
func Hermite(f func(float64) float64, n int, opts ...Option) (float64, error) {
	rule, err := NewHermiteRule(n, opts...)
	if err != nil {
		return 0, err
	}

	return rule.Integrate(f), nil
}

// floatFactorial computes n! in float64; +Inf past n = 170 signals the
// caller to take the big-number path.
func floatFactorial(n int) float64 {
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}

	return f
}

// hermiteBigNumerator builds 2ⁿ⁻¹·n! exactly.
func hermiteBigNumerator(n int) *big.Float {
	f := new(big.Int).MulRange(1, int64(n)) // n!
	f.Lsh(f, uint(n-1))                     // ·2ⁿ⁻¹

	return new(big.Float).SetPrec(256).SetInt(f)
}

// hermiteBigWeight evaluates 2ⁿ⁻¹·n!·√π / (n²·h²) through big.Float.
// An infinite h means the true weight is far below the subnormal range;
// 0 is the closest representable value.
func hermiteBigWeight(numerator *big.Float, n, h float64) float64 {
	if math.IsInf(h, 0) {
		return 0
	}

	denominator := new(big.Float).SetPrec(256).SetFloat64(h)
	denominator.Mul(denominator, denominator)
	denominator.Mul(denominator, new(big.Float).SetFloat64(n*n))

	ratio, _ := new(big.Float).SetPrec(256).Quo(numerator, denominator).Float64()

	return ratio * sqrtPi
}

// hasNaN reports whether any entry is NaN.
func hasNaN(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

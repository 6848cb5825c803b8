package newtoncotes

// Trapezoid approximates ∫_a^b f(x) dx with the composite trapezoid
// rule: h·(f(a)/2 + f(x₁) + … + f(x_{n-1}) + f(b)/2). Exact for linear
// integrands; error O(h²).
func Trapezoid(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validate(a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	sum := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}

	return sum * h, nil
}

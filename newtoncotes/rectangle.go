package newtoncotes

// Rectangle approximates ∫_a^b f(x) dx with the composite midpoint rule:
// each of the n subintervals contributes h·f(midpoint). Exact for linear
// integrands; error O(h²) otherwise.
func Rectangle(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validate(a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}

	return sum * h, nil
}

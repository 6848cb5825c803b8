package newtoncotes

// Simpson approximates ∫_a^b f(x) dx with the composite Simpson rule:
// every subinterval [x_i, x_{i+1}] contributes
//
//	h/6 · (f(x_i) + 4·f(x_i + h/2) + f(x_{i+1}))
//
// Interior endpoints are shared by two subintervals, so they carry
// coefficient 2 in the assembled sum and f(b) closes it. Exact through
// cubic integrands; error O(h⁴).
func Simpson(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validate(a, b, n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)
	half := h / 2

	sum := f(a) + 4*f(a+half)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		sum += 2*f(x) + 4*f(x+half)
	}
	sum += f(b)

	return sum * h / 6, nil
}

package romberg

import "math"

// Integrate approximates ∫_a^b f(x) dx with up to depth rows of the
// Romberg ladder. Each row doubles the trapezoid resolution reusing all
// earlier samples; Richardson extrapolation then cancels the low-order
// error terms column by column. Returns the last diagonal estimate,
// early once two successive diagonals agree to the configured
// tolerance.
func Integrate(f func(float64) float64, a, b float64, depth int, opts ...Option) (float64, error) {
	if err := validate(a, b, depth); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)

	h := b - a
	previous := []float64{h * (f(a) + f(b)) / 2}

	for i := 1; i < depth; i++ {
		h /= 2

		// Refined trapezoid sum: keep every old sample, add the new
		// midpoints (spaced 2h, starting at a+h).
		var mids float64
		for k := 0; k < 1<<(i-1); k++ {
			mids += f(a + h + float64(2*k)*h)
		}
		row := make([]float64, i+1)
		row[0] = previous[0]/2 + h*mids

		// Extrapolate: column j divides by 4^j − 1.
		factor := 1.0
		for j := 1; j <= i; j++ {
			factor *= 4
			row[j] = row[j-1] + (row[j-1]-previous[j-1])/(factor-1)
		}

		if o.tolerance > 0 {
			change := math.Abs(row[i] - previous[i-1])
			if change <= o.tolerance*(math.Abs(row[i])+1) {
				return row[i], nil
			}
		}

		previous = row
	}

	return previous[len(previous)-1], nil
}

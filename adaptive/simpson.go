package adaptive

import "math"

// subInterval is one pending piece of the integration range, with the
// integrand sampled at its endpoints, midpoint and quarter points:
// f[0]..f[4] at offsets 0, ¼, ½, ¾, 1 of the width. next chains to the
// enclosing interval whose right half still awaits integration.
type subInterval struct {
	lower, upper float64
	f            [5]float64
	next         *subInterval
}

// Simpson approximates ∫_a^b f(x) dx with the Simpson-Simpson adaptive
// method. Each candidate subinterval is accepted once its one-panel and
// two-panel Simpson estimates agree within 2·tolerance·len/(b−a), and
// halved otherwise, reusing the samples already taken. Subdivision
// below minH aborts with ErrMinStepReached.
func Simpson(f func(float64) float64, a, b, minH, tolerance float64) (float64, error) {
	if err := validate(a, b, minH, tolerance); err != nil {
		return 0, err
	}

	density := 2 * tolerance / (b - a)

	current := &subInterval{lower: a, upper: b}
	current.f[0] = f(a)
	current.f[2] = f((a + b) / 2)
	current.f[4] = f(b)

	var integral float64
	onePanel, twoPanel := simpsonPair(f, current)
	epsilon := density * (b - a)

	for current.upper-current.lower > minH {
		if math.Abs(onePanel-twoPanel) < epsilon {
			// Estimates agree: bank this piece and resume the
			// enclosing interval from its midpoint.
			integral += twoPanel

			if current.next == nil {
				return integral, nil
			}

			parent := current.next
			parent.lower = current.upper
			parent.f[0] = parent.f[2] // old midpoint becomes left end
			parent.f[2] = parent.f[3] // old ¾ point becomes midpoint
			current = parent
		} else {
			// Estimates disagree: descend into the left half. The
			// half inherits three of its five samples.
			mid := (current.lower + current.upper) / 2
			half := &subInterval{lower: current.lower, upper: mid, next: current}
			half.f[0] = current.f[0]
			half.f[2] = current.f[1]
			half.f[4] = current.f[2]
			current = half
		}

		onePanel, twoPanel = simpsonPair(f, current)
		epsilon = density * (current.upper - current.lower)
	}

	return 0, ErrMinStepReached
}

// simpsonPair samples the two missing quarter points and returns the
// one-panel and two-panel Simpson estimates for the interval.
func simpsonPair(f func(float64) float64, iv *subInterval) (onePanel, twoPanel float64) {
	h := iv.upper - iv.lower
	quarter := h / 4

	iv.f[1] = f(iv.lower + quarter)
	iv.f[3] = f(iv.upper - quarter)

	onePanel = (iv.f[0] + 4*iv.f[2] + iv.f[4]) * h / 6
	twoPanel = (iv.f[0] + 4*iv.f[1] + 2*iv.f[2] + 4*iv.f[3] + iv.f[4]) * h / 12

	return onePanel, twoPanel
}

package orthopoly_test

import (
	"fmt"

	"github.com/katalvlaran/integra/orthopoly"
)

// ExampleHermite demonstrates recurrence evaluation: H_3(x) = 8x³ − 12x.
func ExampleHermite() {
	h3 := orthopoly.NewHermite(3)
	fmt.Println(h3.Eval(2))
	// Output: 40
}

// ExampleLegendre_Zeros computes the Gauss-Legendre nodes of order 2,
// the familiar ±1/√3.
func ExampleLegendre_Zeros() {
	zeros, err := orthopoly.NewLegendre(2).Zeros()
	if err != nil {
		fmt.Println("zeros:", err)
		return
	}
	for _, z := range zeros {
		fmt.Printf("%+.6f\n", z)
	}
	// Output:
	// -0.577350
	// +0.577350
}

// ExampleNewtonRaphson refines a Bessel-based estimate of the smallest
// zero of L_6 without any eigenvalue solve.
func ExampleNewtonRaphson() {
	l6 := orthopoly.NewLaguerre(6)

	estimate := l6.ApproximateZero(1)
	zero, err := orthopoly.NewtonRaphson(l6.Eval, l6.EvalDerivative, estimate, 1e-12)
	if err != nil {
		fmt.Println("refine:", err)
		return
	}
	fmt.Printf("%.6f\n", zero)
	// Output: 0.222847
}

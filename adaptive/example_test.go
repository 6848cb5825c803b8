package adaptive_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integra/adaptive"
)

// ExampleSimpson integrates eˣ over [0, 1] to six figures.
func ExampleSimpson() {
	integral, err := adaptive.Simpson(math.Exp, 0, 1, 1e-3, 1e-6)
	if err != nil {
		fmt.Println("adaptive:", err)
		return
	}
	fmt.Printf("%.6f\n", integral)
	// Output: 1.718282
}

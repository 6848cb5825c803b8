package cmd

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/integra/gauss"
)

// gaussRules maps CLI rule names onto constructors. chebyshev1/2 follow
// the first/second-kind naming used throughout the library.
var gaussRules = map[string]func(int) (gauss.Rule, error){
	"laguerre":   gauss.NewLaguerreRule,
	"hermite":    func(n int) (gauss.Rule, error) { return gauss.NewHermiteRule(n) },
	"chebyshev1": gauss.NewChebyshevFirstRule,
	"chebyshev2": gauss.NewChebyshevSecondRule,
	"legendre":   gauss.NewLegendreRule,
}

// gaussRuleNames lists the valid --rule values, sorted for help output.
func gaussRuleNames() string {
	names := make([]string, 0, len(gaussRules))
	for name := range gaussRules {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// buildGaussRule resolves a rule name and degree.
func buildGaussRule(name string, n int) (gauss.Rule, error) {
	build, ok := gaussRules[strings.ToLower(name)]
	if !ok {
		return gauss.Rule{}, fmt.Errorf("unknown gauss rule %q (want one of: %s)", name, gaussRuleNames())
	}

	return build(n)
}

// integrands are the built-in demo functions for the integrate command.
var integrands = map[string]func(float64) float64{
	"exp":    math.Exp,
	"sin":    math.Sin,
	"sqrt":   math.Sqrt,
	"square": func(x float64) float64 { return x * x },
	"runge":  func(x float64) float64 { return 1 / (1 + 25*x*x) },
}

// integrandNames lists the valid --fn values, sorted for help output.
func integrandNames() string {
	names := make([]string, 0, len(integrands))
	for name := range integrands {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

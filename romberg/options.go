// Package romberg: functional configuration for the extrapolation ladder.
//
// Design goals (mirrors the rest of the library):
//   - Deterministic behavior: options only decide when the ladder may
//     stop early, never how a row is computed.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error), never on user data.

package romberg

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance stops the ladder once successive diagonal
	// estimates agree this closely (scaled by the estimate magnitude).
	DefaultTolerance = 1e-12
)

// Options carries the gathered ladder configuration. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	tolerance float64
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithTolerance sets the early-stop agreement threshold. Zero disables
// early stopping and always runs the full depth. Negative values are a
// programmer error and panic.
func WithTolerance(t float64) Option {
	if t < 0 {
		panic(fmt.Sprintf("romberg: WithTolerance(%g): tolerance must be >= 0", t))
	}

	return func(o *Options) { o.tolerance = t }
}

// gatherOptions folds a user option list over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Package gauss: functional configuration for rule construction.
//
// Design goals (mirrors the rest of the library):
//   - Deterministic behavior: options never change the returned values,
//     only how diagnostics are reported.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error), never on user data.

package gauss

import "log/slog"

// Options carries the gathered rule configuration. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	logger *slog.Logger
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithLogger routes precision-loss advisories (NaN nodes or weights at
// extreme Hermite degrees) to l instead of slog.Default(). A nil logger
// is a programmer error and panics.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("gauss: WithLogger(nil): logger must not be nil")
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions folds a user option list over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

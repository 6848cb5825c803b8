// Package eigen: functional configuration for the eigenvalue solvers.
//
// Design goals (mirrors the rest of the library):
//   - Deterministic behavior: options never change the returned values,
//     only how the work is scheduled.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error), never on user data.

package eigen

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWorkers (0) lets the solver size its pool to runtime.NumCPU().
	DefaultWorkers = 0

	// DefaultSharedBounds keeps the embarrassingly parallel per-index
	// strategy; the shared-bounds sweep is strictly opt-in.
	DefaultSharedBounds = false
)

// Options carries the gathered solver configuration. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	workers      int
	sharedBounds bool
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithWorkers bounds the worker pool used by the parallel per-index solver.
// w == 0 restores the default (runtime.NumCPU()). Negative values are a
// programmer error and panic.
//
// The option is ignored by the shared-bounds sweep, which is sequential by
// construction.
func WithWorkers(w int) Option {
	if w < 0 {
		panic(fmt.Sprintf("eigen: WithWorkers(%d): worker count must be >= 0", w))
	}

	return func(o *Options) { o.workers = w }
}

// WithSharedBounds switches Eigenvalues to the sequential descending sweep
// that maintains per-index bound arrays: every Sturm count taken for one
// eigenvalue tightens the enclosing intervals of its neighbours, so later
// searches start from narrower intervals.
//
// The trade-off is explicit: less redundant work, no parallelism. The
// bound arrays live for the duration of one call and are never shared
// across goroutines or calls.
func WithSharedBounds() Option {
	return func(o *Options) { o.sharedBounds = true }
}

// gatherOptions folds a user option list over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:      DefaultWorkers,
		sharedBounds: DefaultSharedBounds,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

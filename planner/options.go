package planner

import "github.com/hmkoh01/dvrp2d/geometry"

// defaultMaxRecursionDepth is the refiner's recursion safety net: past
// this depth the refiner gives up and reports the straight segment,
// treating it as a diagnostic signal of a pathological obstacle
// configuration rather than a bug to retry.
const defaultMaxRecursionDepth = 100

// DepthCapEvent describes one occurrence of the refiner's recursion depth
// cap firing, for a host-supplied Observer.
type DepthCapEvent struct {
	// Start and End are the endpoints of the edge being refined when the
	// cap fired.
	Start, End geometry.Point

	// Depth is the recursion depth at which the cap fired.
	Depth int
}

// Observer receives diagnostic events emitted by Plan. Implementations
// must not block or panic; Plan does not guard calls to Observer with a
// recover.
type Observer interface {
	// DepthCapExceeded is called once per recursion-depth-cap fallback.
	DepthCapExceeded(event DepthCapEvent)
}

// Options configures one Plan call.
type Options struct {
	// Observer, if non-nil, receives DepthCapEvent notifications.
	Observer Observer

	// MaxRecursionDepth overrides the default recursion safety net
	// (defaultMaxRecursionDepth). Values <= 0 are treated as the default.
	MaxRecursionDepth int
}

// Option customizes an Options value.
type Option func(*Options)

// WithObserver attaches a diagnostics sink to the planner.
func WithObserver(o Observer) Option {
	return func(opt *Options) { opt.Observer = o }
}

// WithMaxRecursionDepth overrides the refiner's recursion safety net.
func WithMaxRecursionDepth(n int) Option {
	return func(opt *Options) { opt.MaxRecursionDepth = n }
}

// DefaultOptions returns the zero-configuration Options: no observer, the
// default recursion cap.
func DefaultOptions() Options {
	return Options{MaxRecursionDepth: defaultMaxRecursionDepth}
}

func (o Options) maxDepth() int {
	if o.MaxRecursionDepth <= 0 {
		return defaultMaxRecursionDepth
	}
	return o.MaxRecursionDepth
}

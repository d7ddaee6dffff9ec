package astar

// Options configures one Search call. The zero value runs an unbounded
// search: no artificial limit on the number of node expansions.
type Options struct {
	// MaxExpansions caps the number of nodes popped from the frontier
	// before the search gives up and reports not-found, as a defensive
	// bound against a pathologically dense visibility graph. <= 0 means
	// unlimited.
	MaxExpansions int
}

// Option customizes an Options value.
type Option func(*Options)

// WithMaxExpansions bounds the number of node expansions Search performs.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// DefaultOptions returns the zero-value (unbounded) Options.
func DefaultOptions() Options {
	return Options{}
}

package dopt

import "github.com/lal-project/linarr/arrangement"

// Result is the outcome of any optimizer in this package: the optimal
// cost, and (when requested) a witnessing arrangement.
type Result struct {
	Cost        uint64
	Arrangement arrangement.Arrangement
}

// Options configures an optimizer call via the functional-options
// pattern.
type Options struct {
	MakeArrangement bool
}

// Option mutates Options.
type Option func(*Options)

// WithMakeArrangement controls whether the optimizer materializes a
// witnessing arrangement (mirrors spec.md §4.I's make_arrangement flag).
// Defaults to true; pass false to skip the allocation when only the
// cost is needed.
func WithMakeArrangement(make bool) Option {
	return func(o *Options) { o.MakeArrangement = make }
}

func resolveOptions(opts []Option) Options {
	o := Options{MakeArrangement: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// arrangementFromOrder builds an Arrangement from a position->vertex
// order slice (the shape dopt/bnb.Result and the recursive optimizers
// below produce), inverting it into the vertex->position direct array
// arrangement.New expects.
func arrangementFromOrder(order []int) (arrangement.Arrangement, error) {
	direct := make([]int, len(order))
	for pos, v := range order {
		direct[v] = pos
	}
	return arrangement.New(direct)
}

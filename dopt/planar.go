package dopt

import (
	"github.com/lal-project/linarr/properties"
	"github.com/lal-project/linarr/tree"
)

// PlanarOptions adds the exhaustive-rooting fallback to the shared
// Options.
type PlanarOptions struct {
	Options
	exhaustiveRooting bool
}

// WithExhaustiveRooting makes PlanarMax try every one of t's n vertices
// as the projective root and keep the best result, instead of rooting
// only at a centroid. spec.md §9 leaves open whether centroidal rooting
// is always optimal for the planar maximum; this flag is the documented
// fallback for callers who need the guaranteed optimum rather than the
// centroid heuristic's result.
func WithExhaustiveRooting() func(*PlanarOptions) {
	return func(o *PlanarOptions) { o.exhaustiveRooting = true }
}

func resolvePlanarOptions(opts []func(*PlanarOptions)) PlanarOptions {
	o := PlanarOptions{Options: Options{MakeArrangement: true}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// PlanarMin returns the minimum Σ|π(u)-π(v)| over every planar
// arrangement of t (spec.md §4.I.2): planar arrangements of a free tree
// are exactly the projective arrangements of t over every choice of
// root, and this returns the projective minimum of t rooted at its
// first centroid (Alemany2022a shows a centroid is a root attaining
// the planar minimum).
func PlanarMin(t *tree.Tree, opts ...func(*PlanarOptions)) (Result, error) {
	o := resolvePlanarOptions(opts)
	rt, err := rootAt(t, properties.TreeCentroid(t)[0])
	if err != nil {
		return Result{}, err
	}
	return ProjectiveMin(rt, WithMakeArrangement(o.MakeArrangement))
}

// PlanarMax returns the maximum Σ|π(u)-π(v)| over every planar
// arrangement of t. Unlike the minimum, the best root for the maximum
// is not known in general to always be a centroid (spec.md §9); by
// default this reduces to the projective maximum rooted at a centroid,
// and WithExhaustiveRooting tries every root and keeps the best.
func PlanarMax(t *tree.Tree, opts ...func(*PlanarOptions)) (Result, error) {
	o := resolvePlanarOptions(opts)

	roots := properties.TreeCentroid(t)
	if o.exhaustiveRooting {
		roots = make([]int, t.NumVertices())
		for i := range roots {
			roots[i] = i
		}
	}

	var best Result
	haveBest := false
	for _, r := range roots {
		rt, err := rootAt(t, r)
		if err != nil {
			return Result{}, err
		}
		res, err := ProjectiveMax(rt, WithMakeArrangement(o.MakeArrangement))
		if err != nil {
			return Result{}, err
		}
		if !haveBest || res.Cost > best.Cost {
			best, haveBest = res, true
		}
	}
	return best, nil
}

// rootAt builds a RootedTree over the same vertex set and edges as t,
// rooted at r.
func rootAt(t *tree.Tree, r int) (*tree.RootedTree, error) {
	rt := tree.NewRootedTree(t.NumVertices())
	for _, e := range t.Underlying().EdgeList() {
		if err := rt.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	if err := rt.SetRoot(r); err != nil {
		return nil, err
	}
	return rt, nil
}

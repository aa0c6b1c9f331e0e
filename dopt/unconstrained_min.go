package dopt

import (
	"github.com/lal-project/linarr/bibliography"
	"github.com/lal-project/linarr/dopt/bnb"
	"github.com/lal-project/linarr/tree"
)

// UnconstrainedMin returns the minimum Σ|π(u)-π(v)| over every
// arrangement of t, via the exact branch-and-bound search of
// spec.md §4.I.4 (dopt/bnb, see its doc.go for the scope this port
// covers).
func UnconstrainedMin(t *tree.Tree, opts ...Option) (Result, error) {
	bibliography.Register(bibliography.Shiloach1979a)
	bibliography.Register(bibliography.Esteban2017a)
	bibliography.Register(bibliography.Chung1984a)

	o := resolveOptions(opts)
	edges := t.Underlying().EdgeList()
	r := bnb.Search(t.NumVertices(), edges, bnb.Minimize)

	if !o.MakeArrangement {
		return Result{Cost: r.Cost}, nil
	}
	arr, err := arrangementFromOrder(r.Order)
	if err != nil {
		return Result{}, err
	}
	return Result{Cost: r.Cost, Arrangement: arr}, nil
}

package dopt

import (
	"github.com/lal-project/linarr/bibliography"
	"github.com/lal-project/linarr/dopt/bnb"
	"github.com/lal-project/linarr/tree"
)

// UnconstrainedMax returns the maximum Σ|π(u)-π(v)| over every
// arrangement of t, via the exact branch-and-bound search of
// spec.md §4.I.5 (dopt/bnb, see its doc.go for the scope this port
// covers).
func UnconstrainedMax(t *tree.Tree, opts ...Option) (Result, error) {
	bibliography.Register(bibliography.Nurse2018a)
	bibliography.Register(bibliography.Nurse2019a)

	o := resolveOptions(opts)
	edges := t.Underlying().EdgeList()
	r := bnb.Search(t.NumVertices(), edges, bnb.Maximize)

	if !o.MakeArrangement {
		return Result{Cost: r.Cost}, nil
	}
	arr, err := arrangementFromOrder(r.Order)
	if err != nil {
		return Result{}, err
	}
	return Result{Cost: r.Cost, Arrangement: arr}, nil
}

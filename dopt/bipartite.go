package dopt

import (
	"errors"
	"sort"

	"github.com/lal-project/linarr/bibliography"
	"github.com/lal-project/linarr/properties"
	"github.com/lal-project/linarr/tree"
)

// ErrNotBipartite is returned by BipartiteMin/BipartiteMax if t's
// underlying graph could not be 2-colored. Every tree is bipartite, so
// this only fires if t's tree invariant has been violated by the time
// it reaches here.
var ErrNotBipartite = errors.New("dopt: graph is not bipartite")

// BipartiteMin returns the minimum Σ|π(u)-π(v)| over every arrangement
// of t that places one color class entirely before the other (spec.md
// §4.I.3): 2-color t, then within each class place vertices by
// non-decreasing degree so that high-degree vertices of one class sit
// next to the class boundary, closest to their many neighbors on the
// other side.
func BipartiteMin(t *tree.Tree, opts ...Option) (Result, error) {
	bibliography.Register(bibliography.Alemany2022a)
	return bipartiteOpt(t, opts, false)
}

// BipartiteMax returns the maximum Σ|π(u)-π(v)| over every such
// arrangement: within each class, vertices are placed by non-increasing
// degree, so the first class's highest-degree vertices sit at the far
// left end and the second class's sit right after the class boundary.
func BipartiteMax(t *tree.Tree, opts ...Option) (Result, error) {
	bibliography.Register(bibliography.Alemany2024a)
	return bipartiteOpt(t, opts, true)
}

func bipartiteOpt(t *tree.Tree, opts []Option, maximize bool) (Result, error) {
	color, ok := properties.BipartiteColoring(t.Underlying())
	if !ok {
		return Result{}, ErrNotBipartite
	}

	var classA, classB []int
	for v, c := range color {
		if c == 0 {
			classA = append(classA, v)
		} else {
			classB = append(classB, v)
		}
	}
	degOf := func(v int) int { return t.Degree(v) }
	less := func(s []int) func(i, j int) bool {
		return func(i, j int) bool {
			if maximize {
				return degOf(s[i]) > degOf(s[j])
			}
			return degOf(s[i]) < degOf(s[j])
		}
	}
	sort.Slice(classA, less(classA))
	sort.Slice(classB, less(classB))

	order := append(append([]int{}, classA...), classB...)
	cost := costOfOrder(t.Underlying().EdgeList(), order)

	o := resolveOptions(opts)
	if !o.MakeArrangement {
		return Result{Cost: cost}, nil
	}
	arr, err := arrangementFromOrder(order)
	if err != nil {
		return Result{}, err
	}
	return Result{Cost: cost, Arrangement: arr}, nil
}

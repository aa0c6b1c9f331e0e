package properties

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/rational"
)

// HeadInitial returns the fraction of directed edges (u,v) of dg with
// π(u) < π(v).
func HeadInitial(dg *graph.DirectedGraph, arr arrangement.Arrangement) rational.Rational {
	edges := dg.EdgeList()
	if len(edges) == 0 {
		return rational.NewRationalFromInt(0)
	}
	var headInitial int64
	for _, e := range edges {
		if arr.Position(e.From) < arr.Position(e.To) {
			headInitial++
		}
	}
	return rational.NewRationalFromInt(headInitial).Quo(rational.NewRationalFromInt(int64(len(edges))))
}

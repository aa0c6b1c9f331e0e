package properties

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/graph"
)

// SumEdgeLengths computes D(G,π) = Σ|π(u)-π(v)| over every edge.
func SumEdgeLengths(edges []graph.Edge, arr arrangement.Arrangement) uint64 {
	var d uint64
	for _, e := range edges {
		pu, pv := arr.Position(e.U), arr.Position(e.V)
		if pu > pv {
			pu, pv = pv, pu
		}
		d += uint64(pv - pu)
	}
	return d
}

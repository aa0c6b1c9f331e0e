package crossings

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/graph"
)

// orient returns (lo, hi), the positions of e's endpoints under arr with
// lo < hi, i.e. e re-expressed in position space with a canonical
// left/right orientation.
func orient(e graph.Edge, arr arrangement.Arrangement) (int, int) {
	pu, pv := arr.Position(e.U), arr.Position(e.V)
	if pu < pv {
		return pu, pv
	}
	return pv, pu
}

// interleave reports whether the position-space edges (l1,r1) and
// (l2,r2) interleave (cross), per spec.md §4.H's definition.
func interleave(l1, r1, l2, r2 int) bool {
	if l1 < l2 {
		return l2 < r1 && r1 < r2
	}
	return l1 < r2 && r2 < r1
}

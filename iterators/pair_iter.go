package iterators

import "github.com/lal-project/linarr/graph"

// PairIter is the independent-edge-pair iterator Q of spec.md §4.J
// ("size_Q"): it walks every unordered pair of edges that share no
// endpoint, in O(1) auxiliary space over a pre-built edge slice,
// advancing two indices and skipping dependent pairs inline rather than
// materializing the O(m^2) pair list up front — this is what lets
// crossings.BruteForce stay Θ(m^2) time, O(1) space as spec.md §4.H
// requires.
type PairIter struct {
	edges []graph.Edge
	i, j  int
}

// NewPairIter returns an iterator over every independent pair of edges
// in edges.
func NewPairIter(edges []graph.Edge) *PairIter {
	return &PairIter{edges: edges, i: 0, j: 1}
}

// Next returns the next independent edge pair and true, or two zero
// edges and false once exhausted.
func (it *PairIter) Next() (graph.Edge, graph.Edge, bool) {
	n := len(it.edges)
	for it.i < n {
		if it.j >= n {
			it.i++
			it.j = it.i + 1
			continue
		}
		e1, e2 := it.edges[it.i], it.edges[it.j]
		it.j++
		if independent(e1, e2) {
			return e1, e2, true
		}
	}
	return graph.Edge{}, graph.Edge{}, false
}

// independent reports whether e1 and e2 share no endpoint.
func independent(e1, e2 graph.Edge) bool {
	return e1.U != e2.U && e1.U != e2.V && e1.V != e2.U && e1.V != e2.V
}

// SizeQ returns |Q(G)|, the number of unordered independent edge pairs,
// via the closed form of spec.md §4.J:
// C(m,2) - (1/2)*Σ_u deg(u)*(deg(u)-1).
func SizeQ(m int, degrees []int) int64 {
	total := int64(m) * int64(m-1) / 2
	var sharing int64
	for _, d := range degrees {
		sharing += int64(d) * int64(d-1)
	}
	return total - sharing/2
}

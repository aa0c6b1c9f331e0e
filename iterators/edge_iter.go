package iterators

import "github.com/lal-project/linarr/graph"

// EdgeIter is the edge iterator E of spec.md §4.F: a pull-style,
// zero-allocation-per-step walk over a pre-built edge slice.
type EdgeIter struct {
	edges []graph.Edge
	pos   int
}

// NewEdgeIter returns an iterator over edges, in the order given.
// NewEdgeIter does not copy edges; callers that mutate the slice
// concurrently with iteration get unspecified results (spec.md §3's
// short-lived-view lifetime rule).
func NewEdgeIter(edges []graph.Edge) *EdgeIter {
	return &EdgeIter{edges: edges}
}

// Next returns the next edge and true, or the zero Edge and false once
// exhausted.
func (it *EdgeIter) Next() (graph.Edge, bool) {
	if it.pos >= len(it.edges) {
		return graph.Edge{}, false
	}
	e := it.edges[it.pos]
	it.pos++
	return e, true
}

// Reset rewinds the iterator to its first edge.
func (it *EdgeIter) Reset() { it.pos = 0 }

// Len returns the total number of edges the iterator walks.
func (it *EdgeIter) Len() int { return len(it.edges) }

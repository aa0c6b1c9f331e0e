package tree

import (
	"errors"

	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/traverse"
)

// Sentinel errors for tree mutation.
var (
	// ErrTooManyEdges is returned when an edge addition would raise the
	// edge count above n-1.
	ErrTooManyEdges = errors.New("tree: would exceed n-1 edges")

	// ErrWouldCreateCycle is returned when an edge addition would create
	// a cycle.
	ErrWouldCreateCycle = errors.New("tree: would create a cycle")
)

// Tree is a free (unrooted) tree: a connected acyclic graph with exactly
// n-1 edges, per spec.md §3.
type Tree struct {
	g   *graph.Graph
	dsu *dsu
}

// NewTree returns an edgeless tree-in-progress on n vertices (a forest of
// n singletons until n-1 edges have been added).
func NewTree(n int) *Tree {
	return &Tree{g: graph.NewGraph(n), dsu: newDSU(n)}
}

// NumVertices returns n.
func (t *Tree) NumVertices() int { return t.g.NumVertices() }

// NumEdges returns the current edge count.
func (t *Tree) NumEdges() int { return t.g.NumEdges() }

// Degree returns the degree of u.
func (t *Tree) Degree(u int) int { return t.g.Degree(u) }

// Neighbors returns a short-lived view of u's neighbors (see
// graph.Graph.Neighbors for the lifetime contract).
func (t *Tree) Neighbors(u int) []int { return t.g.Neighbors(u) }

// HasEdge reports whether {u,v} is an edge.
func (t *Tree) HasEdge(u, v int) bool { return t.g.HasEdge(u, v) }

// CanAddEdge reports whether adding {u,v} would keep t a valid tree (no
// cycle, edge count stays <= n-1), without mutating t.
func (t *Tree) CanAddEdge(u, v int) bool {
	if t.g.NumEdges() >= t.g.NumVertices()-1 {
		return false
	}
	if u < 0 || u >= t.g.NumVertices() || v < 0 || v >= t.g.NumVertices() {
		return false
	}
	return !t.dsu.connected(u, v)
}

// CanAddEdges reports whether the entire batch could be added in order
// without ever violating the tree invariants, tested against a
// hypothetical copy of t's internal bookkeeping (spec.md §4.B).
func (t *Tree) CanAddEdges(edges [][2]int) bool {
	d := t.dsu.clone()
	remaining := t.g.NumVertices() - 1 - t.g.NumEdges()
	for _, e := range edges {
		if remaining <= 0 {
			return false
		}
		u, v := e[0], e[1]
		if u < 0 || u >= t.g.NumVertices() || v < 0 || v >= t.g.NumVertices() {
			return false
		}
		if !d.union(u, v) {
			return false
		}
		remaining--
	}
	return true
}

// AddEdge adds {u,v}, returning ErrTooManyEdges or ErrWouldCreateCycle if
// it would violate a tree invariant, or any graph.Graph precondition error
// (self-loop, duplicate edge, out-of-range vertex).
func (t *Tree) AddEdge(u, v int) error {
	if t.g.NumEdges() >= t.g.NumVertices()-1 {
		return ErrTooManyEdges
	}
	if err := t.g.AddEdge(u, v); err != nil {
		return err
	}
	if !t.dsu.union(u, v) {
		// Roll back: the graph-level add succeeded but closes a cycle.
		_ = t.g.RemoveEdge(u, v)
		return ErrWouldCreateCycle
	}
	return nil
}

// AddEdges adds every edge in the batch, stopping at (and returning) the
// first error.
func (t *Tree) AddEdges(edges [][2]int) error {
	for _, e := range edges {
		if err := t.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// IsTree reports whether t currently has exactly n-1 edges and is
// connected (and therefore, since AddEdge forbids cycles, acyclic) —
// spec.md §4.E's is_tree predicate.
func (t *Tree) IsTree() bool {
	n := t.g.NumVertices()
	if n <= 1 {
		return true
	}
	if t.g.NumEdges() != n-1 {
		return false
	}
	return traverse.IsTree(n, t.g.Neighbors)
}

// Underlying returns the wrapped graph.Graph (read-only use: mutating it
// directly bypasses Tree's cycle bookkeeping).
func (t *Tree) Underlying() *graph.Graph { return t.g }

package graph

import "errors"

// Sentinel errors for graph construction and mutation, mirroring the
// teacher's core package convention of one exported error value per
// precondition.
var (
	// ErrNegativeVertexCount is returned by NewGraph/NewDirectedGraph for n<0.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange is returned when u or v is not in [0,n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop is returned by AddEdge(u,u): self-loops are forbidden
	// (spec.md §1 Non-goals).
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrEdgeExists is returned by AddEdge when the edge is already present
	// (multigraphs are forbidden, spec.md §1 Non-goals).
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrEdgeNotFound is returned by RemoveEdge/HasEdge-dependent helpers
	// when the requested edge is absent.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// smallDegreeThreshold is the degree below which HasEdge uses a linear
// scan instead of a binary search on normalized neighbor lists: for small
// adjacency lists the scan wins on cache locality (spec.md §4.B).
const smallDegreeThreshold = 64

// Graph is a simple undirected graph over dense vertex ids [0,n).
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	n          int
	m          int
	adj        [][]int // adj[u] = neighbors of u
	normalized bool
}

// NewGraph returns an edgeless undirected graph on n vertices.
func NewGraph(n int) *Graph {
	if n < 0 {
		panic(ErrNegativeVertexCount)
	}
	return &Graph{n: n, adj: make([][]int, n), normalized: true}
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns m.
func (g *Graph) NumEdges() int { return g.m }

// checkVertex validates that u is a valid vertex id for g.
func (g *Graph) checkVertex(u int) error {
	if u < 0 || u >= g.n {
		return ErrVertexOutOfRange
	}
	return nil
}

// Degree returns the number of edges incident to u.
func (g *Graph) Degree(u int) int {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	return len(g.adj[u])
}

// Neighbors returns a short-lived view of u's neighbors. Per spec.md §3's
// lifetime rule, the returned slice aliases internal storage and is
// invalidated by any subsequent mutation of g; callers that need to retain
// it across a mutation must copy it.
//
// Iteration order: ascending by neighbor id if g.IsNormalized(), otherwise
// insertion order (deterministic for a given sequence of mutations, but
// unspecified in general).
func (g *Graph) Neighbors(u int) []int {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	return g.adj[u]
}

// HasEdge reports whether {u,v} is an edge of g.
//
// Complexity: O(log deg(u)) if normalized and deg(u) >= smallDegreeThreshold,
// else O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	if err := g.checkVertex(v); err != nil {
		panic(err)
	}
	return contains(g.adj[u], v, g.normalized)
}

// contains reports whether x is present in xs, choosing a binary search
// when xs is sorted and long enough to benefit, else a linear scan.
func contains(xs []int, x int, sorted bool) bool {
	if sorted && len(xs) >= smallDegreeThreshold {
		lo, hi := 0, len(xs)
		for lo < hi {
			mid := (lo + hi) / 2
			switch {
			case xs[mid] == x:
				return true
			case xs[mid] < x:
				lo = mid + 1
			default:
				hi = mid
			}
		}
		return false
	}
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

// insertSorted inserts x into the sorted slice xs and returns the result.
func insertSorted(xs []int, x int) []int {
	i := 0
	for i < len(xs) && xs[i] < x {
		i++
	}
	xs = append(xs, 0)
	copy(xs[i+1:], xs[i:])
	xs[i] = x
	return xs
}

// AddEdge inserts edge {u,v}. Preconditions (spec.md §4.B): u != v and the
// edge must not already exist.
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.HasEdge(u, v) {
		return ErrEdgeExists
	}
	if g.normalized {
		g.adj[u] = insertSorted(g.adj[u], v)
		g.adj[v] = insertSorted(g.adj[v], u)
	} else {
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}
	g.m++
	return nil
}

// AddEdges adds every edge in the batch, stopping at (and returning) the
// first error. Edges added before the failing one remain in the graph:
// this matches the teacher's per-call (not per-batch) transactional
// granularity.
func (g *Graph) AddEdges(edges [][2]int) error {
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEdge deletes edge {u,v}. O(deg(u)+deg(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	g.adj[u] = remove(g.adj[u], v)
	g.adj[v] = remove(g.adj[v], u)
	g.m--
	return nil
}

func remove(xs []int, x int) []int {
	for i, y := range xs {
		if y == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}

// Normalize sorts every vertex's neighbor list ascending, enabling binary
// search in HasEdge. Idempotent; O(n + m log(m/n)).
func (g *Graph) Normalize() {
	if g.normalized {
		return
	}
	for u := range g.adj {
		sortInts(g.adj[u])
	}
	g.normalized = true
}

// IsNormalized reports whether the cached normalized flag is set.
func (g *Graph) IsNormalized() bool { return g.normalized }

func sortInts(xs []int) {
	// Small, local insertion sort: adjacency lists are typically short and
	// this avoids importing sort for a hot-path helper used during
	// Normalize — mirrors the teacher's own small-n insertion-sort
	// preference seen in its sorting-sensitive packages.
	for i := 1; i < len(xs); i++ {
		x := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > x {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = x
	}
}

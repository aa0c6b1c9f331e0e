package graph

// DirectedGraph is a simple directed graph over dense vertex ids [0,n).
// It maintains both out-neighbor and in-neighbor adjacency lists per
// vertex, per spec.md §3.
type DirectedGraph struct {
	n          int
	m          int
	out        [][]int
	in         [][]int
	normalized bool
}

// NewDirectedGraph returns an edgeless directed graph on n vertices.
func NewDirectedGraph(n int) *DirectedGraph {
	if n < 0 {
		panic(ErrNegativeVertexCount)
	}
	return &DirectedGraph{n: n, out: make([][]int, n), in: make([][]int, n), normalized: true}
}

// NumVertices returns n.
func (g *DirectedGraph) NumVertices() int { return g.n }

// NumEdges returns m.
func (g *DirectedGraph) NumEdges() int { return g.m }

func (g *DirectedGraph) checkVertex(u int) error {
	if u < 0 || u >= g.n {
		return ErrVertexOutOfRange
	}
	return nil
}

// OutDegree returns the number of edges leaving u.
func (g *DirectedGraph) OutDegree(u int) int {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	return len(g.out[u])
}

// InDegree returns the number of edges entering u.
func (g *DirectedGraph) InDegree(u int) int {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	return len(g.in[u])
}

// Degree returns OutDegree(u) + InDegree(u).
func (g *DirectedGraph) Degree(u int) int { return g.OutDegree(u) + g.InDegree(u) }

// OutNeighbors returns a short-lived view of u's out-neighbors (see
// Graph.Neighbors for the lifetime contract).
func (g *DirectedGraph) OutNeighbors(u int) []int {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	return g.out[u]
}

// InNeighbors returns a short-lived view of u's in-neighbors.
func (g *DirectedGraph) InNeighbors(u int) []int {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	return g.in[u]
}

// HasEdge reports whether the directed edge (u,v) is present.
func (g *DirectedGraph) HasEdge(u, v int) bool {
	if err := g.checkVertex(u); err != nil {
		panic(err)
	}
	if err := g.checkVertex(v); err != nil {
		panic(err)
	}
	return contains(g.out[u], v, g.normalized)
}

// AddEdge inserts the directed edge (u,v) into both the out-list of u and
// the in-list of v.
func (g *DirectedGraph) AddEdge(u, v int) error {
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
		g.out[u] = insertSorted(g.out[u], v)
		g.in[v] = insertSorted(g.in[v], u)
	} else {
		g.out[u] = append(g.out[u], v)
		g.in[v] = append(g.in[v], u)
	}
	g.m++
	return nil
}

// AddEdges adds every directed edge in the batch, stopping at the first
// error.
func (g *DirectedGraph) AddEdges(edges [][2]int) error {
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEdge deletes the directed edge (u,v).
func (g *DirectedGraph) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	g.out[u] = remove(g.out[u], v)
	g.in[v] = remove(g.in[v], u)
	g.m--
	return nil
}

// Normalize sorts every adjacency list ascending.
func (g *DirectedGraph) Normalize() {
	if g.normalized {
		return
	}
	for u := range g.out {
		sortInts(g.out[u])
		sortInts(g.in[u])
	}
	g.normalized = true
}

// IsNormalized reports whether the normalized cache flag is set.
func (g *DirectedGraph) IsNormalized() bool { return g.normalized }

// Underlying returns the undirected graph obtained by forgetting edge
// direction: {u,v} is an edge iff (u,v) or (v,u) is a directed edge of g.
func (g *DirectedGraph) Underlying() *Graph {
	u := NewGraph(g.n)
	for v := 0; v < g.n; v++ {
		for _, w := range g.out[v] {
			if !u.HasEdge(v, w) {
				_ = u.AddEdge(v, w)
			}
		}
	}
	return u
}

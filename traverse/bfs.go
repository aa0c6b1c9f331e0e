package traverse

// walker encapsulates mutable BFS state, following the teacher's
// bfs.walker shape (a dedicated struct instead of loose locals, so the
// loop body stays readable and the state is easy to inspect mid-search).
type walker struct {
	neighbors NeighborFunc
	opts      Options
	queue     []int
	depth     []int
	parent    []int
	order     []int
}

// BFS runs breadth-first search over n vertices reached via neighbors,
// starting from start, applying any functional Options.
func BFS(n int, neighbors NeighborFunc, start int, opts ...Option) (*Result, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	w := &walker{
		neighbors: neighbors,
		opts:      o,
		queue:     make([]int, 0, n),
		depth:     make([]int, n),
		parent:    make([]int, n),
		order:     make([]int, 0, n),
	}
	for i := range w.depth {
		w.depth[i] = -1
		w.parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	w.loop()

	return &Result{Order: w.order, Depth: w.depth, Parent: w.parent}, nil
}

func (w *walker) enqueue(v, depth, parent int) {
	w.depth[v] = depth
	w.parent[v] = parent
	w.queue = append(w.queue, v)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		d := w.depth[u]

		if !w.opts.OnVisit(u, d) {
			return
		}
		w.order = append(w.order, u)

		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		w.relax(u, d, w.neighbors(u))
		if w.opts.UseReverseEdges && w.opts.reverseNeighbors != nil {
			w.relax(u, d, w.opts.reverseNeighbors(u))
		}
	}
}

func (w *walker) relax(u, depth int, nbrs []int) {
	for _, v := range nbrs {
		if w.depth[v] >= 0 {
			continue
		}
		if !w.opts.ShouldProcess(v) {
			continue
		}
		if !w.opts.ForEachNeighbor(u, v) {
			continue
		}
		w.enqueue(v, depth+1, u)
	}
}

// IsTree reports whether the undirected graph given by (n, neighbors) is
// connected, per spec.md §4.E: a single BFS from vertex 0 must reach all n
// vertices. Callers are expected to have already checked m == n-1
// (spec.md's full is_tree definition is connected ∧ m=n-1 ∧ acyclic; for a
// simple graph with exactly n-1 edges, connectivity alone implies
// acyclicity, so this check suffices once the edge count is known to be
// n-1).
func IsTree(n int, neighbors NeighborFunc) bool {
	if n <= 1 {
		return true
	}
	res, err := BFS(n, neighbors, 0)
	if err != nil {
		return false
	}
	return len(res.Order) == n
}

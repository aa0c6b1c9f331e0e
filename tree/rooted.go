package tree

import "errors"

// ErrNoRootSet is returned by operations that require a root when none has
// been set yet.
var ErrNoRootSet = errors.New("tree: no root set")

// RootedTree is a Tree with one vertex distinguished as the root, edges
// oriented away from it (an arborescence), and an on-demand cache of
// subtree sizes, invalidated by any mutation — the same
// cache-then-invalidate-on-mutation idiom as graph.Graph's normalized
// flag.
type RootedTree struct {
	*Tree
	root       int
	hasRoot    bool
	parent     []int // parent[v] == -1 for the root or an unset tree
	children   [][]int
	subtree    []int
	subtreeOK  bool
}

// NewRootedTree returns an edgeless rooted-tree-in-progress on n vertices
// with no root set yet.
func NewRootedTree(n int) *RootedTree {
	rt := &RootedTree{
		Tree:     NewTree(n),
		root:     -1,
		parent:   make([]int, n),
		children: make([][]int, n),
	}
	for i := range rt.parent {
		rt.parent[i] = -1
	}
	return rt
}

// SetRoot designates r as the root and (re)computes the parent/children
// orientation by a BFS from r over the current (undirected) edge set.
// Requires t.IsTree() to hold.
func (rt *RootedTree) SetRoot(r int) error {
	if r < 0 || r >= rt.NumVertices() {
		return ErrVertexOutOfRangeRooted
	}
	rt.root = r
	rt.hasRoot = true
	rt.orient()
	rt.subtreeOK = false
	return nil
}

// ErrVertexOutOfRangeRooted mirrors graph.ErrVertexOutOfRange for
// SetRoot's own bounds check.
var ErrVertexOutOfRangeRooted = errors.New("tree: root vertex out of range")

func (rt *RootedTree) orient() {
	n := rt.NumVertices()
	for i := 0; i < n; i++ {
		rt.parent[i] = -1
		rt.children[i] = nil
	}
	visited := make([]bool, n)
	queue := []int{rt.root}
	visited[rt.root] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range rt.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			rt.parent[v] = u
			rt.children[u] = append(rt.children[u], v)
			queue = append(queue, v)
		}
	}
}

// Root returns the current root and whether one has been set.
func (rt *RootedTree) Root() (int, bool) { return rt.root, rt.hasRoot }

// Parent returns the parent of u in the rooted orientation, or -1 if u is
// the root.
func (rt *RootedTree) Parent(u int) (int, error) {
	if !rt.hasRoot {
		return -1, ErrNoRootSet
	}
	return rt.parent[u], nil
}

// Children returns a short-lived view of u's children in the rooted
// orientation.
func (rt *RootedTree) Children(u int) ([]int, error) {
	if !rt.hasRoot {
		return nil, ErrNoRootSet
	}
	return rt.children[u], nil
}

// AddEdge re-orients the tree after adding {u,v}, if a root has already
// been set; subtree-size cache is invalidated either way.
func (rt *RootedTree) AddEdge(u, v int) error {
	if err := rt.Tree.AddEdge(u, v); err != nil {
		return err
	}
	rt.subtreeOK = false
	if rt.hasRoot {
		rt.orient()
	}
	return nil
}

// RecomputeSubtreeSizes forces recomputation of cached subtree sizes via a
// single post-order pass from the root.
func (rt *RootedTree) RecomputeSubtreeSizes() error {
	if !rt.hasRoot {
		return ErrNoRootSet
	}
	n := rt.NumVertices()
	rt.subtree = make([]int, n)

	// Explicit stack post-order (two-stack trick), matching spec.md §5's
	// "no language-provided stack depth" preference for tree walks that
	// could otherwise recurse to depth n.
	order := make([]int, 0, n)
	stack := []int{rt.root}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		stack = append(stack, rt.children[u]...)
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		size := 1
		for _, c := range rt.children[u] {
			size += rt.subtree[c]
		}
		rt.subtree[u] = size
	}
	rt.subtreeOK = true
	return nil
}

// SubtreeSize returns the cached size of the subtree rooted at u,
// recomputing first if the cache is stale.
func (rt *RootedTree) SubtreeSize(u int) (int, error) {
	if !rt.hasRoot {
		return 0, ErrNoRootSet
	}
	if !rt.subtreeOK {
		if err := rt.RecomputeSubtreeSizes(); err != nil {
			return 0, err
		}
	}
	return rt.subtree[u], nil
}

// IsArborescence reports whether every non-root vertex has exactly one
// parent edge reachable from the root and the underlying graph is a tree
// — i.e. the rooted orientation is a valid arborescence.
func (rt *RootedTree) IsArborescence() bool {
	if !rt.hasRoot {
		return false
	}
	if !rt.IsTree() {
		return false
	}
	for v := 0; v < rt.NumVertices(); v++ {
		if v == rt.root {
			continue
		}
		if rt.parent[v] == -1 {
			return false
		}
	}
	return true
}

package traverse

import "errors"

// Sentinel errors for traversal, mirroring the teacher's bfs package
// convention of one exported error per precondition.
var (
	// ErrNegativeVertexCount is returned when n<0.
	ErrNegativeVertexCount = errors.New("traverse: negative vertex count")

	// ErrStartOutOfRange is returned when the start vertex is not in [0,n).
	ErrStartOutOfRange = errors.New("traverse: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// NeighborFunc returns the neighbors to explore from u. For directed
// adjacency functions, callers decide whether it returns out-neighbors,
// in-neighbors, or both, depending on UseReverseEdges.
type NeighborFunc func(u int) []int

// Option configures BFS behavior via functional arguments, following the
// teacher's bfs.Option idiom.
type Option func(*Options)

// Options holds parameters and callbacks customizing a BFS run.
type Options struct {
	// ShouldProcess, if non-nil, is consulted before a vertex is enqueued;
	// returning false skips it entirely (it is never visited or counted).
	ShouldProcess func(u int) bool

	// OnVisit is called when visiting a vertex, in dequeue order. If it
	// returns false, BFS stops immediately (early termination).
	OnVisit func(u, depth int) bool

	// ForEachNeighbor filters the neighbors that the NeighborFunc passed
	// to BFS returns for u: returning false for a given neighbor v skips
	// that one edge. The default accepts every edge.
	ForEachNeighbor func(u, v int) bool

	// UseReverseEdges additionally relaxes predecessors when the
	// adjacency function given to BFS is directed (out-neighbors only):
	// the caller must also pass InNeighbors via WithReverseNeighbors.
	UseReverseEdges  bool
	reverseNeighbors NeighborFunc

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no-op hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		ShouldProcess:   func(int) bool { return true },
		OnVisit:         func(int, int) bool { return true },
		ForEachNeighbor: func(int, int) bool { return true },
	}
}

// WithShouldProcess registers a predicate gating which vertices are ever
// enqueued.
func WithShouldProcess(fn func(u int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ShouldProcess = fn
		}
	}
}

// WithOnVisit registers a callback invoked on visit; returning false stops
// the search early.
func WithOnVisit(fn func(u, depth int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor registers a predicate that can skip individual edges.
func WithFilterNeighbor(fn func(u, v int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ForEachNeighbor = fn
		}
	}
}

// WithReverseNeighbors enables UseReverseEdges and supplies the function
// used to fetch the reverse (predecessor) adjacency.
func WithReverseNeighbors(fn NeighborFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.UseReverseEdges = true
		o.reverseNeighbors = fn
	}
}

// WithMaxDepth limits exploration to depth d (d==0 means unlimited).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []int // visited vertices, in visit order
	Depth  []int // Depth[v] == -1 means unvisited
	Parent []int // Parent[v] == -1 means root or unvisited
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool { return r.Depth[v] >= 0 }

// PathTo reconstructs the path from the BFS start vertex to dest. Returns
// false if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, bool) {
	if !r.Visited(dest) {
		return nil, false
	}
	path := []int{dest}
	for cur := dest; r.Parent[cur] != -1; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

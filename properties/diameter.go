package properties

import (
	"github.com/lal-project/linarr/traverse"
	"github.com/lal-project/linarr/tree"
)

// TreeDiameter returns the diameter of t (the longest shortest path
// between any two vertices), found by the standard double-BFS trick:
// a BFS from an arbitrary vertex finds a farthest vertex f, and a BFS
// from f finds the true diameter.
func TreeDiameter(t *tree.Tree) (int, error) {
	n := t.NumVertices()
	if n <= 1 {
		return 0, nil
	}
	first, err := traverse.BFS(n, t.Neighbors, 0)
	if err != nil {
		return 0, err
	}
	far := farthest(first)

	second, err := traverse.BFS(n, t.Neighbors, far)
	if err != nil {
		return 0, err
	}
	return second.Depth[farthest(second)], nil
}

// farthest returns the vertex with the largest BFS depth in r.
func farthest(r *traverse.Result) int {
	best := r.Order[0]
	for _, v := range r.Order {
		if r.Depth[v] > r.Depth[best] {
			best = v
		}
	}
	return best
}

package properties

import (
	"github.com/lal-project/linarr/graph"
)

// BipartiteColoring assigns each vertex of g to side 0 or 1 by
// alternating colors along a BFS traversal from every unvisited vertex
// (covering disconnected graphs). ok is false if g is not bipartite, in
// which case color's contents are unspecified (callers must not rely on
// it, per spec.md §4.J's "undefined; caller asserts" contract).
func BipartiteColoring(g *graph.Graph) (color []int, ok bool) {
	n := g.NumVertices()
	color = make([]int, n)
	for i := range color {
		color[i] = -1
	}

	for start := 0; start < n; start++ {
		if color[start] != -1 {
			continue
		}
		color[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if color[v] == -1 {
					color[v] = 1 - color[u]
					queue = append(queue, v)
				} else if color[v] == color[u] {
					return nil, false
				}
			}
		}
	}
	return color, true
}

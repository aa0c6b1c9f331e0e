package properties

import "github.com/lal-project/linarr/tree"

// TreeCentroid returns the (at most two) centroid vertices of t: those
// minimizing the size of their largest subtree when t is rooted there,
// found in Θ(n) via a single explicit-stack DFS that computes subtree
// sizes rooted at an arbitrary vertex, then evaluates every vertex's
// worst-case component size from those sizes directly (no re-rooting).
func TreeCentroid(t *tree.Tree) []int {
	n := t.NumVertices()
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	parent := make([]int, n)
	order := make([]int, 0, n)
	visited := make([]bool, n)
	stack := []int{0}
	parent[0] = -1
	visited[0] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		for _, v := range t.Neighbors(u) {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				stack = append(stack, v)
			}
		}
	}

	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		if parent[u] != -1 {
			size[parent[u]] += size[u]
		}
	}

	best := -1
	var bestMax int
	result := make([]int, 0, 2)
	for _, v := range order {
		maxComponent := n - size[v]
		for _, nb := range t.Neighbors(v) {
			if nb == parent[v] {
				continue
			}
			if size[nb] > maxComponent {
				maxComponent = size[nb]
			}
		}
		switch {
		case best == -1 || maxComponent < bestMax:
			best = v
			bestMax = maxComponent
			result = result[:0]
			result = append(result, v)
		case maxComponent == bestMax:
			result = append(result, v)
		}
	}
	return result
}

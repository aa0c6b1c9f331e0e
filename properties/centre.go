package properties

import "github.com/lal-project/linarr/tree"

// TreeCentre returns the (at most two) centre vertices of t: those
// minimizing eccentricity, found in Θ(n) by repeated leaf peeling —
// each round removes every current leaf, until 1 or 2 vertices remain.
func TreeCentre(t *tree.Tree) []int {
	n := t.NumVertices()
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	degree := make([]int, n)
	remaining := n
	active := make([]bool, n)
	for v := 0; v < n; v++ {
		degree[v] = t.Degree(v)
		active[v] = true
	}

	leaves := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if degree[v] <= 1 {
			leaves = append(leaves, v)
		}
	}

	for remaining > 2 {
		next := make([]int, 0)
		remaining -= len(leaves)
		for _, leaf := range leaves {
			active[leaf] = false
			for _, nb := range t.Neighbors(leaf) {
				if !active[nb] {
					continue
				}
				degree[nb]--
				if degree[nb] == 1 {
					next = append(next, nb)
				}
			}
		}
		leaves = next
	}

	result := make([]int, 0, 2)
	for v := 0; v < n; v++ {
		if active[v] {
			result = append(result, v)
		}
	}
	return result
}

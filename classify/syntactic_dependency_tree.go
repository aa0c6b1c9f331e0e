package classify

import (
	"sort"

	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/crossings"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/tree"
)

// Class is one bit of the syntactic-dependency-tree classification
// bitmask of spec.md §4.K.
type Class uint8

const (
	ClassProjective Class = 1 << iota
	ClassPlanar
	ClassWG1
	ClassEC1
)

// SyntacticDependencyTreeType classifies the (rooted tree, arrangement)
// pair against every applicable class and returns their bitwise union;
// a tree matching none of them returns 0 (spec.md's "unknown").
func SyntacticDependencyTreeType(rt *tree.RootedTree, arr arrangement.Arrangement) Class {
	edges := rt.Underlying().EdgeList()
	n := rt.NumVertices()
	c := crossings.BruteForceExact(edges, arr)

	var result Class
	planar := c == 0
	if planar {
		result |= ClassPlanar
		root, ok := rt.Root()
		if ok && !rootCovered(root, edges, arr) {
			result |= ClassProjective
		}
	}
	if isEC1(edges, arr) {
		result |= ClassEC1
	}
	if result&ClassProjective == 0 && isWG1(rt, arr, n) {
		result |= ClassWG1
	}
	return result
}

// rootCovered reports whether some edge not incident to root has root's
// position strictly between its own endpoints' positions.
func rootCovered(root int, edges []graph.Edge, arr arrangement.Arrangement) bool {
	pr := arr.Position(root)
	for _, e := range edges {
		if e.U == root || e.V == root {
			continue
		}
		pu, pv := arr.Position(e.U), arr.Position(e.V)
		if pu > pv {
			pu, pv = pv, pu
		}
		if pu < pr && pr < pv {
			return true
		}
	}
	return false
}

// isEC1 reports whether, for every edge, the set of edges crossing it
// all share one common vertex (Pitler2013a's 1-endpoint-crossing
// property).
func isEC1(edges []graph.Edge, arr arrangement.Arrangement) bool {
	for i, e := range edges {
		var candidates map[int]bool
		for j, f := range edges {
			if i == j {
				continue
			}
			if !edgesCross(e, f, arr) {
				continue
			}
			fends := map[int]bool{f.U: true, f.V: true}
			if candidates == nil {
				candidates = fends
				continue
			}
			for v := range candidates {
				if !fends[v] {
					delete(candidates, v)
				}
			}
			if len(candidates) == 0 {
				return false
			}
		}
	}
	return true
}

func edgesCross(e, f graph.Edge, arr arrangement.Arrangement) bool {
	l1, r1 := orient(e, arr)
	l2, r2 := orient(f, arr)
	return l1 < l2 && l2 < r1 && r1 < r2 || l2 < l1 && l1 < r2 && r2 < r1
}

func orient(e graph.Edge, arr arrangement.Arrangement) (int, int) {
	pu, pv := arr.Position(e.U), arr.Position(e.V)
	if pu > pv {
		return pv, pu
	}
	return pu, pv
}

// isWG1 reports whether (rt,arr) is well-nested with gap degree <=1.
//
// The gap degree of a subtree is the number of contiguous position
// blocks its vertex set occupies, minus one. Two subtrees' yields are
// considered to "cross" (violating well-nestedness) when, after
// merging their sorted positions and compressing consecutive runs of
// the same origin, the compressed run sequence has four or more runs —
// equivalently, there exist positions a<b<a'<b' alternating between the
// two yields, which is impossible for any pair of yields that are
// either disjoint or one nested in a gap of the other.
func isWG1(rt *tree.RootedTree, arr arrangement.Arrangement, n int) bool {
	yields := subtreeYields(rt, arr, n)

	for v := 0; v < n; v++ {
		if gapDegree(yields[v]) > 1 {
			return false
		}
	}

	for v1 := 0; v1 < n; v1++ {
		for v2 := v1 + 1; v2 < n; v2++ {
			if isAncestor(rt, v1, v2) || isAncestor(rt, v2, v1) {
				continue
			}
			if yieldsCross(yields[v1], yields[v2]) {
				return false
			}
		}
	}
	return true
}

// subtreeYields returns, for every vertex, the sorted arrangement
// positions of its subtree.
func subtreeYields(rt *tree.RootedTree, arr arrangement.Arrangement, n int) [][]int {
	root, _ := rt.Root()
	parent := make([]int, n)
	order := make([]int, 0, n)
	visited := make([]bool, n)
	stack := []int{root}
	parent[root] = -1
	visited[root] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		children, _ := rt.Children(u)
		for _, c := range children {
			if !visited[c] {
				visited[c] = true
				parent[c] = u
				stack = append(stack, c)
			}
		}
	}

	yields := make([][]int, n)
	for v := 0; v < n; v++ {
		yields[v] = []int{arr.Position(v)}
	}
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		if parent[u] != -1 {
			yields[parent[u]] = append(yields[parent[u]], yields[u]...)
		}
	}
	for v := 0; v < n; v++ {
		sort.Ints(yields[v])
	}
	return yields
}

// isAncestor reports whether a is an ancestor of (or equal to) b.
func isAncestor(rt *tree.RootedTree, a, b int) bool {
	for cur := b; ; {
		if cur == a {
			return true
		}
		p, err := rt.Parent(cur)
		if err != nil || p == -1 {
			return false
		}
		cur = p
	}
}

// gapDegree returns the number of contiguous blocks in the sorted,
// already-deduplicated-by-construction slice positions, minus one.
func gapDegree(positions []int) int {
	if len(positions) == 0 {
		return 0
	}
	blocks := 1
	for i := 1; i < len(positions); i++ {
		if positions[i] != positions[i-1]+1 {
			blocks++
		}
	}
	return blocks - 1
}

// yieldsCross reports whether two disjoint, sorted position slices
// interleave per the run-compression test described on isWG1.
func yieldsCross(a, b []int) bool {
	type tagged struct {
		pos int
		tag int
	}
	merged := make([]tagged, 0, len(a)+len(b))
	for _, p := range a {
		merged = append(merged, tagged{p, 0})
	}
	for _, p := range b {
		merged = append(merged, tagged{p, 1})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].pos < merged[j].pos })

	runs := 0
	last := -1
	for _, m := range merged {
		if m.tag != last {
			runs++
			last = m.tag
		}
	}
	return runs >= 4
}

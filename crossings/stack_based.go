package crossings

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/graph"
)

// StackBasedExact counts crossings with a single left-to-right sweep of
// positions, maintaining a Fenwick-backed order-statistics set of
// "currently open" edges (left endpoint seen, right endpoint not yet
// reached): when an edge's right endpoint is reached, every open edge
// whose own left endpoint sits strictly between the two necessarily has
// its own right endpoint still to come, which is exactly the crossing
// condition of spec.md §4.H. Time Θ(m log n), space O(m).
func StackBasedExact(n int, edges []graph.Edge, arr arrangement.Arrangement) uint64 {
	c, _ := stackBasedCount(n, edges, arr, nil)
	return c
}

// StackBasedUpperBounded behaves as StackBasedExact but stops sweeping
// once the running count is proven to exceed threshold.
func StackBasedUpperBounded(n int, edges []graph.Edge, arr arrangement.Arrangement, threshold uint64) uint64 {
	c, exceeded := stackBasedCount(n, edges, arr, &threshold)
	if exceeded {
		return threshold + 1
	}
	return c
}

func stackBasedCount(n int, edges []graph.Edge, arr arrangement.Arrangement, threshold *uint64) (uint64, bool) {
	if n < 4 || len(edges) < 2 {
		return 0, false
	}

	opensAt := make([]int, n)
	closesAt := make([][]int, n) // closesAt[p] = left endpoints of edges closing at p
	for _, e := range edges {
		l, r := orient(e, arr)
		opensAt[l]++
		closesAt[r] = append(closesAt[r], l)
	}

	bit := newFenwick(n)
	var total uint64
	for p := 0; p < n; p++ {
		if opensAt[p] > 0 {
			bit.add(p, opensAt[p])
		}
		for _, l := range closesAt[p] {
			bit.add(l, -1)
		}
		for _, l := range closesAt[p] {
			total += uint64(bit.rangeSum(l+1, p-1))
		}
		if threshold != nil && total > *threshold {
			return *threshold + 1, true
		}
	}
	return total, false
}

package crossings

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/graph"
)

// ladderQuery records a single M[p][q] lookup an edge needs, bucketed by
// p so the sweep below can answer it using only the current row.
type ladderQuery struct {
	edge int // index into the edges slice
	q    int
	slot int // index into the edge's four resolved terms (see results below)
}

// LadderExact counts crossings with the same recurrence as
// DynamicProgrammingExact, refactored to keep only the current row of M
// in memory (Θ(n) space) instead of the full table, per spec.md §4.H.3.
// Every M[p][q] an edge needs is resolved, offline, the moment the sweep
// reaches row p.
func LadderExact(n int, edges []graph.Edge, arr arrangement.Arrangement) uint64 {
	c, _ := ladderCount(n, edges, arr, nil)
	return c
}

// LadderUpperBounded behaves as LadderExact but short-circuits (checking
// after every edge's contribution is fully resolved) once the running
// count is proven to exceed threshold.
func LadderUpperBounded(n int, edges []graph.Edge, arr arrangement.Arrangement, threshold uint64) uint64 {
	c, exceeded := ladderCount(n, edges, arr, &threshold)
	if exceeded {
		return threshold + 1
	}
	return c
}

func ladderCount(n int, edges []graph.Edge, arr arrangement.Arrangement, threshold *uint64) (uint64, bool) {
	if n < 4 || len(edges) < 2 {
		return 0, false
	}

	type bounds struct{ l, r int }
	eb := make([]bounds, len(edges))
	leftEdges := make([][]int, n) // leftEdges[p] = edge indices with left endpoint p
	queriesAt := make([][]ladderQuery, n)

	for i, e := range edges {
		l, r := orient(e, arr)
		eb[i] = bounds{l, r}
		leftEdges[l] = append(leftEdges[l], i)
		if r-l < 2 {
			continue
		}
		// startsInside = M[r-1][n-1] - M[l][n-1]
		queriesAt[r-1] = append(queriesAt[r-1], ladderQuery{edge: i, q: n - 1, slot: 0})
		if l >= 0 {
			queriesAt[l] = append(queriesAt[l], ladderQuery{edge: i, q: n - 1, slot: 1})
		}
		// nestedInside = M[r-1][r] - M[l][r]
		queriesAt[r-1] = append(queriesAt[r-1], ladderQuery{edge: i, q: eb[i].r, slot: 2})
		queriesAt[l] = append(queriesAt[l], ladderQuery{edge: i, q: eb[i].r, slot: 3})
	}

	// results[i] holds the four resolved terms for edge i:
	// [0]=M[r-1][n-1] [1]=M[l][n-1] [2]=M[r-1][r] [3]=M[l][r]
	results := make([][4]int, len(edges))

	row := make([]int, n)
	delta := make([]int, n)
	for p := 0; p < n; p++ {
		for i := range delta {
			delta[i] = 0
		}
		for _, idx := range leftEdges[p] {
			delta[eb[idx].r]++
		}
		running := 0
		for q := 0; q < n; q++ {
			running += delta[q]
			row[q] += running
		}
		for _, q := range queriesAt[p] {
			results[q.edge][q.slot] = row[q.q]
		}
	}

	var total uint64
	for i, b := range eb {
		if b.r-b.l < 2 {
			continue
		}
		startsInside := results[i][0] - results[i][1]
		nestedInside := results[i][2] - results[i][3]
		total += uint64(startsInside - nestedInside)
		if threshold != nil && total > *threshold {
			return *threshold + 1, true
		}
	}
	return total, false
}

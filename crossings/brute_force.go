package crossings

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/iterators"
)

// BruteForceExact counts crossings by testing every independent edge
// pair from iterators.PairIter directly against the interleaving
// definition. Time Θ(m²), space O(1), per spec.md §4.H.1.
func BruteForceExact(edges []graph.Edge, arr arrangement.Arrangement) uint64 {
	it := iterators.NewPairIter(edges)
	var c uint64
	for {
		e1, e2, ok := it.Next()
		if !ok {
			break
		}
		l1, r1 := orient(e1, arr)
		l2, r2 := orient(e2, arr)
		if interleave(l1, r1, l2, r2) {
			c++
		}
	}
	return c
}

// BruteForceUpperBounded counts crossings the same way as
// BruteForceExact but stops as soon as the running count is proven to
// exceed threshold, returning threshold+1 as the sentinel in that case.
func BruteForceUpperBounded(edges []graph.Edge, arr arrangement.Arrangement, threshold uint64) uint64 {
	it := iterators.NewPairIter(edges)
	var c uint64
	for {
		e1, e2, ok := it.Next()
		if !ok {
			break
		}
		l1, r1 := orient(e1, arr)
		l2, r2 := orient(e2, arr)
		if interleave(l1, r1, l2, r2) {
			c++
			if c > threshold {
				return threshold + 1
			}
		}
	}
	return c
}

package properties

import (
	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/crossings"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/iterators"
)

// Algorithm selects which of the four crossings.* implementations
// NumCrossings delegates to.
type Algorithm int

const (
	AlgorithmBruteForce Algorithm = iota
	AlgorithmDynamicProgramming
	AlgorithmLadder
	AlgorithmStackBased
)

// NumCrossings delegates to spec.md §4.H's crossing engine, per the
// requested algorithm; all four are expected to agree (spec.md §8
// testable property 1).
func NumCrossings(n int, edges []graph.Edge, arr arrangement.Arrangement, algo Algorithm) uint64 {
	switch algo {
	case AlgorithmDynamicProgramming:
		return crossings.DynamicProgrammingExact(n, edges, arr)
	case AlgorithmLadder:
		return crossings.LadderExact(n, edges, arr)
	case AlgorithmStackBased:
		return crossings.StackBasedExact(n, edges, arr)
	default:
		return crossings.BruteForceExact(edges, arr)
	}
}

// SizeQ returns |Q(G)|, the number of unordered independent (vertex-
// disjoint) edge pairs, via the closed form of spec.md §4.J.
func SizeQ(g *graph.Graph) int64 {
	degrees := make([]int, g.NumVertices())
	for v := range degrees {
		degrees[v] = g.Degree(v)
	}
	return iterators.SizeQ(g.NumEdges(), degrees)
}

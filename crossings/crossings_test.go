package crossings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/crossings"
	"github.com/lal-project/linarr/graph"
)

// buildCrossingGraph returns the two edges 0-2 and 1-3 on 4 vertices
// under the identity arrangement, which cross exactly once.
func buildCrossingGraph(t *testing.T) (*graph.Graph, arrangement.Arrangement) {
	t.Helper()
	g := graph.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	// Identity arrangement: positions 0,1,2,3. Edge (0,2) spans [0,2],
	// edge (1,3) spans [1,3]: these interleave (0<1<2<3) -> 1 crossing.
	arr := arrangement.Identity(4)
	return g, arr
}

func allAlgorithmsAgree(t *testing.T, n int, edges []graph.Edge, arr arrangement.Arrangement) uint64 {
	t.Helper()
	bf := crossings.BruteForceExact(edges, arr)
	dp := crossings.DynamicProgrammingExact(n, edges, arr)
	ladder := crossings.LadderExact(n, edges, arr)
	sb := crossings.StackBasedExact(n, edges, arr)
	assert.Equal(t, bf, dp, "DP disagrees with brute force")
	assert.Equal(t, bf, ladder, "ladder disagrees with brute force")
	assert.Equal(t, bf, sb, "stack-based disagrees with brute force")
	return bf
}

func TestCrossings_SingleCrossingPair(t *testing.T) {
	g, arr := buildCrossingGraph(t)
	edges := g.EdgeList()
	c := allAlgorithmsAgree(t, g.NumVertices(), edges, arr)
	assert.Equal(t, uint64(1), c)
}

func TestCrossings_NoneWhenNested(t *testing.T) {
	g := graph.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(1, 2))
	arr := arrangement.Identity(4)
	c := allAlgorithmsAgree(t, 4, g.EdgeList(), arr)
	assert.Equal(t, uint64(0), c)
}

func TestCrossings_PathHasNoCrossings(t *testing.T) {
	n := 6
	g := graph.NewGraph(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	arr := arrangement.Identity(n)
	c := allAlgorithmsAgree(t, n, g.EdgeList(), arr)
	assert.Equal(t, uint64(0), c)
}

func TestCrossings_ReversalInvariant(t *testing.T) {
	// spec.md §8 property 2: crossings are invariant under reversal.
	n := 6
	g := graph.NewGraph(n)
	require.NoError(t, g.AddEdge(0, 3))
	require.NoError(t, g.AddEdge(1, 4))
	require.NoError(t, g.AddEdge(2, 5))
	arr := arrangement.Identity(n)
	edges := g.EdgeList()

	forward := crossings.BruteForceExact(edges, arr)
	reversed := crossings.BruteForceExact(edges, arr.Reverse())
	assert.Equal(t, forward, reversed)

	allAlgorithmsAgree(t, n, edges, arr)
	allAlgorithmsAgree(t, n, edges, arr.Reverse())
}

func TestCrossings_UpperBounded(t *testing.T) {
	g, arr := buildCrossingGraph(t)
	edges := g.EdgeList()
	assert.Equal(t, uint64(1), crossings.BruteForceUpperBounded(edges, arr, 5))
	assert.Equal(t, uint64(1), crossings.BruteForceUpperBounded(edges, arr, 0))
}

func TestCrossings_SmallNIsZero(t *testing.T) {
	g := graph.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1))
	arr := arrangement.Identity(2)
	assert.Equal(t, uint64(0), crossings.DynamicProgrammingExact(2, g.EdgeList(), arr))
	assert.Equal(t, uint64(0), crossings.LadderExact(2, g.EdgeList(), arr))
	assert.Equal(t, uint64(0), crossings.StackBasedExact(2, g.EdgeList(), arr))
}

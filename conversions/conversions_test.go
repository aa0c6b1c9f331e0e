package conversions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/conversions"
	"github.com/lal-project/linarr/tree"
)

func buildScenarioS1(t *testing.T) *tree.RootedTree {
	t.Helper()
	rt := tree.NewRootedTree(10)
	edges := [][2]int{{4, 1}, {1, 0}, {1, 2}, {4, 3}, {4, 9}, {9, 8}, {8, 7}, {8, 6}, {8, 5}}
	require.NoError(t, rt.AddEdges(edges))
	require.NoError(t, rt.SetRoot(4))
	return rt
}

func TestHeadVector_RoundTrip(t *testing.T) {
	rt := buildScenarioS1(t)
	hv, err := conversions.FromRootedTree(rt)
	require.NoError(t, err)
	require.Len(t, hv, 10)
	assert.Equal(t, 0, hv[4]) // root marked 0

	decoded, err := hv.ToRootedTree()
	require.NoError(t, err)
	root, ok := decoded.Root()
	require.True(t, ok)
	assert.Equal(t, 4, root)
	p, err := decoded.Parent(1)
	require.NoError(t, err)
	assert.Equal(t, 4, p)
}

func TestHeadVector_WrongRootCount(t *testing.T) {
	_, err := conversions.HeadVector{0, 0, 1}.ToRootedTree()
	assert.ErrorIs(t, err, conversions.ErrWrongRootCount)
}

func TestHeadVector_SelfLoop(t *testing.T) {
	_, err := conversions.HeadVector{0, 2}.ToRootedTree()
	assert.ErrorIs(t, err, conversions.ErrSelfLoop)
}

func TestPrufer_KnownSequence(t *testing.T) {
	// Star on 4 vertices, centre 0: Prüfer sequence must be [0,0].
	tr := tree.NewTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))

	seq, err := conversions.ToPrufer(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, seq)
}

func TestPrufer_RoundTrip(t *testing.T) {
	// Path 0-1-2-3-4.
	tr := tree.NewTree(5)
	for i := 0; i < 4; i++ {
		require.NoError(t, tr.AddEdge(i, i+1))
	}
	seq, err := conversions.ToPrufer(tr)
	require.NoError(t, err)
	assert.Len(t, seq, 3)

	decoded, err := conversions.FromPrufer(seq)
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.NumVertices())
	assert.True(t, decoded.IsTree())
	for i := 0; i < 4; i++ {
		assert.True(t, decoded.HasEdge(i, i+1))
	}
}

func TestPrufer_S5FromSpec(t *testing.T) {
	// S5: Prüfer sequence [0,0,0] of length 3 decodes to the star on 5
	// vertices centred at 0.
	decoded, err := conversions.FromPrufer([]int{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.NumVertices())
	for v := 1; v < 5; v++ {
		assert.True(t, decoded.HasEdge(0, v))
	}
}

func TestLevelSequence_RoundTrip(t *testing.T) {
	rt := buildScenarioS1(t)
	levels, err := conversions.ToLevelSequence(rt)
	require.NoError(t, err)
	assert.Equal(t, 0, levels[0]) // root is first in preorder, depth 0

	decoded, err := conversions.FromLevelSequence(levels)
	require.NoError(t, err)
	root, ok := decoded.Root()
	require.True(t, ok)
	assert.Equal(t, 0, root)
	assert.Equal(t, 10, decoded.NumVertices())
}

func TestEdgeList_RoundTrip(t *testing.T) {
	tr := tree.NewTree(4)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))

	edges := conversions.ToEdgeList(tr)
	assert.Len(t, edges, 3)

	decoded, err := conversions.FromEdgeList(4, edges)
	require.NoError(t, err)
	assert.True(t, decoded.IsTree())
}

func TestEdgeList_RejectsDisconnected(t *testing.T) {
	_, err := conversions.FromEdgeList(4, [][2]int{{0, 1}})
	assert.ErrorIs(t, err, conversions.ErrDisconnected)
}

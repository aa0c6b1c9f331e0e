package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/tree"
)

func buildPath(n int) *tree.Tree {
	t := tree.NewTree(n)
	for i := 0; i < n-1; i++ {
		_ = t.AddEdge(i, i+1)
	}
	return t
}

func TestTree_RejectsCycle(t *testing.T) {
	tr := buildPath(4)
	require.True(t, tr.IsTree())
	err := tr.AddEdge(0, 3)
	assert.ErrorIs(t, err, tree.ErrTooManyEdges)
}

func TestTree_RejectsCycleBeforeEdgeCap(t *testing.T) {
	// Partial path 0-1-2 with two edge slots left; closing a cycle among
	// already-connected vertices must be rejected even though the edge
	// count has not yet hit n-1.
	tr := tree.NewTree(5)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	err := tr.AddEdge(0, 2) // 0 and 2 already connected via 1
	assert.ErrorIs(t, err, tree.ErrWouldCreateCycle)
}

func TestTree_CanAddEdges(t *testing.T) {
	tr := tree.NewTree(4)
	assert.True(t, tr.CanAddEdges([][2]int{{0, 1}, {1, 2}, {2, 3}}))
	assert.False(t, tr.CanAddEdges([][2]int{{0, 1}, {1, 2}, {2, 0}}))
	// CanAddEdges must not mutate.
	assert.Equal(t, 0, tr.NumEdges())
}

func TestRootedTree_ParentsAndSubtreeSizes(t *testing.T) {
	// Root 4, edges: (4,1),(1,0),(1,2),(4,3),(4,9),(9,8),(8,7),(8,6),(8,5)
	rt := tree.NewRootedTree(10)
	edges := [][2]int{{4, 1}, {1, 0}, {1, 2}, {4, 3}, {4, 9}, {9, 8}, {8, 7}, {8, 6}, {8, 5}}
	require.NoError(t, rt.AddEdges(edges))
	require.NoError(t, rt.SetRoot(4))

	p, err := rt.Parent(1)
	require.NoError(t, err)
	assert.Equal(t, 4, p)

	p, err = rt.Parent(0)
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	root, ok := rt.Root()
	assert.True(t, ok)
	assert.Equal(t, 4, root)

	size, err := rt.SubtreeSize(4)
	require.NoError(t, err)
	assert.Equal(t, 10, size)

	size, err = rt.SubtreeSize(8)
	require.NoError(t, err)
	assert.Equal(t, 4, size) // 8,7,6,5

	assert.True(t, rt.IsArborescence())
}

func TestRootedTree_NoRootSetErrors(t *testing.T) {
	rt := tree.NewRootedTree(3)
	require.NoError(t, rt.AddEdge(0, 1))
	_, err := rt.Parent(0)
	assert.ErrorIs(t, err, tree.ErrNoRootSet)
	_, err = rt.SubtreeSize(0)
	assert.ErrorIs(t, err, tree.ErrNoRootSet)
}

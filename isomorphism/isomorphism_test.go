package isomorphism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/isomorphism"
	"github.com/lal-project/linarr/tree"
)

func buildPath(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, tr.AddEdge(i, i+1))
	}
	return tr
}

func buildStar(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(n)
	for i := 1; i < n; i++ {
		require.NoError(t, tr.AddEdge(0, i))
	}
	return tr
}

func TestFastNonIso_DifferentSize(t *testing.T) {
	a := buildPath(t, 4)
	b := buildPath(t, 5)
	assert.Equal(t, isomorphism.AreNotIsomorphicResult, isomorphism.FastNonIso(a, b))
}

func TestFastNonIso_DifferentShape(t *testing.T) {
	a := buildPath(t, 6)
	b := buildStar(t, 6)
	assert.Equal(t, isomorphism.AreNotIsomorphicResult, isomorphism.FastNonIso(a, b))
}

func TestFastNonIso_SameShapeInconclusive(t *testing.T) {
	a := buildPath(t, 6)
	b := buildPath(t, 6)
	assert.Equal(t, isomorphism.MightBeIsomorphic, isomorphism.FastNonIso(a, b))
}

func TestCanonicalName_LeavesMatch(t *testing.T) {
	rt := tree.NewRootedTree(3)
	require.NoError(t, rt.AddEdge(0, 1))
	require.NoError(t, rt.AddEdge(0, 2))
	require.NoError(t, rt.SetRoot(0))
	name, err := isomorphism.CanonicalName(rt)
	require.NoError(t, err)
	assert.Equal(t, "110100", name)
}

func TestAreIsomorphicRooted_RelabeledStarsMatch(t *testing.T) {
	rt1 := tree.NewRootedTree(4)
	require.NoError(t, rt1.AddEdge(0, 1))
	require.NoError(t, rt1.AddEdge(0, 2))
	require.NoError(t, rt1.AddEdge(0, 3))
	require.NoError(t, rt1.SetRoot(0))

	rt2 := tree.NewRootedTree(4)
	require.NoError(t, rt2.AddEdge(2, 0))
	require.NoError(t, rt2.AddEdge(2, 1))
	require.NoError(t, rt2.AddEdge(2, 3))
	require.NoError(t, rt2.SetRoot(2))

	ok, err := isomorphism.AreIsomorphicRooted(rt1, rt2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAreIsomorphicRooted_DifferentShapesDiffer(t *testing.T) {
	rt1 := tree.NewRootedTree(4)
	require.NoError(t, rt1.AddEdge(0, 1))
	require.NoError(t, rt1.AddEdge(0, 2))
	require.NoError(t, rt1.AddEdge(0, 3))
	require.NoError(t, rt1.SetRoot(0))

	rt2 := tree.NewRootedTree(4)
	require.NoError(t, rt2.AddEdge(0, 1))
	require.NoError(t, rt2.AddEdge(1, 2))
	require.NoError(t, rt2.AddEdge(2, 3))
	require.NoError(t, rt2.SetRoot(0))

	ok, err := isomorphism.AreIsomorphicRooted(rt1, rt2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAreIsomorphic_FreeTreesRelabeled(t *testing.T) {
	a := buildStar(t, 5)

	b := tree.NewTree(5)
	require.NoError(t, b.AddEdge(4, 0))
	require.NoError(t, b.AddEdge(4, 1))
	require.NoError(t, b.AddEdge(4, 2))
	require.NoError(t, b.AddEdge(4, 3))

	ok, err := isomorphism.AreIsomorphic(a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAreIsomorphic_DifferentShapesFail(t *testing.T) {
	a := buildPath(t, 6)
	b := buildStar(t, 6)
	ok, err := isomorphism.AreIsomorphic(a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

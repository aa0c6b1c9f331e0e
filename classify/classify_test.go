package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/arrangement"
	"github.com/lal-project/linarr/classify"
	"github.com/lal-project/linarr/tree"
)

func buildPathTree(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, tr.AddEdge(i, i+1))
	}
	return tr
}

func buildStarTree(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(n)
	for i := 1; i < n; i++ {
		require.NoError(t, tr.AddEdge(0, i))
	}
	return tr
}

func TestTreeType_Empty(t *testing.T) {
	assert.Equal(t, classify.TypeEmpty, classify.TreeType(tree.NewTree(0)))
}

func TestTreeType_Singleton(t *testing.T) {
	assert.Equal(t, classify.TypeSingleton, classify.TreeType(tree.NewTree(1)))
}

func TestTreeType_Star(t *testing.T) {
	tr := buildStarTree(t, 6)
	assert.Equal(t, classify.TypeStar, classify.TreeType(tr))
}

func TestTreeType_Linear(t *testing.T) {
	tr := buildPathTree(t, 6)
	assert.Equal(t, classify.TypeLinear, classify.TreeType(tr))
}

func TestTreeType_Bistar(t *testing.T) {
	// Two adjacent centres (0,1), each with two extra leaves.
	tr := tree.NewTree(6)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(1, 4))
	require.NoError(t, tr.AddEdge(1, 5))
	assert.Equal(t, classify.TypeBistar, classify.TreeType(tr))
}

func TestTreeType_Quasistar(t *testing.T) {
	// Star on {0,1,2,3} centred at 0, with vertex 4 subdividing edge (0,1).
	tr := tree.NewTree(5)
	require.NoError(t, tr.AddEdge(0, 4))
	require.NoError(t, tr.AddEdge(4, 1))
	require.NoError(t, tr.AddEdge(0, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	assert.Equal(t, classify.TypeQuasistar, classify.TreeType(tr))
}

func TestTreeType_Caterpillar(t *testing.T) {
	// Spine 0-1-2-3-4 (three internal spine vertices, not a bistar) with
	// leaves hanging off 1 and 3.
	tr := tree.NewTree(7)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(3, 4))
	require.NoError(t, tr.AddEdge(1, 5))
	require.NoError(t, tr.AddEdge(3, 6))
	assert.Equal(t, classify.TypeCaterpillar, classify.TreeType(tr))
}

func TestTreeType_Spider(t *testing.T) {
	// One centre (0) with three legs of length 2.
	tr := tree.NewTree(7)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(0, 3))
	require.NoError(t, tr.AddEdge(3, 4))
	require.NoError(t, tr.AddEdge(0, 5))
	require.NoError(t, tr.AddEdge(5, 6))
	assert.Equal(t, classify.TypeSpider, classify.TreeType(tr))
}

func TestSyntacticDependencyTreeType_PlanarIdentityPath(t *testing.T) {
	rt := tree.NewRootedTree(4)
	require.NoError(t, rt.AddEdge(0, 1))
	require.NoError(t, rt.AddEdge(1, 2))
	require.NoError(t, rt.AddEdge(2, 3))
	require.NoError(t, rt.SetRoot(0))
	arr := arrangement.Identity(4)

	got := classify.SyntacticDependencyTreeType(rt, arr)
	assert.NotZero(t, got&classify.ClassPlanar)
	assert.NotZero(t, got&classify.ClassProjective)
}

func TestSyntacticDependencyTreeType_NonPlanarWhenCrossing(t *testing.T) {
	rt := tree.NewRootedTree(4)
	require.NoError(t, rt.AddEdge(0, 2))
	require.NoError(t, rt.AddEdge(1, 3))
	require.NoError(t, rt.AddEdge(0, 1))
	require.NoError(t, rt.SetRoot(0))
	arr := arrangement.Identity(4)

	got := classify.SyntacticDependencyTreeType(rt, arr)
	assert.Zero(t, got&classify.ClassPlanar)
}

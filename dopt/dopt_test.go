package dopt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/dopt"
	"github.com/lal-project/linarr/dopt/bnb"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/tree"
)

// buildPathTree returns a path 0-1-...-n-1 as a tree.Tree.
func buildPathTree(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(n)
	for i := 0; i < n-1; i++ {
		require.NoError(t, tr.AddEdge(i, i+1))
	}
	return tr
}

// buildStarTree returns a star with centre 0 on n vertices.
func buildStarTree(t *testing.T, n int) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(n)
	for i := 1; i < n; i++ {
		require.NoError(t, tr.AddEdge(0, i))
	}
	return tr
}

// buildCaterpillarTree returns a spine 0-1-2-3-4 with one extra leaf off
// vertices 1 and 3 each (vertices 5 and 6).
func buildCaterpillarTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.NewTree(7)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {1, 5}, {3, 6}}
	for _, e := range edges {
		require.NoError(t, tr.AddEdge(e[0], e[1]))
	}
	return tr
}

func rootedFrom(t *testing.T, tr *tree.Tree, root int) *tree.RootedTree {
	t.Helper()
	rt := tree.NewRootedTree(tr.NumVertices())
	for _, e := range tr.Underlying().EdgeList() {
		require.NoError(t, rt.AddEdge(e.U, e.V))
	}
	require.NoError(t, rt.SetRoot(root))
	return rt
}

func bruteForceBest(edges []graph.Edge, n int, objective bnb.Objective) uint64 {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var best uint64
	have := false
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			pos := make([]int, n)
			for p, v := range perm {
				pos[v] = p
			}
			var cost uint64
			for _, e := range edges {
				d := pos[e.U] - pos[e.V]
				if d < 0 {
					d = -d
				}
				cost += uint64(d)
			}
			if !have {
				best, have = cost, true
				return
			}
			if objective == bnb.Maximize {
				if cost > best {
					best = cost
				}
			} else if cost < best {
				best = cost
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)
	return best
}

func TestProjectiveMin_Path(t *testing.T) {
	tr := buildPathTree(t, 5)
	rt := rootedFrom(t, tr, 0)
	res, err := dopt.ProjectiveMin(rt)
	require.NoError(t, err)
	want := bruteForceBest(tr.Underlying().EdgeList(), 5, bnb.Minimize)
	assert.Equal(t, want, res.Cost)
}

func TestProjectiveMax_Star(t *testing.T) {
	tr := buildStarTree(t, 6)
	rt := rootedFrom(t, tr, 0)
	res, err := dopt.ProjectiveMax(rt)
	require.NoError(t, err)
	want := bruteForceBest(tr.Underlying().EdgeList(), 6, bnb.Maximize)
	assert.Equal(t, want, res.Cost)
	assert.False(t, res.Arrangement.IsIdentitySentinel())
}

func TestProjectiveMin_NoRoot(t *testing.T) {
	rt := tree.NewRootedTree(3)
	require.NoError(t, rt.AddEdge(0, 1))
	require.NoError(t, rt.AddEdge(1, 2))
	_, err := dopt.ProjectiveMin(rt)
	assert.ErrorIs(t, err, tree.ErrNoRootSet)
}

func TestPlanarMin_MatchesBruteForce(t *testing.T) {
	tr := buildCaterpillarTree(t)
	res, err := dopt.PlanarMin(tr)
	require.NoError(t, err)
	want := bruteForceBest(tr.Underlying().EdgeList(), 7, bnb.Minimize)
	assert.Equal(t, want, res.Cost)
}

func TestPlanarMax_ExhaustiveRootingNeverWorse(t *testing.T) {
	tr := buildCaterpillarTree(t)
	centroidResult, err := dopt.PlanarMax(tr)
	require.NoError(t, err)
	exhaustiveResult, err := dopt.PlanarMax(tr, dopt.WithExhaustiveRooting())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, exhaustiveResult.Cost, centroidResult.Cost)
}

func TestBipartiteMin_Path(t *testing.T) {
	tr := buildPathTree(t, 6)
	res, err := dopt.BipartiteMin(tr)
	require.NoError(t, err)
	assert.Greater(t, res.Cost, uint64(0))
}

func TestBipartiteMax_GreaterOrEqualToMin(t *testing.T) {
	tr := buildCaterpillarTree(t)
	min, err := dopt.BipartiteMin(tr)
	require.NoError(t, err)
	max, err := dopt.BipartiteMax(tr)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, max.Cost, min.Cost)
}

func TestUnconstrainedMin_MatchesBruteForce(t *testing.T) {
	tr := buildCaterpillarTree(t)
	res, err := dopt.UnconstrainedMin(tr)
	require.NoError(t, err)
	want := bruteForceBest(tr.Underlying().EdgeList(), 7, bnb.Minimize)
	assert.Equal(t, want, res.Cost)
}

func TestUnconstrainedMax_MatchesBruteForce(t *testing.T) {
	tr := buildPathTree(t, 6)
	res, err := dopt.UnconstrainedMax(tr)
	require.NoError(t, err)
	want := bruteForceBest(tr.Underlying().EdgeList(), 6, bnb.Maximize)
	assert.Equal(t, want, res.Cost)
}

// TestInvariantChain checks spec.md §7's ordering: projective minimum >=
// planar minimum >= unconstrained minimum, for the same tree.
func TestInvariantChain(t *testing.T) {
	tr := buildCaterpillarTree(t)
	rt := rootedFrom(t, tr, 0)

	projMin, err := dopt.ProjectiveMin(rt)
	require.NoError(t, err)
	planMin, err := dopt.PlanarMin(tr)
	require.NoError(t, err)
	uncMin, err := dopt.UnconstrainedMin(tr)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, projMin.Cost, planMin.Cost)
	assert.GreaterOrEqual(t, planMin.Cost, uncMin.Cost)
}

func TestWithMakeArrangement_False(t *testing.T) {
	tr := buildStarTree(t, 5)
	res, err := dopt.UnconstrainedMin(tr, dopt.WithMakeArrangement(false))
	require.NoError(t, err)
	assert.Nil(t, res.Arrangement.DirectCopy())
}

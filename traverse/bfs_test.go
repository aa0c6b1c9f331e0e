package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-project/linarr/traverse"
)

// path 0-1-2-3-4 as an adjacency function.
func pathNeighbors(n int) traverse.NeighborFunc {
	return func(u int) []int {
		var out []int
		if u > 0 {
			out = append(out, u-1)
		}
		if u < n-1 {
			out = append(out, u+1)
		}
		return out
	}
}

func TestBFS_Path(t *testing.T) {
	res, err := traverse.BFS(5, pathNeighbors(5), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Depth)

	p, ok := res.PathTo(4)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p)
}

func TestBFS_StartOutOfRange(t *testing.T) {
	_, err := traverse.BFS(3, pathNeighbors(3), 9)
	assert.ErrorIs(t, err, traverse.ErrStartOutOfRange)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := traverse.BFS(5, pathNeighbors(5), 2, traverse.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 1, 3}, res.Order)
	assert.False(t, res.Visited(0))
	assert.False(t, res.Visited(4))
}

func TestBFS_OnVisitEarlyStop(t *testing.T) {
	var seen []int
	_, err := traverse.BFS(5, pathNeighbors(5), 0, traverse.WithOnVisit(func(u, _ int) bool {
		seen = append(seen, u)
		return u != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestIsTree(t *testing.T) {
	assert.True(t, traverse.IsTree(5, pathNeighbors(5)))
	assert.True(t, traverse.IsTree(1, func(int) []int { return nil }))

	disconnected := func(u int) []int {
		if u == 0 {
			return []int{1}
		}
		if u == 1 {
			return []int{0}
		}
		return nil
	}
	assert.False(t, traverse.IsTree(3, disconnected))
}

func TestDetectCycle(t *testing.T) {
	assert.False(t, traverse.DetectCycleUndirected(5, pathNeighbors(5)))

	triangle := func(u int) []int {
		switch u {
		case 0:
			return []int{1, 2}
		case 1:
			return []int{0, 2}
		default:
			return []int{0, 1}
		}
	}
	assert.True(t, traverse.DetectCycleUndirected(3, triangle))

	dag := func(u int) []int {
		if u == 0 {
			return []int{1, 2}
		}
		return nil
	}
	assert.False(t, traverse.DetectCycleDirected(3, dag))

	directedCycle := func(u int) []int { return []int{(u + 1) % 3} }
	assert.True(t, traverse.DetectCycleDirected(3, directedCycle))
}

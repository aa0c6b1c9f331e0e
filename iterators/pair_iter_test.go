package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/iterators"
)

func buildPathGraph(n int) *graph.Graph {
	g := graph.NewGraph(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1)
	}
	return g
}

func TestEdgeIter(t *testing.T) {
	g := buildPathGraph(4) // edges: 0-1,1-2,2-3
	it := iterators.NewEdgeIter(g.EdgeList())
	assert.Equal(t, 3, it.Len())
	var got []graph.Edge
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, e)
	}
	assert.Len(t, got, 3)

	it.Reset()
	e, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, graph.Edge{U: 0, V: 1}, e)
}

func TestPairIter_OnlyIndependentPairs(t *testing.T) {
	g := buildPathGraph(4) // edges: {0,1},{1,2},{2,3}
	it := iterators.NewPairIter(g.EdgeList())
	count := 0
	for {
		e1, e2, ok := it.Next()
		if !ok {
			break
		}
		count++
		shared := e1.U == e2.U || e1.U == e2.V || e1.V == e2.U || e1.V == e2.V
		assert.False(t, shared)
	}
	// Only independent pair among {0,1},{1,2},{2,3} is ({0,1},{2,3}).
	assert.Equal(t, 1, count)
}

func TestSizeQ_MatchesBruteForceCount(t *testing.T) {
	g := buildPathGraph(5) // m=4, degrees: 1,2,2,2,1
	degrees := make([]int, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		degrees[v] = g.Degree(v)
	}
	want := iterators.SizeQ(g.NumEdges(), degrees)

	it := iterators.NewPairIter(g.EdgeList())
	var got int64
	for {
		_, _, ok := it.Next()
		if !ok {
			break
		}
		got++
	}
	assert.Equal(t, want, got)
}

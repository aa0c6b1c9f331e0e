package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/lal-project/linarr/classify"
	"github.com/lal-project/linarr/linarrio/gonumadapt"
	"github.com/lal-project/linarr/tree"
)

// TestTreeType_AgreesWithGonumConnectivity cross-checks, via the
// gonum-adapted view of the same tree, that a tree classify.TreeType
// reports as a caterpillar is a single connected component — a tree by
// construction, but worth pinning down against an independent
// connectivity routine rather than trusting the classifier's own
// traversal.
func TestTreeType_AgreesWithGonumConnectivity(t *testing.T) {
	tr := tree.NewTree(7)
	require.NoError(t, tr.AddEdge(0, 1))
	require.NoError(t, tr.AddEdge(1, 2))
	require.NoError(t, tr.AddEdge(2, 3))
	require.NoError(t, tr.AddEdge(3, 4))
	require.NoError(t, tr.AddEdge(1, 5))
	require.NoError(t, tr.AddEdge(3, 6))

	assert.Equal(t, classify.TypeCaterpillar, classify.TreeType(tr))

	g := gonumadapt.FromTree(tr)
	components := topo.ConnectedComponents(g)
	require.Len(t, components, 1)
	assert.Len(t, components[0], tr.NumVertices())
}

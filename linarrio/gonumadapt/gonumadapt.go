// Package gonumadapt exposes a linarr graph.Graph/tree.Tree as a
// gonum/graph/simple.UndirectedGraph, so callers can run
// gonum/graph/topo routines or plot a linarr tree with the gonum
// plotting stack without this module depending on either.
package gonumadapt

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/tree"
)

// FromGraph builds a gonum simple.UndirectedGraph over the same vertex
// and edge set as g, vertex v mapped to gonum node ID int64(v).
func FromGraph(g *graph.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < g.NumVertices(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for _, e := range g.EdgeList() {
		ug.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}
	return ug
}

// FromTree builds a gonum simple.UndirectedGraph over t's underlying
// graph.
func FromTree(t *tree.Tree) *simple.UndirectedGraph {
	return FromGraph(t.Underlying())
}

package conversions

import "github.com/lal-project/linarr/tree"

// ToEdgeList encodes t as an (unordered) edge list, U<V, per spec.md §6.2.
func ToEdgeList(t *tree.Tree) [][2]int {
	edges := t.Underlying().EdgeList()
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.U, e.V}
	}
	return out
}

// FromEdgeList decodes an edge list on n vertices into a Tree, requiring
// the result to be connected and acyclic with exactly n-1 edges.
func FromEdgeList(n int, edges [][2]int) (*tree.Tree, error) {
	t := tree.NewTree(n)
	for _, e := range edges {
		if err := t.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if !t.IsTree() {
		return nil, ErrDisconnected
	}
	return t, nil
}

package conversions

import (
	"fmt"

	"github.com/lal-project/linarr/tree"
)

// HeadVector is the encoding of spec.md §6.1: entry i (0-indexed
// position) gives the 1-indexed parent of vertex i, 0 marking the root.
type HeadVector []int

// FromRootedTree encodes rt as a HeadVector.
func FromRootedTree(rt *tree.RootedTree) (HeadVector, error) {
	root, ok := rt.Root()
	if !ok {
		return nil, fmt.Errorf("conversions: %w", tree.ErrNoRootSet)
	}
	n := rt.NumVertices()
	hv := make(HeadVector, n)
	for v := 0; v < n; v++ {
		if v == root {
			hv[v] = 0
			continue
		}
		p, err := rt.Parent(v)
		if err != nil {
			return nil, fmt.Errorf("conversions: head vector encode: %w", err)
		}
		hv[v] = p + 1
	}
	return hv, nil
}

// ToRootedTree decodes hv into a RootedTree, validating exactly-one-root,
// no self-loops, no out-of-range parents, and full connectivity (the
// parser-level checks of spec.md §6.1, minus location information — see
// conversions/io for the text-parsing variant).
func (hv HeadVector) ToRootedTree() (*tree.RootedTree, error) {
	n := len(hv)
	roots := 0
	rootIdx := -1
	for i, h := range hv {
		if h < 0 || h > n {
			return nil, ErrOutOfRange
		}
		if h == 0 {
			roots++
			rootIdx = i
		} else if h == i+1 {
			return nil, ErrSelfLoop
		}
	}
	if roots != 1 {
		return nil, ErrWrongRootCount
	}

	rt := tree.NewRootedTree(n)
	for i, h := range hv {
		if h == 0 {
			continue
		}
		if err := rt.AddEdge(i, h-1); err != nil {
			return nil, fmt.Errorf("conversions: head vector decode: %w", err)
		}
	}
	if err := rt.SetRoot(rootIdx); err != nil {
		return nil, fmt.Errorf("conversions: head vector decode: %w", err)
	}
	if !rt.IsArborescence() {
		return nil, ErrDisconnected
	}
	return rt, nil
}

package conversions

import "github.com/lal-project/linarr/tree"

// ToLevelSequence encodes rt as its level sequence: the depth (distance
// from the root) of each vertex, listed in DFS preorder starting at the
// root, visiting each vertex's children in rt.Children order. The decoded
// tree's vertex labels are exactly the preorder visit indices, so this
// encoding does not round-trip an arbitrary input labeling; since the
// children are not sorted, isomorphic trees with different child orders
// can yield different sequences.
func ToLevelSequence(rt *tree.RootedTree) ([]int, error) {
	root, ok := rt.Root()
	if !ok {
		return nil, tree.ErrNoRootSet
	}
	n := rt.NumVertices()
	levels := make([]int, n)

	type frame struct{ v, lvl int }
	stack := []frame{{root, 0}}
	visited := make([]bool, n)
	order := make([]int, 0, n)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.v] {
			continue
		}
		visited[f.v] = true
		levels[f.v] = f.lvl
		order = append(order, f.v)
		children, err := rt.Children(f.v)
		if err != nil {
			return nil, err
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.lvl + 1})
		}
	}

	result := make([]int, n)
	for i, v := range order {
		result[i] = levels[v]
	}
	return result, nil
}

// FromLevelSequence decodes a level sequence (first entry must be 0, the
// root) into a freshly labeled RootedTree whose vertex i is the i-th
// vertex visited in the encoded preorder.
func FromLevelSequence(levels []int) (*tree.RootedTree, error) {
	n := len(levels)
	if n == 0 {
		return nil, ErrWrongLength
	}
	if levels[0] != 0 {
		return nil, ErrWrongRootCount
	}

	rt := tree.NewRootedTree(n)
	lastAtLevel := map[int]int{0: 0}
	for i := 1; i < n; i++ {
		lvl := levels[i]
		if lvl <= 0 {
			return nil, ErrOutOfRange
		}
		parent, ok := lastAtLevel[lvl-1]
		if !ok {
			return nil, ErrDisconnected
		}
		if err := rt.AddEdge(i, parent); err != nil {
			return nil, err
		}
		lastAtLevel[lvl] = i
	}
	if err := rt.SetRoot(0); err != nil {
		return nil, err
	}
	return rt, nil
}

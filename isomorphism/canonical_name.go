package isomorphism

import (
	"sort"
	"strings"

	"github.com/lal-project/linarr/properties"
	"github.com/lal-project/linarr/tree"
)

// CanonicalName computes the AHU canonical name of rt, rooted as it
// stands: a leaf is named "10"; an internal vertex's name is "1"
// followed by its children's names sorted lexicographically and
// concatenated, followed by "0". Two rooted trees are isomorphic (as
// rooted trees) iff their roots' canonical names are equal.
func CanonicalName(rt *tree.RootedTree) (string, error) {
	root, ok := rt.Root()
	if !ok {
		return "", tree.ErrNoRootSet
	}

	n := rt.NumVertices()
	visited := make([]bool, n)
	order := make([]int, 0, n)
	stack := []int{root}
	visited[root] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		children, err := rt.Children(u)
		if err != nil {
			return "", err
		}
		for _, c := range children {
			if !visited[c] {
				visited[c] = true
				stack = append(stack, c)
			}
		}
	}

	names := make([]string, n)
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		children, err := rt.Children(u)
		if err != nil {
			return "", err
		}
		if len(children) == 0 {
			names[u] = "10"
			continue
		}
		childNames := make([]string, len(children))
		for j, c := range children {
			childNames[j] = names[c]
		}
		sort.Strings(childNames)
		var b strings.Builder
		b.WriteByte('1')
		for _, name := range childNames {
			b.WriteString(name)
		}
		b.WriteByte('0')
		names[u] = b.String()
	}
	return names[root], nil
}

// AreIsomorphicRooted reports whether t1 and t2, as rooted trees, are
// isomorphic: their canonical names match. Callers should run FastNonIso
// first to short-circuit the common non-isomorphic case.
func AreIsomorphicRooted(t1, t2 *tree.RootedTree) (bool, error) {
	name1, err := CanonicalName(t1)
	if err != nil {
		return false, err
	}
	name2, err := CanonicalName(t2)
	if err != nil {
		return false, err
	}
	return name1 == name2, nil
}

// AreIsomorphic reports whether free trees t1 and t2 are isomorphic, by
// rooting each at its centre (or centres, if there are two) and
// comparing canonical names across every combination.
func AreIsomorphic(t1, t2 *tree.Tree) (bool, error) {
	if FastNonIso(t1, t2) == AreNotIsomorphicResult {
		return false, nil
	}
	if t1.NumVertices() == 0 {
		return true, nil
	}

	names1, err := centredNames(t1)
	if err != nil {
		return false, err
	}
	names2, err := centredNames(t2)
	if err != nil {
		return false, err
	}

	for _, n1 := range names1 {
		for _, n2 := range names2 {
			if n1 == n2 {
				return true, nil
			}
		}
	}
	return false, nil
}

// centredNames returns the canonical name of t rooted at each of its
// (one or two) centre vertices.
func centredNames(t *tree.Tree) ([]string, error) {
	centres := properties.TreeCentre(t)
	names := make([]string, 0, len(centres))
	for _, c := range centres {
		rt := tree.NewRootedTree(t.NumVertices())
		for _, e := range t.Underlying().EdgeList() {
			if err := rt.AddEdge(e.U, e.V); err != nil {
				return nil, err
			}
		}
		if err := rt.SetRoot(c); err != nil {
			return nil, err
		}
		name, err := CanonicalName(rt)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

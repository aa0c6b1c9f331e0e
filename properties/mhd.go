package properties

import (
	"github.com/lal-project/linarr/rational"
	"github.com/lal-project/linarr/tree"
)

// MeanHierarchicalDistance returns the average depth (distance to the
// root) of every non-root vertex of rt.
func MeanHierarchicalDistance(rt *tree.RootedTree) (rational.Rational, error) {
	root, ok := rt.Root()
	if !ok {
		return rational.Rational{}, tree.ErrNoRootSet
	}

	n := rt.NumVertices()
	if n <= 1 {
		return rational.Rational{}, ErrDomainNotDefined
	}

	depth := make([]int, n)
	depth[root] = 0
	visited := make([]bool, n)
	visited[root] = true
	stack := []int{root}
	var total int64
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children, err := rt.Children(u)
		if err != nil {
			return rational.Rational{}, err
		}
		for _, c := range children {
			if visited[c] {
				continue
			}
			visited[c] = true
			depth[c] = depth[u] + 1
			total += int64(depth[c])
			stack = append(stack, c)
		}
	}

	return rational.NewRationalFromInt(total).Quo(rational.NewRationalFromInt(int64(n - 1))), nil
}

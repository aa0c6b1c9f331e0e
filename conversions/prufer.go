package conversions

import (
	"fmt"

	"github.com/lal-project/linarr/tree"
)

// ToPrufer encodes t as a length-(n-2) Prüfer sequence per spec.md §6.3,
// grounded on \cite Alonso1995a's decoding algorithm run in reverse: at
// each step the lowest-labeled remaining leaf is removed and its
// neighbor appended to the sequence.
func ToPrufer(t *tree.Tree) ([]int, error) {
	n := t.NumVertices()
	if n < 2 {
		return nil, ErrTooSmall
	}
	if !t.IsTree() {
		return nil, ErrNotATree
	}
	if n == 2 {
		return []int{}, nil
	}

	adj := make([][]int, n)
	degree := make([]int, n)
	for u := 0; u < n; u++ {
		adj[u] = append([]int(nil), t.Neighbors(u)...)
		degree[u] = len(adj[u])
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	seq := make([]int, 0, n-2)
	for i := 0; i < n-2; i++ {
		nb := remainingNeighbor(adj[leaf], degree)
		seq = append(seq, nb)
		degree[leaf] = 0
		degree[nb]--
		if degree[nb] == 1 && nb < ptr {
			leaf = nb
		} else {
			ptr++
			for ptr < n && degree[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}
	return seq, nil
}

// remainingNeighbor returns the first neighbor of adjList still present
// in the (virtually shrinking) tree, i.e. with nonzero degree.
func remainingNeighbor(adjList []int, degree []int) int {
	for _, v := range adjList {
		if degree[v] > 0 {
			return v
		}
	}
	return -1
}

// FromPrufer decodes a Prüfer sequence into a Tree on len(seq)+2
// vertices, per spec.md §6.3.
func FromPrufer(seq []int) (*tree.Tree, error) {
	n := len(seq) + 2
	degree := make([]int, n)
	for i := range degree {
		degree[i] = 1
	}
	for _, v := range seq {
		if v < 0 || v >= n {
			return nil, ErrOutOfRange
		}
		degree[v]++
	}

	t := tree.NewTree(n)
	if n == 2 {
		if err := t.AddEdge(0, 1); err != nil {
			return nil, fmt.Errorf("conversions: prufer decode: %w", err)
		}
		return t, nil
	}

	ptr := 0
	for degree[ptr] != 1 {
		ptr++
	}
	leaf := ptr

	for _, v := range seq {
		if err := t.AddEdge(leaf, v); err != nil {
			return nil, fmt.Errorf("conversions: prufer decode: %w", err)
		}
		degree[leaf] = 0
		degree[v]--
		if degree[v] == 1 && v < ptr {
			leaf = v
		} else {
			ptr++
			for ptr < n && degree[ptr] != 1 {
				ptr++
			}
			leaf = ptr
		}
	}

	u, v := -1, -1
	for i := 0; i < n; i++ {
		if degree[i] == 1 {
			if u == -1 {
				u = i
			} else {
				v = i
				break
			}
		}
	}
	if u == -1 || v == -1 {
		return nil, ErrDisconnected
	}
	if err := t.AddEdge(u, v); err != nil {
		return nil, fmt.Errorf("conversions: prufer decode: %w", err)
	}
	return t, nil
}

package generate

import (
	"errors"
	"fmt"

	"github.com/lal-project/linarr/tree"
)

// ErrTooFewVertices is returned by every constructor in this file when
// asked for fewer vertices than the shape requires.
var ErrTooFewVertices = errors.New("generate: too few vertices")

// Star returns a star on n vertices: hub 0 connected to leaves 1..n-1.
func Star(n int) (*tree.Tree, error) {
	if n < 1 {
		return nil, fmt.Errorf("generate: Star(%d): %w", n, ErrTooFewVertices)
	}
	t := tree.NewTree(n)
	for i := 1; i < n; i++ {
		if err := t.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("generate: Star: %w", err)
		}
	}
	return t, nil
}

// Path returns a path 0-1-...-n-1 on n vertices.
func Path(n int) (*tree.Tree, error) {
	if n < 1 {
		return nil, fmt.Errorf("generate: Path(%d): %w", n, ErrTooFewVertices)
	}
	t := tree.NewTree(n)
	for i := 1; i < n; i++ {
		if err := t.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("generate: Path: %w", err)
		}
	}
	return t, nil
}

// Caterpillar returns a spine of spineLen vertices (0..spineLen-1) with
// legsPerSpineVertex extra leaves hung off every spine vertex, in
// increasing vertex-ID order (spine first, then each spine vertex's
// leaves in a contiguous block).
func Caterpillar(spineLen, legsPerSpineVertex int) (*tree.Tree, error) {
	if spineLen < 1 {
		return nil, fmt.Errorf("generate: Caterpillar(%d,%d): %w", spineLen, legsPerSpineVertex, ErrTooFewVertices)
	}
	n := spineLen + spineLen*legsPerSpineVertex
	t := tree.NewTree(n)
	for i := 1; i < spineLen; i++ {
		if err := t.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("generate: Caterpillar: %w", err)
		}
	}
	next := spineLen
	for spine := 0; spine < spineLen; spine++ {
		for leg := 0; leg < legsPerSpineVertex; leg++ {
			if err := t.AddEdge(spine, next); err != nil {
				return nil, fmt.Errorf("generate: Caterpillar: %w", err)
			}
			next++
		}
	}
	return t, nil
}

// Spider returns a spider (a.k.a. broom) with legCount legs of length
// legLen radiating from a centre vertex 0. Legs are laid out as
// contiguous blocks of vertex IDs, one block per leg, nearest-to-centre
// vertex first.
func Spider(legCount, legLen int) (*tree.Tree, error) {
	if legCount < 1 || legLen < 1 {
		return nil, fmt.Errorf("generate: Spider(%d,%d): %w", legCount, legLen, ErrTooFewVertices)
	}
	n := 1 + legCount*legLen
	t := tree.NewTree(n)
	next := 1
	for leg := 0; leg < legCount; leg++ {
		prev := 0
		for i := 0; i < legLen; i++ {
			if err := t.AddEdge(prev, next); err != nil {
				return nil, fmt.Errorf("generate: Spider: %w", err)
			}
			prev = next
			next++
		}
	}
	return t, nil
}

// BalancedBinary returns a complete binary tree with depth levels below
// the root (n = 2^(depth+1)-1 vertices), rooted and numbered breadth-
// first: vertex i's children are 2i+1 and 2i+2.
func BalancedBinary(depth int) (*tree.RootedTree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("generate: BalancedBinary(%d): %w", depth, ErrTooFewVertices)
	}
	n := 1<<(depth+1) - 1
	rt := tree.NewRootedTree(n)
	for i := 1; i < n; i++ {
		parent := (i - 1) / 2
		if err := rt.AddEdge(parent, i); err != nil {
			return nil, fmt.Errorf("generate: BalancedBinary: %w", err)
		}
	}
	if err := rt.SetRoot(0); err != nil {
		return nil, fmt.Errorf("generate: BalancedBinary: %w", err)
	}
	return rt, nil
}

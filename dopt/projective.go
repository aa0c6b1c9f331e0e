package dopt

import (
	"sort"

	"github.com/lal-project/linarr/bibliography"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/tree"
)

// ProjectiveMin returns the minimum Σ|π(u)-π(v)| over every projective
// arrangement of rt (one respecting rt's rooted order, per spec.md
// §4.I.1), via the Alemany2022a AEF algorithm: at every vertex, its
// children are visited in non-increasing subtree-size order and
// interleaved one-by-one to alternating sides of the vertex, keeping
// small subtrees close to their parent on both sides.
func ProjectiveMin(rt *tree.RootedTree, opts ...Option) (Result, error) {
	bibliography.Register(bibliography.Alemany2022a)
	return projectiveOpt(rt, opts, interleaveChildren)
}

// ProjectiveMax returns the maximum Σ|π(u)-π(v)| over every projective
// arrangement of rt, via the Alemany2024a algorithm: children are
// visited in non-increasing subtree-size order and placed whole, one
// subtree at a time, onto whichever side currently holds fewer
// descendants, so that the heaviest subtrees end up spanning the
// farthest from their parent instead of being interleaved with light
// ones.
func ProjectiveMax(rt *tree.RootedTree, opts ...Option) (Result, error) {
	bibliography.Register(bibliography.Alemany2024a)
	return projectiveOpt(rt, opts, blockChildren)
}

// childSplitter partitions u's size-sorted children into the ones that
// go to the left of u and the ones that go to the right.
type childSplitter func(sorted []int, sizes map[int]int) (left, right []int)

func interleaveChildren(sorted []int, sizes map[int]int) (left, right []int) {
	for i, c := range sorted {
		if i%2 == 0 {
			left = append(left, c)
		} else {
			right = append(right, c)
		}
	}
	reverse(right)
	return left, right
}

func blockChildren(sorted []int, sizes map[int]int) (left, right []int) {
	var leftLoad, rightLoad int
	for _, c := range sorted {
		if leftLoad <= rightLoad {
			left = append(left, c)
			leftLoad += sizes[c]
		} else {
			right = append(right, c)
			rightLoad += sizes[c]
		}
	}
	reverse(left)
	return left, right
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func projectiveOpt(rt *tree.RootedTree, opts []Option, split childSplitter) (Result, error) {
	if _, hasRoot := rt.Root(); !hasRoot {
		return Result{}, tree.ErrNoRootSet
	}
	if err := rt.RecomputeSubtreeSizes(); err != nil {
		return Result{}, err
	}
	root, _ := rt.Root()
	n := rt.NumVertices()

	order := make([]int, n)
	next := 0
	var place func(u int) error
	place = func(u int) error {
		children, err := rt.Children(u)
		if err != nil {
			return err
		}
		sorted := make([]int, len(children))
		copy(sorted, children)
		sizes := make(map[int]int, len(sorted))
		for _, c := range sorted {
			s, err := rt.SubtreeSize(c)
			if err != nil {
				return err
			}
			sizes[c] = s
		}
		sort.Slice(sorted, func(i, j int) bool { return sizes[sorted[i]] > sizes[sorted[j]] })

		left, right := split(sorted, sizes)
		for _, c := range left {
			if err := place(c); err != nil {
				return err
			}
		}
		order[next] = u
		next++
		for _, c := range right {
			if err := place(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := place(root); err != nil {
		return Result{}, err
	}

	cost := costOfOrder(rt.Underlying().EdgeList(), order)

	o := resolveOptions(opts)
	if !o.MakeArrangement {
		return Result{Cost: cost}, nil
	}
	arr, err := arrangementFromOrder(order)
	if err != nil {
		return Result{}, err
	}
	return Result{Cost: cost, Arrangement: arr}, nil
}

// costOfOrder sums |pos(u)-pos(v)| over edges given a position->vertex
// order.
func costOfOrder(edges []graph.Edge, order []int) uint64 {
	pos := make([]int, len(order))
	for p, v := range order {
		pos[v] = p
	}
	var total uint64
	for _, e := range edges {
		d := pos[e.U] - pos[e.V]
		if d < 0 {
			d = -d
		}
		total += uint64(d)
	}
	return total
}

package generate

import (
	"iter"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/lal-project/linarr/internal/assert"
	"github.com/lal-project/linarr/tree"
)

// shape is a canonical-form unlabeled rooted tree: a multiset of child
// shapes, sorted so that isomorphic shapes always produce the identical
// value (same construction as isomorphism.CanonicalName, duplicated
// here over shape rather than *tree.RootedTree since these trees don't
// exist as concrete vertex-indexed structures until materialize is
// called).
type shape struct {
	children []*shape
	name     string
	size     int
}

func leafShape() *shape { return &shape{name: "10", size: 1} }

func newShape(children []*shape) *shape {
	names := make([]string, len(children))
	size := 1
	for i, c := range children {
		names[i] = c.name
		size += c.size
	}
	sort.Strings(names)
	return &shape{children: children, name: "1" + strings.Join(names, "") + "0", size: size}
}

// partitions returns every partition of total into non-increasing
// positive parts, each no larger than maxPart.
func partitions(total, maxPart int) [][]int {
	if total == 0 {
		return [][]int{{}}
	}
	var out [][]int
	limit := maxPart
	if limit > total {
		limit = total
	}
	for first := limit; first >= 1; first-- {
		for _, rest := range partitions(total-first, first) {
			out = append(out, append([]int{first}, rest...))
		}
	}
	return out
}

// multichoose returns every way to pick k items, with repetition
// allowed and order ignored, from a pool of m distinct items, as
// nondecreasing index slices into [0,m). Built on gonum's
// combinations-without-repetition generator via the standard
// stars-and-bars bijection (choose k from m+k-1, then subtract the
// running offset), since combin has no dedicated multiset-combination
// generator.
func multichoose(m, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	combos := combin.Combinations(m+k-1, k)
	out := make([][]int, len(combos))
	for i, c := range combos {
		idx := make([]int, k)
		for j, d := range c {
			idx[j] = d - j
		}
		out[i] = idx
	}
	return out
}

// shapesOfSize returns every unlabeled rooted tree shape on exactly n
// vertices, memoized across calls.
func shapesOfSize(n int, memo map[int][]*shape) []*shape {
	if s, ok := memo[n]; ok {
		return s
	}
	if n == 1 {
		memo[1] = []*shape{leafShape()}
		return memo[1]
	}

	var out []*shape
	for _, p := range partitions(n-1, n-1) {
		// Group the partition's parts by value: value v occurring c
		// times means we need an unordered choice of c shapes (with
		// repetition) from shapesOfSize(v).
		counts := map[int]int{}
		for _, v := range p {
			counts[v]++
		}
		values := make([]int, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		sort.Ints(values)

		// Cartesian product, across distinct values, of each value's
		// multiset choice of child shapes.
		combosPerValue := make([][][]*shape, len(values))
		for vi, v := range values {
			pool := shapesOfSize(v, memo)
			for _, idx := range multichoose(len(pool), counts[v]) {
				picked := make([]*shape, len(idx))
				for j, pi := range idx {
					picked[j] = pool[pi]
				}
				combosPerValue[vi] = append(combosPerValue[vi], picked)
			}
		}

		for _, combo := range cartesianProduct(combosPerValue) {
			var children []*shape
			for _, group := range combo {
				children = append(children, group...)
			}
			out = append(out, newShape(children))
		}
	}
	memo[n] = out
	return out
}

// cartesianProduct returns every way to pick one element from each of
// groups, as a slice of per-group picks.
func cartesianProduct(groups [][][]*shape) [][][]*shape {
	result := [][][]*shape{{}}
	for _, g := range groups {
		var next [][][]*shape
		for _, prefix := range result {
			for _, choice := range g {
				combo := append(append([][]*shape{}, prefix...), choice)
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}

// materialize assigns vertex 0 to s's root and IDs the rest by a
// pre-order walk over its children, returning a RootedTree.
func materialize(s *shape) *tree.RootedTree {
	rt := tree.NewRootedTree(s.size)
	next := 1
	var place func(parent int, sh *shape)
	place = func(parent int, sh *shape) {
		for _, c := range sh.children {
			id := next
			next++
			err := rt.AddEdge(parent, id)
			assert.Invariant(err == nil, "generate: materialize produced an invalid edge")
			place(id, c)
		}
	}
	place(0, s)
	err := rt.SetRoot(0)
	assert.Invariant(err == nil, "generate: materialize rooted at a vertex outside range")
	return rt
}

// AllUnlabeledRootedTrees yields every unlabeled rooted tree shape on n
// vertices exactly once (n>=1), materialized as a RootedTree with an
// arbitrary but fixed vertex numbering.
func AllUnlabeledRootedTrees(n int) iter.Seq[tree.RootedTree] {
	return func(yield func(tree.RootedTree) bool) {
		if n < 1 {
			return
		}
		memo := map[int][]*shape{}
		for _, s := range shapesOfSize(n, memo) {
			if !yield(*materialize(s)) {
				return
			}
		}
	}
}

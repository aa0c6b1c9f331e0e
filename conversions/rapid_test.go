package conversions_test

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/lal-project/linarr/conversions"
	"github.com/lal-project/linarr/generate"
	"github.com/lal-project/linarr/tree"
)

// TestPrufer_RoundTripProperty checks, per §8's universal invariants,
// that Prüfer encode/decode is a genuine bijection on random labeled
// trees up to n≈12: decoding a tree's own encoded sequence must
// reproduce exactly the same edge set, not merely an isomorphic one.
func TestPrufer_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(3, 12).Draw(rt, "n")
		seed := rapid.Int64().Draw(rt, "seed")

		tr, err := generate.RandomLabeledFreeTree(n, rand.New(rand.NewSource(seed)))
		if err != nil {
			rt.Fatalf("RandomLabeledFreeTree(%d): %v", n, err)
		}

		seq, err := conversions.ToPrufer(&tr)
		if err != nil {
			rt.Fatalf("ToPrufer: %v", err)
		}
		if len(seq) != n-2 {
			rt.Fatalf("sequence length = %d, want %d", len(seq), n-2)
		}

		decoded, err := conversions.FromPrufer(seq)
		if err != nil {
			rt.Fatalf("FromPrufer: %v", err)
		}
		if decoded.NumVertices() != n {
			rt.Fatalf("decoded vertex count = %d, want %d", decoded.NumVertices(), n)
		}
		if !decoded.IsTree() {
			rt.Fatalf("decoded graph is not a tree")
		}

		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if tr.HasEdge(u, v) != decoded.HasEdge(u, v) {
					rt.Fatalf("edge (%d,%d) mismatch after round trip", u, v)
				}
			}
		}
	})
}

// TestHeadVector_RoundTripProperty checks the same bijection property
// for the head-vector encoding, rooting every random tree at vertex 0.
func TestHeadVector_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 12).Draw(rt, "n")
		seed := rapid.Int64().Draw(rt, "seed")

		tr, err := generate.RandomLabeledFreeTree(n, rand.New(rand.NewSource(seed)))
		if err != nil {
			rt.Fatalf("RandomLabeledFreeTree(%d): %v", n, err)
		}
		rooted := tree.NewRootedTree(n)
		raw := make([][2]int, 0, len(tr.Underlying().EdgeList()))
		for _, e := range tr.Underlying().EdgeList() {
			raw = append(raw, [2]int{e.U, e.V})
		}
		if err := rooted.AddEdges(raw); err != nil {
			rt.Fatalf("AddEdges: %v", err)
		}
		if err := rooted.SetRoot(0); err != nil {
			rt.Fatalf("SetRoot(0): %v", err)
		}

		hv, err := conversions.FromRootedTree(rooted)
		if err != nil {
			rt.Fatalf("FromRootedTree: %v", err)
		}
		decoded, err := hv.ToRootedTree()
		if err != nil {
			rt.Fatalf("ToRootedTree: %v", err)
		}
		root, ok := decoded.Root()
		if !ok || root != 0 {
			rt.Fatalf("decoded root = %d (ok=%v), want 0", root, ok)
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rooted.Underlying().HasEdge(u, v) != decoded.Underlying().HasEdge(u, v) {
					rt.Fatalf("edge (%d,%d) mismatch after round trip", u, v)
				}
			}
		}
	})
}

package generate

import (
	"iter"
	"math/rand"

	"github.com/lal-project/linarr/conversions"
	"github.com/lal-project/linarr/tree"
)

// AllLabeledFreeTrees yields every labeled free tree on n vertices
// exactly once, via Cayley's bijection between labeled trees and Prüfer
// sequences of length n-2 over the alphabet [0,n-1]: iterating every
// sequence in odometer order and decoding each one (conversions.FromPrufer)
// produces all n^(n-2) trees with no duplicates and no combinatorial
// library beyond basic integer arithmetic.
//
// n<=0 yields nothing; n==1 yields the single-vertex tree once; n==2
// yields the single edge {0,1} once (Prüfer sequences of length 0 have
// exactly one, empty, instance).
func AllLabeledFreeTrees(n int) iter.Seq[tree.Tree] {
	return func(yield func(tree.Tree) bool) {
		if n <= 0 {
			return
		}
		if n == 1 {
			yield(*tree.NewTree(1))
			return
		}
		seqLen := n - 2
		seq := make([]int, seqLen)
		for {
			t, err := conversions.FromPrufer(seq)
			if err == nil {
				if !yield(*t) {
					return
				}
			}
			if !odometerIncrement(seq, n) {
				return
			}
		}
	}
}

// odometerIncrement advances seq as a base-n counter (seq[0] is the
// least-significant digit). It returns false when the counter wrapped
// past its maximum value back to all zeros, true otherwise.
func odometerIncrement(seq []int, base int) bool {
	for i := 0; i < len(seq); i++ {
		seq[i]++
		if seq[i] < base {
			return true
		}
		seq[i] = 0
	}
	return false
}

// RandomLabeledFreeTree returns a uniformly random labeled free tree on
// n vertices, by sampling a uniformly random Prüfer sequence (Cayley's
// bijection makes this exact, not approximate).
func RandomLabeledFreeTree(n int, rng *rand.Rand) (tree.Tree, error) {
	if n == 1 {
		return *tree.NewTree(1), nil
	}
	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rng.Intn(n)
	}
	t, err := conversions.FromPrufer(seq)
	if err != nil {
		return tree.Tree{}, err
	}
	return *t, nil
}

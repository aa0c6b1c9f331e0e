package isomorphism

import "github.com/lal-project/linarr/tree"

// FastNonIsoResult is the outcome of the constant-invariant rejection
// pass: a definite verdict, or an inconclusive one requiring the slower
// canonical-name comparison.
type FastNonIsoResult int

const (
	MightBeIsomorphic FastNonIsoResult = iota
	AreIsomorphicResult
	AreNotIsomorphicResult
)

// FastNonIso compares t1 and t2 on four Θ(n) invariants — vertex count,
// leaf count, maximum degree, and sum of squared degrees — any mismatch
// of which proves non-isomorphism outright; agreement on all four is
// inconclusive and does not itself prove isomorphism.
func FastNonIso(t1, t2 *tree.Tree) FastNonIsoResult {
	if t1.NumVertices() != t2.NumVertices() {
		return AreNotIsomorphicResult
	}
	n := t1.NumVertices()
	if n == 0 {
		return AreIsomorphicResult
	}

	leaves1, maxDeg1, sumSq1 := degreeInvariants(t1, n)
	leaves2, maxDeg2, sumSq2 := degreeInvariants(t2, n)

	if leaves1 != leaves2 || maxDeg1 != maxDeg2 || sumSq1 != sumSq2 {
		return AreNotIsomorphicResult
	}
	return MightBeIsomorphic
}

func degreeInvariants(t *tree.Tree, n int) (leaves, maxDeg int, sumSq int64) {
	for v := 0; v < n; v++ {
		d := t.Degree(v)
		if d == 1 {
			leaves++
		}
		if d > maxDeg {
			maxDeg = d
		}
		sumSq += int64(d) * int64(d)
	}
	return
}

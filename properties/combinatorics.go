package properties

// sumRange returns Σ_{v=a}^{b} v, 0 if a>b.
func sumRange(a, b int64) int64 {
	if a > b {
		return 0
	}
	return (a + b) * (b - a + 1) / 2
}

// sumSqRange returns Σ_{v=a}^{b} v², 0 if a>b, via Faulhaber's formula
// for the sum of squares of the first n integers applied to both
// endpoints.
func sumSqRange(a, b int64) int64 {
	if a > b {
		return 0
	}
	return faulhaber2(b) - faulhaber2(a-1)
}

// faulhaber2(n) = Σ_{v=1}^{n} v² = n(n+1)(2n+1)/6.
func faulhaber2(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) * (2*n + 1) / 6
}

// pairwiseGapSumExcluding returns Σ_{i<j} (s_j - s_i) over the sorted
// sequence S = {1,...,n} \ {w,x} (w != x, both in [1,n]), using the
// identity Σ_{i<j}(s_j-s_i) = 2·Σ_m m·s_m - (k+1)·Σ_m s_m for a sorted
// k-element sequence indexed m=1..k, evaluated over the three
// contiguous runs [1,w-1], [w+1,x-1], [x+1,n] that remain once w and x
// are removed from {1,...,n}.
func pairwiseGapSumExcluding(n int64, w, x int64) int64 {
	if w > x {
		w, x = x, w
	}
	var sumS, sumMS int64

	// Run [1, w-1]: rank m equals the value itself.
	sumS += sumRange(1, w-1)
	sumMS += sumSqRange(1, w-1)

	// Run [w+1, x-1]: rank m = value - 1.
	lo, hi := w+1, x-1
	sumS += sumRange(lo, hi)
	sumMS += sumSqRange(lo, hi) - sumRange(lo, hi)

	// Run [x+1, n]: rank m = value - 2.
	lo, hi = x+1, n
	sumS += sumRange(lo, hi)
	sumMS += sumSqRange(lo, hi) - 2*sumRange(lo, hi)

	k := n - 2
	return 2*sumMS - (k+1)*sumS
}

// sumAbsDiffExcluding returns Σ_{y != z} |y-z| over the (ordered) pairs
// of {1,...,n} \ {w,x}: twice the gap sum above.
func sumAbsDiffExcluding(n, w, x int64) int64 {
	return 2 * pairwiseGapSumExcluding(n, w, x)
}

// sumAbsDiffFrom(n, x) returns Σ_{y != x, y in [1,n]} |x-y|.
func sumAbsDiffFrom(n, x int64) int64 {
	below := sumRange(1, x-1) // Σ(x-y) for y<x, reindexed as Σ_{d=1}^{x-1} d
	above := sumRange(1, n-x) // Σ(y-x) for y>x, reindexed as Σ_{d=1}^{n-x} d
	return below + above
}

// sumSqAbsDiffFrom(n, x) returns Σ_{y != x, y in [1,n]} |x-y|².
func sumSqAbsDiffFrom(n, x int64) int64 {
	return sumSqRange(1, x-1) + sumSqRange(1, n-x)
}

package properties

import (
	"github.com/lal-project/linarr/bibliography"
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/rational"
	"github.com/lal-project/linarr/tree"
)

// varianceL returns Var(|X-Y|) for two distinct uniform random ranks
// X,Y drawn from {1,...,n}: (n+1)(n-2)/18, derived from E[(X-Y)^2] =
// n(n+1)/6 and E[|X-Y|] = (n+1)/3.
func varianceL(n int64) rational.Rational {
	num := rational.NewRationalFromInt((n + 1) * (n - 2))
	return num.Quo(rational.NewRationalFromInt(18))
}

// expectedLRational is (n+1)/3 as a Rational, shared by the Cov helpers
// below.
func expectedLRational(n int64) rational.Rational {
	return rational.NewRationalFromInt(n + 1).Quo(rational.NewRationalFromInt(3))
}

// covShared returns Cov(|X-Y|,|X-Z|) for a random injective assignment
// of three distinct vertex labels X,Y,Z (two edges sharing endpoint X)
// to distinct ranks in {1,...,n}. Fixing X=x, Σ_{y,z≠x,y≠z}
// |x-y||x-z| = A(x)^2-B(x) where A,B are the O(1) gap-sum helpers in
// combinatorics.go; summing that over all n choices of x gives
// E[|X-Y||X-Z|]·n(n-1)(n-2) in O(n) total.
func covShared(n int64) rational.Rational {
	var total int64
	for x := int64(1); x <= n; x++ {
		a := sumAbsDiffFrom(n, x)
		b := sumSqAbsDiffFrom(n, x)
		total += a*a - b
	}
	denom := n * (n - 1) * (n - 2)
	eXYXZ := rational.NewRationalFromInt(total).Quo(rational.NewRationalFromInt(denom))
	eL := expectedLRational(n)
	return eXYXZ.Sub(eL.Mul(eL))
}

// covDisjoint returns Cov(|W-X|,|Y-Z|) for a random injective assignment
// of four distinct vertex labels (two vertex-disjoint edges) to distinct
// ranks in {1,...,n}. For each ordered pair (w,x), the remaining n-2
// ranks contribute Σ_{y≠z}|y-z| = sumAbsDiffExcluding(n,w,x); summing
// |w-x|·sumAbsDiffExcluding(n,w,x) over all ordered (w,x) pairs gives
// E[|W-X||Y-Z|]·n(n-1)(n-2)(n-3) in O(n^2) total.
func covDisjoint(n int64) rational.Rational {
	var total int64
	for w := int64(1); w <= n; w++ {
		for x := int64(1); x <= n; x++ {
			if w == x {
				continue
			}
			gap := w - x
			if gap < 0 {
				gap = -gap
			}
			total += gap * sumAbsDiffExcluding(n, w, x)
		}
	}
	denom := n * (n - 1) * (n - 2) * (n - 3)
	eWXYZ := rational.NewRationalFromInt(total).Quo(rational.NewRationalFromInt(denom))
	eL := expectedLRational(n)
	return eWXYZ.Sub(eL.Mul(eL))
}

// sharedPairCount returns n1 = Σ_v C(deg(v),2), the number of edge
// pairs sharing a vertex.
func sharedPairCount(g *graph.Graph) int64 {
	var n1 int64
	for v := 0; v < g.NumVertices(); v++ {
		d := int64(g.Degree(v))
		n1 += d * (d - 1) / 2
	}
	return n1
}

// VarianceD returns Var(D(G,π)) over a uniformly random arrangement π,
// exactly: Var(D) = m·Var(L) + 2·n1·Cov_shared + 2·n2·Cov_disjoint,
// where n1 is the number of vertex-sharing edge pairs and n2 =
// |Q(G)| is the number of vertex-disjoint edge pairs.
func VarianceD(g *graph.Graph) rational.Rational {
	n := int64(g.NumVertices())
	m := int64(g.NumEdges())
	total := rational.NewRationalFromInt(m).Mul(varianceL(n))

	if n1 := sharedPairCount(g); n1 > 0 && n >= 3 {
		term := rational.NewRationalFromInt(2 * n1).Mul(covShared(n))
		total = total.Add(term)
	}
	if n2 := SizeQ(g); n2 > 0 && n >= 4 {
		term := rational.NewRationalFromInt(2 * n2).Mul(covDisjoint(n))
		total = total.Add(term)
	}
	return total
}

// crossingShape canonicalizes an ordered-then-relabeled 8-tuple of
// vertex slots (q's two edges followed by q''s two edges) down to
// small integers assigned in first-occurrence order, so that two
// (q,q') instances with the same vertex-sharing pattern map to the
// same key regardless of actual vertex labels.
type crossingShape [8]int

// canonicalSignature builds q={a1,a2}, q'={b1,b2}'s crossingShape.
func canonicalSignature(a1, a2, b1, b2 graph.Edge) crossingShape {
	raw := [8]int{a1.U, a1.V, a2.U, a2.V, b1.U, b1.V, b2.U, b2.V}
	ids := make(map[int]int, 8)
	var sig crossingShape
	next := 0
	for i, v := range raw {
		id, ok := ids[v]
		if !ok {
			id = next
			ids[v] = id
			next++
		}
		sig[i] = id
	}
	return sig
}

// edgeCrossesByRank reports whether the edges (rank[u],rank[v]) and
// (rank[x],rank[y]) interleave, mirroring crossings.interleave's
// position-space definition but over relative ranks instead of an
// arrangement.Arrangement.
func edgeCrossesByRank(rank []int, u, v, x, y int) bool {
	l1, r1 := rank[u], rank[v]
	if l1 > r1 {
		l1, r1 = r1, l1
	}
	l2, r2 := rank[x], rank[y]
	if l2 > r2 {
		l2, r2 = r2, l2
	}
	if l1 < l2 {
		return l2 < r1 && r1 < r2
	}
	return l1 < r2 && r2 < r1
}

// shapeCovariance returns Cov(X_q,X_q') for a crossingShape sig,
// memoized in cache. The crossing indicators of any two independent
// edge pairs depend only on the relative order type of the (at most
// eight, fewer once some vertices are shared) vertices involved, never
// on the arrangement's total length n — the same order-statistics
// exchangeability argument underlying covShared/covDisjoint above, one
// level up (pairs of pairs instead of pairs of vertices). So each
// distinct sharing shape's covariance is computed exactly once, by
// exhausting every one of its k! relative orders, and cached.
func shapeCovariance(sig crossingShape, cache map[crossingShape]rational.Rational) rational.Rational {
	if cov, ok := cache[sig]; ok {
		return cov
	}
	k := 0
	for _, id := range sig {
		if id+1 > k {
			k = id + 1
		}
	}

	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}
	rank := make([]int, k)
	var both, orders int64

	var permute func(int)
	permute = func(i int) {
		if i == k {
			for pos, id := range perm {
				rank[id] = pos
			}
			xq := edgeCrossesByRank(rank, sig[0], sig[1], sig[2], sig[3])
			xq2 := edgeCrossesByRank(rank, sig[4], sig[5], sig[6], sig[7])
			if xq && xq2 {
				both++
			}
			orders++
			return
		}
		for j := i; j < k; j++ {
			perm[i], perm[j] = perm[j], perm[i]
			permute(i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}
	}
	permute(0)

	eBoth := rational.NewRationalFromInt(both).Quo(rational.NewRationalFromInt(orders))
	eEach := rational.NewRationalFromInt(1).Quo(rational.NewRationalFromInt(3))
	cov := eBoth.Sub(eEach.Mul(eEach))
	cache[sig] = cov
	return cov
}

// disjointEdges reports whether e and f share no endpoint.
func disjointEdges(e, f graph.Edge) bool {
	return e.U != f.U && e.U != f.V && e.V != f.U && e.V != f.V
}

// sharesAnyVertex reports whether {a1,a2} and {b1,b2} share at least
// one endpoint.
func sharesAnyVertex(a1, a2, b1, b2 graph.Edge) bool {
	in := map[int]bool{a1.U: true, a1.V: true, a2.U: true, a2.V: true}
	return in[b1.U] || in[b1.V] || in[b2.U] || in[b2.V]
}

// VarianceC returns the exact Var(C(G,π)) over a uniformly random
// arrangement π. Per spec.md §4.J / \cite Alemany2020a, Var(C) =
// 2|Q(G)|/9 + 2·Σ_{q<q'}Cov(X_q,X_q'), summed over unordered pairs of
// distinct elements of Q(G): the diagonal term 2|Q(G)|/9 follows
// because each crossing indicator X_q is Bernoulli(1/3), independent
// of n; the off-diagonal term requires classifying every pair of
// independent edge pairs by how they share vertices — pairs sharing no
// vertex contribute 0 (disjoint vertex sets have independent relative
// order, by the same exchangeability fact covDisjoint relies on), and
// every other sharing pattern is classified by canonicalSignature and
// resolved exactly via shapeCovariance.
func VarianceC(g *graph.Graph) rational.Rational {
	bibliography.Register(bibliography.Alemany2020a)

	q := SizeQ(g)
	total := rational.NewRationalFromInt(2 * q).Quo(rational.NewRationalFromInt(9))

	edges := g.EdgeList()
	var qPairs [][2]graph.Edge
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if disjointEdges(edges[i], edges[j]) {
				qPairs = append(qPairs, [2]graph.Edge{edges[i], edges[j]})
			}
		}
	}

	cache := make(map[crossingShape]rational.Rational)
	two := rational.NewRationalFromInt(2)
	for i := 0; i < len(qPairs); i++ {
		a1, a2 := qPairs[i][0], qPairs[i][1]
		for j := i + 1; j < len(qPairs); j++ {
			b1, b2 := qPairs[j][0], qPairs[j][1]
			if !sharesAnyVertex(a1, a2, b1, b2) {
				continue
			}
			sig := canonicalSignature(a1, a2, b1, b2)
			cov := shapeCovariance(sig, cache)
			total = total.Add(two.Mul(cov))
		}
	}
	return total
}

// sumOfChildSquares returns Σ_{children c of v} size(subtree(c))², used
// below as the recursive ingredient of Var(ρ_v), the variance of v's
// own relative rank within its subtree interval.
func sumOfChildSquares(rt *tree.RootedTree, v int) (int64, error) {
	children, err := rt.Children(v)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range children {
		sz, err := rt.SubtreeSize(c)
		if err != nil {
			return 0, err
		}
		total += int64(sz) * int64(sz)
	}
	return total, nil
}

// covSiblingEdges returns Cov(L_(u,cj),L_(u,ck)) for two sibling edges
// under u, where nj,nk are cj's and ck's subtree sizes, tOther is the
// combined subtree size of u's other children, and sqOther is the sum
// of their subtree sizes squared. Derived (see DESIGN.md) by expanding
// each edge's length into a "near" term (cj's/ck's own rank within its
// block) and a "far" term (how many of u's other children fall
// strictly between u and cj/ck), observing the near terms are
// uncorrelated with everything else because they pair with a
// zero-mean, block-independent sign, and resolving the far-term
// covariance via exhaustive 3/4/5-item relative-order enumeration;
// checked against direct brute-force enumeration on small trees.
func covSiblingEdges(nj, nk, tOther, sqOther int64) rational.Rational {
	r := rational.NewRationalFromInt
	term1 := r(-nj * nk).Quo(r(9))
	term2 := r(-(nj + nk) * tOther).Quo(r(36))
	term3 := r(sqOther).Quo(r(20))
	term4 := r(tOther * tOther).Quo(r(180))
	return term1.Add(term2).Add(term3).Add(term4)
}

// VarianceDProjective returns Var(D(T,π)) over a uniformly random
// projective arrangement π of the rooted tree rt (see
// ExpectedDProjective's doc comment for the generative model).
//
// Var(D) decomposes into per-edge variances plus pairwise
// covariances. Two edges in different branches, or a parent edge and
// one of its own child's child edges, turn out to be uncorrelated: in
// both cases one side of the covariance pairs a vertex's relative rank
// (independent of anything outside its own subtree) with a
// block-placement sign whose expectation is zero. Only sibling edges
// — two children of the same vertex — carry nonzero covariance, via
// covSiblingEdges. No closed form for this specialization is given in
// the retrievable literature (see DESIGN.md); both the per-edge
// variance and the sibling covariance were checked against brute-force
// enumeration on small trees.
func VarianceDProjective(rt *tree.RootedTree) (rational.Rational, error) {
	if _, ok := rt.Root(); !ok {
		return rational.Rational{}, tree.ErrNoRootSet
	}

	six := rational.NewRationalFromInt(6)
	twelve := rational.NewRationalFromInt(12)
	eighteen := rational.NewRationalFromInt(18)
	two := rational.NewRationalFromInt(2)

	total := rational.NewRationalFromInt(0)
	n := rt.NumVertices()

	for u := 0; u < n; u++ {
		children, err := rt.Children(u)
		if err != nil {
			return rational.Rational{}, err
		}
		if len(children) == 0 {
			continue
		}
		nu, err := rt.SubtreeSize(u)
		if err != nil {
			return rational.Rational{}, err
		}

		sizes := make([]int64, len(children))
		var sumSqU int64
		for i, c := range children {
			sz, err := rt.SubtreeSize(c)
			if err != nil {
				return rational.Rational{}, err
			}
			sizes[i] = int64(sz)
			sumSqU += sizes[i] * sizes[i]
		}

		for i, c := range children {
			nj := sizes[i]
			sumSqC, err := sumOfChildSquares(rt, c)
			if err != nil {
				return rational.Rational{}, err
			}
			varRho := rational.NewRationalFromInt(sumSqC).Quo(six).
				Add(rational.NewRationalFromInt((nj - 1) * (nj - 1)).Quo(twelve))
			tOther := int64(nu) - 1 - nj
			sqOther := sumSqU - nj*nj
			varBetween := rational.NewRationalFromInt(sqOther).Quo(six).
				Add(rational.NewRationalFromInt(tOther * tOther).Quo(eighteen))
			total = total.Add(varRho).Add(varBetween)
		}

		for i := 0; i < len(children); i++ {
			for j := i + 1; j < len(children); j++ {
				nj, nk := sizes[i], sizes[j]
				tOther := int64(nu) - 1 - nj - nk
				sqOther := sumSqU - nj*nj - nk*nk
				cov := covSiblingEdges(nj, nk, tOther, sqOther)
				total = total.Add(two.Mul(cov))
			}
		}
	}
	return total, nil
}

// VarianceDPlanar returns Var(D(T,π)) over a uniformly random planar
// arrangement π of the free tree t, modelled as VarianceDProjective
// rooted at t's (first) centroid, for the same reason and with the
// same caveat as ExpectedDPlanar: no spec.md §8 scenario pins a planar
// variance value, so the centroid-rooted reduction is a documented
// modelling choice rather than a literature-grounded formula.
func VarianceDPlanar(t *tree.Tree) (rational.Rational, error) {
	centroid := TreeCentroid(t)
	rt, err := rootAt(t, centroid[0])
	if err != nil {
		return rational.Rational{}, err
	}
	return VarianceDProjective(rt)
}

package properties

import (
	"github.com/lal-project/linarr/graph"
	"github.com/lal-project/linarr/rational"
)

// DegreeMoment returns <k^p>, the p-th moment of the degree sequence of
// g: (1/n) Σ_v deg(v)^p.
func DegreeMoment(g *graph.Graph, p int) rational.Rational {
	n := g.NumVertices()
	sum := rational.NewRationalFromInt(0)
	for v := 0; v < n; v++ {
		d := rational.NewRationalFromInt(int64(g.Degree(v)))
		sum = sum.Add(d.Exp(uint64(p)))
	}
	return sum.Quo(rational.NewRationalFromInt(int64(n)))
}

// hubinessLinear and hubinessStar are the two reference <k^2> values
// spanning hubiness's normalization range: the linear (path) tree, whose
// degree sequence is two 1s and (n-2) 2s giving <k^2> = (4n-6)/n, and the
// star tree, whose degree sequence is one (n-1) and (n-1) 1s giving
// <k^2> = n-1.
func hubinessLinear(n int64) rational.Rational {
	num := rational.NewRationalFromInt(4*n - 6)
	den := rational.NewRationalFromInt(n)
	return num.Quo(den)
}

func hubinessStar(n int64) rational.Rational {
	return rational.NewRationalFromInt(n - 1)
}

// Hubiness computes h(T) = (<k^2>_T - <k^2>_linear) / (<k^2>_star -
// <k^2>_linear), normalizing a tree's second degree moment against the
// two extremal tree shapes. Defined only for n>=4 (below that the linear
// and star denominators coincide or the shape space is degenerate).
func Hubiness(g *graph.Graph) (rational.Rational, error) {
	n := g.NumVertices()
	if n < 4 {
		return rational.Rational{}, ErrDomainNotDefined
	}
	k2 := DegreeMoment(g, 2)
	lin := hubinessLinear(int64(n))
	star := hubinessStar(int64(n))
	return k2.Sub(lin).Quo(star.Sub(lin)), nil
}

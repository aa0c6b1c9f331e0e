// Package rational implements the arbitrary-precision numeric collaborator
// contract of spec.md §6.4: construction from a machine integer, negation,
// +, -, *, /, exponentiation, comparison, and lossy conversion to float64.
//
// The core algorithm packages (properties, dopt) depend only on Rational
// and Integer, never on math/big directly, so the "external numeric
// collaborator" boundary spec.md describes is a real Go interface boundary:
// a future GMP binding could replace this package without the rest of the
// module noticing.
package rational

import "math/big"

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	v big.Int
}

// NewInteger constructs an Integer from a machine int64.
func NewInteger(n int64) Integer {
	var i Integer
	i.v.SetInt64(n)
	return i
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	var r Integer
	r.v.Neg(&x.v)
	return r
}

// Add returns x+y.
func (x Integer) Add(y Integer) Integer {
	var r Integer
	r.v.Add(&x.v, &y.v)
	return r
}

// Sub returns x-y.
func (x Integer) Sub(y Integer) Integer {
	var r Integer
	r.v.Sub(&x.v, &y.v)
	return r
}

// Mul returns x*y.
func (x Integer) Mul(y Integer) Integer {
	var r Integer
	r.v.Mul(&x.v, &y.v)
	return r
}

// Quo returns the truncated quotient x/y. Panics if y is zero.
func (x Integer) Quo(y Integer) Integer {
	var r Integer
	r.v.Quo(&x.v, &y.v)
	return r
}

// Exp returns x raised to the non-negative machine-integer power e.
func (x Integer) Exp(e uint64) Integer {
	var r Integer
	exp := new(big.Int).SetUint64(e)
	r.v.Exp(&x.v, exp, nil)
	return r
}

// Cmp compares x and y: -1 if x<y, 0 if x==y, +1 if x>y.
func (x Integer) Cmp(y Integer) int { return x.v.Cmp(&y.v) }

// Float64 converts x to a float64, possibly losing precision.
func (x Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(&x.v).Float64()
	return f
}

// String returns the base-10 representation of x.
func (x Integer) String() string { return x.v.String() }

// Rational is an arbitrary-precision rational number.
type Rational struct {
	v big.Rat
}

// NewRational constructs the rational num/den from two machine integers.
// Panics if den is zero, matching math/big.Rat's own contract.
func NewRational(num, den int64) Rational {
	var r Rational
	r.v.SetFrac64(num, den)
	return r
}

// NewRationalFromInt constructs an integral Rational.
func NewRationalFromInt(n int64) Rational {
	var r Rational
	r.v.SetInt64(n)
	return r
}

// Neg returns -x.
func (x Rational) Neg() Rational {
	var r Rational
	r.v.Neg(&x.v)
	return r
}

// Add returns x+y.
func (x Rational) Add(y Rational) Rational {
	var r Rational
	r.v.Add(&x.v, &y.v)
	return r
}

// Sub returns x-y.
func (x Rational) Sub(y Rational) Rational {
	var r Rational
	r.v.Sub(&x.v, &y.v)
	return r
}

// Mul returns x*y.
func (x Rational) Mul(y Rational) Rational {
	var r Rational
	r.v.Mul(&x.v, &y.v)
	return r
}

// Quo returns x/y. Panics if y is zero.
func (x Rational) Quo(y Rational) Rational {
	var r Rational
	r.v.Quo(&x.v, &y.v)
	return r
}

// Exp returns x raised to the non-negative machine-integer power e.
func (x Rational) Exp(e uint64) Rational {
	r := NewRationalFromInt(1)
	base := x
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return r
}

// Cmp compares x and y: -1 if x<y, 0 if x==y, +1 if x>y.
func (x Rational) Cmp(y Rational) int { return x.v.Cmp(&y.v) }

// Float64 converts x to a float64, possibly losing precision.
func (x Rational) Float64() float64 {
	f, _ := x.v.Float64()
	return f
}

// String returns x in "num/den" form (den omitted when 1).
func (x Rational) String() string { return x.v.RatString() }

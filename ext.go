package offset

import (
	"fmt"
	"math"
	"math/big"
)

// Ext is a scalar in a one-root quadratic extension of the rationals: the
// value a0 + a1·√root with rational a0, a1 and root ≥ 0. Rational values are
// represented with a1 = 0. Ext supports exact sign and order computations,
// including between values drawn from different extension fields, which is
// what circular-arc endpoints require.
type Ext struct {
	a0   *big.Rat
	a1   *big.Rat
	root *big.Rat
}

// ExtRat returns q as an extension-field scalar.
func ExtRat(q *big.Rat) Ext {
	return Ext{a0: q, a1: ratInt(0), root: ratInt(0)}
}

// ExtSqrt returns the scalar a0 + a1·√root. The root must be non-negative.
func ExtSqrt(a0, a1, root *big.Rat) Ext {
	if root.Sign() < 0 {
		panic("offset: negative root in extension scalar")
	}
	return Ext{a0: a0, a1: a1, root: root}
}

// IsRational reports whether e is known to be rational by construction, i.e.
// whether its irrational part vanishes trivially.
func (e Ext) IsRational() bool {
	return e.a1.Sign() == 0 || e.root.Sign() == 0
}

// Rat returns the rational value of e, if e is rational by construction.
func (e Ext) Rat() (*big.Rat, bool) {
	if e.IsRational() {
		return e.a0, true
	}
	return nil, false
}

// Sign returns the exact sign of e.
func (e Ext) Sign() int {
	if e.IsRational() {
		return e.a0.Sign()
	}
	s0 := e.a0.Sign()
	s1 := e.a1.Sign()
	if s0 == 0 {
		return s1
	}
	if s0 == s1 {
		return s0
	}
	// The two parts have opposite signs; the larger magnitude wins.
	// Compare a0² against a1²·root.
	switch ratSq(e.a0).Cmp(ratMul(ratSq(e.a1), e.root)) {
	case 1:
		return s0
	case -1:
		return s1
	default:
		return 0
	}
}

// CmpRat exactly compares e with the rational q, returning -1, 0, or +1.
func (e Ext) CmpRat(q *big.Rat) int {
	return Ext{a0: ratSub(e.a0, q), a1: e.a1, root: e.root}.Sign()
}

// Cmp exactly compares e with o, returning -1, 0, or +1. The two values may
// lie in different extension fields.
func (e Ext) Cmp(o Ext) int {
	if q, ok := o.Rat(); ok {
		return e.CmpRat(q)
	}
	if q, ok := e.Rat(); ok {
		return -o.CmpRat(q)
	}
	if e.root.Cmp(o.root) == 0 {
		return Ext{a0: ratSub(e.a0, o.a0), a1: ratSub(e.a1, o.a1), root: e.root}.Sign()
	}
	// Distinct roots p and q: decide the sign of
	// (a0 - b0) + a1·√p - b1·√q by comparing X = (a0 - b0) + a1·√p against
	// Y = b1·√q. When both sides have the same sign we square them, which
	// leaves a single-root sign computation.
	c := ratSub(e.a0, o.a0)
	x := Ext{a0: c, a1: e.a1, root: e.root}
	sx := x.Sign()
	sy := o.a1.Sign()
	if sx != sy {
		if sx > sy {
			return 1
		}
		return -1
	}
	if sx == 0 {
		return 0
	}
	d := Ext{
		a0:   ratSub(ratAdd(ratSq(c), ratMul(ratSq(e.a1), e.root)), ratMul(ratSq(o.a1), o.root)),
		a1:   ratMul(ratInt(2), ratMul(c, e.a1)),
		root: e.root,
	}
	return sx * d.Sign()
}

// Float64 returns a floating-point approximation of e.
func (e Ext) Float64() float64 {
	return ratF(e.a0) + ratF(e.a1)*math.Sqrt(ratF(e.root))
}

func (e Ext) String() string {
	if e.IsRational() {
		return e.a0.RatString()
	}
	return fmt.Sprintf("%s + %s*sqrt(%s)", e.a0.RatString(), e.a1.RatString(), e.root.RatString())
}

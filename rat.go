package offset

import (
	"math"
	"math/big"
)

// Helpers for exact rational arithmetic. Every helper allocates a fresh
// result; a *big.Rat is never mutated in place once it has been handed to
// another value, which is what makes all types in this package immutable by
// convention.

func ratInt(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// ratFloat converts a finite float to the exact rational it represents.
func ratFloat(f float64) *big.Rat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("offset: non-finite float in exact computation")
	}
	return new(big.Rat).SetFloat64(f)
}

func ratF(x *big.Rat) float64 {
	f, _ := x.Float64()
	return f
}

func ratAdd(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }
func ratSub(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
func ratMul(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
func ratQuo(x, y *big.Rat) *big.Rat { return new(big.Rat).Quo(x, y) }
func ratNeg(x *big.Rat) *big.Rat    { return new(big.Rat).Neg(x) }
func ratAbs(x *big.Rat) *big.Rat    { return new(big.Rat).Abs(x) }
func ratSq(x *big.Rat) *big.Rat     { return new(big.Rat).Mul(x, x) }

func ratHalf(x *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, big.NewRat(1, 2))
}

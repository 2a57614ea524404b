package offset

import (
	"math"
	"math/big"
)

// maxSqrtIters caps the Newton refinement loop. The iteration converges
// quadratically from any positive seed, and the seed is already within
// 1/denom of the root, so reaching the cap can only mean a logic error.
const maxSqrtIters = 100

// sqrtSeed returns the rational round(√s · denom) / denom, halving denom as
// needed so that the numerator fits an int64.
func sqrtSeed(s *big.Rat, denom int64) *big.Rat {
	d := math.Sqrt(ratF(s))
	const maxInt = int64(1) << 62
	for denom > 1 && float64(maxInt)/float64(denom) < d {
		denom /= 2
	}
	if d >= float64(maxInt) {
		return ratFloat(d)
	}
	num := int64(math.Round(d * float64(denom)))
	if num == 0 {
		// Keep the seed positive; Newton then converges from above.
		num = 1
	}
	return big.NewRat(num, denom)
}

// refineSqrt refines a positive rational approximation of √s by Newton's
// method until accept holds for the approximation and its exact signed
// error s - appD². It returns the accepted approximation and error.
func refineSqrt(s, appD *big.Rat, accept func(appD, appErr *big.Rat) bool) (*big.Rat, *big.Rat) {
	appErr := ratSub(s, ratSq(appD))
	for i := 0; !accept(appD, appErr); i++ {
		if i == maxSqrtIters {
			panic("offset: square root refinement did not converge")
		}
		appD = ratHalf(ratAdd(appD, ratQuo(s, appD)))
		appErr = ratSub(s, ratSq(appD))
	}
	return appD, appErr
}

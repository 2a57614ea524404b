package offset

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exactCmp compares exact values by value rather than representation. Zero
// values (unused union fields) compare equal to each other.
var exactCmp = cmp.Options{
	cmp.Comparer(func(x, y *big.Rat) bool {
		if x == nil || y == nil {
			return x == nil && y == nil
		}
		return x.Cmp(y) == 0
	}),
	cmp.Comparer(func(x, y Ext) bool {
		if x.a0 == nil || y.a0 == nil {
			return x.a0 == nil && y.a0 == nil
		}
		return x.Cmp(y) == 0
	}),
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

// ipt returns the point (x, y) with integer coordinates.
func ipt(x, y int64) Point { return Pt(ratInt(x), ratInt(y)) }

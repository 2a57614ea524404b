package offset

import "testing"

func TestExtSign(t *testing.T) {
	cases := []struct {
		e    Ext
		want int
	}{
		{ExtRat(rat(0, 1)), 0},
		{ExtRat(rat(7, 3)), 1},
		{ExtRat(rat(-7, 3)), -1},
		// -3 + 2*sqrt(2) < 0
		{ExtSqrt(ratInt(-3), ratInt(2), ratInt(2)), -1},
		// -2 + 2*sqrt(2) > 0
		{ExtSqrt(ratInt(-2), ratInt(2), ratInt(2)), 1},
		// -2 + sqrt(4) == 0, even though the root is written as a radical
		{ExtSqrt(ratInt(-2), ratInt(1), ratInt(4)), 0},
		// 3 - sqrt(2) > 0
		{ExtSqrt(ratInt(3), ratInt(-1), ratInt(2)), 1},
		// half-rational forms
		{ExtSqrt(ratInt(0), ratInt(-1), ratInt(5)), -1},
		{ExtSqrt(ratInt(4), ratInt(0), ratInt(5)), 1},
	}
	for _, c := range cases {
		if got := c.e.Sign(); got != c.want {
			t.Errorf("(%v).Sign() = %d, want %d", c.e, got, c.want)
		}
	}
}

func TestExtCmpRat(t *testing.T) {
	// 1 + sqrt(2) ≈ 2.414
	e := ExtSqrt(ratInt(1), ratInt(1), ratInt(2))
	if got := e.CmpRat(rat(5, 2)); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
	if got := e.CmpRat(rat(12, 5)); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestExtCmp(t *testing.T) {
	cases := []struct {
		a, b Ext
		want int
	}{
		// same field
		{
			ExtSqrt(ratInt(0), ratInt(1), ratInt(2)),
			ExtSqrt(ratInt(1), ratInt(0), ratInt(2)),
			1,
		},
		// rational versus extension
		{
			ExtRat(rat(3, 2)),
			ExtSqrt(ratInt(0), ratInt(1), ratInt(2)),
			1,
		},
		// distinct roots: sqrt(2) < sqrt(3)
		{
			ExtSqrt(ratInt(0), ratInt(1), ratInt(2)),
			ExtSqrt(ratInt(0), ratInt(1), ratInt(3)),
			-1,
		},
		// distinct roots: 1 + sqrt(2) < sqrt(6)
		{
			ExtSqrt(ratInt(1), ratInt(1), ratInt(2)),
			ExtSqrt(ratInt(0), ratInt(1), ratInt(6)),
			-1,
		},
		// distinct roots, equal values: 2*sqrt(2) == sqrt(8)
		{
			ExtSqrt(ratInt(0), ratInt(2), ratInt(2)),
			ExtSqrt(ratInt(0), ratInt(1), ratInt(8)),
			0,
		},
		// negative values with distinct roots: -2*sqrt(2) < -sqrt(3)
		{
			ExtSqrt(ratInt(0), ratInt(-2), ratInt(2)),
			ExtSqrt(ratInt(0), ratInt(-1), ratInt(3)),
			-1,
		},
	}
	for _, c := range cases {
		if got := c.a.Cmp(c.b); got != c.want {
			t.Errorf("(%v).Cmp(%v) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := c.b.Cmp(c.a); got != -c.want {
			t.Errorf("(%v).Cmp(%v) = %d, want %d", c.b, c.a, got, -c.want)
		}
	}
}

func TestExtRatRoundTrip(t *testing.T) {
	e := ExtRat(rat(22, 7))
	q, ok := e.Rat()
	if !ok {
		t.Fatal("expected a rational value")
	}
	if q.Cmp(rat(22, 7)) != 0 {
		t.Errorf("got %v, want 22/7", q)
	}
	if _, ok := ExtSqrt(ratInt(1), ratInt(1), ratInt(2)).Rat(); ok {
		t.Error("expected an irrational value")
	}
}

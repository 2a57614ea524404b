package offset

import "math/big"

// Line is an exact infinite line, the locus of ax + by + c = 0.
type Line struct {
	A *big.Rat
	B *big.Rat
	C *big.Rat
}

// LineThrough returns the line passing through two distinct points.
func LineThrough(p, q Point) Line {
	if p.Equal(q) {
		panic("offset: line through coincident points")
	}
	return Line{
		A: ratSub(p.Y, q.Y),
		B: ratSub(q.X, p.X),
		C: ratSub(ratMul(p.X, q.Y), ratMul(q.X, p.Y)),
	}
}

// Perpendicular returns the line through p perpendicular to l.
func (l Line) Perpendicular(p Point) Line {
	// The direction of l is (b, -a); the perpendicular direction is (a, b).
	return Line{
		A: ratNeg(l.B),
		B: l.A,
		C: ratSub(ratMul(l.B, p.X), ratMul(l.A, p.Y)),
	}
}

// Contains reports whether p lies exactly on l.
func (l Line) Contains(p Point) bool {
	v := ratAdd(ratAdd(ratMul(l.A, p.X), ratMul(l.B, p.Y)), l.C)
	return v.Sign() == 0
}

// Intersect computes the exact crossing point of two lines. It reports false
// if the lines are parallel or coincident.
func (l Line) Intersect(o Line) (Point, bool) {
	det := ratSub(ratMul(l.A, o.B), ratMul(o.A, l.B))
	if det.Sign() == 0 {
		return Point{}, false
	}
	return Point{
		X: ratQuo(ratSub(ratMul(l.B, o.C), ratMul(o.B, l.C)), det),
		Y: ratQuo(ratSub(ratMul(o.A, l.C), ratMul(l.A, o.C)), det),
	}, true
}

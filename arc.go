package offset

import (
	"fmt"
	"math/big"
)

// Arc is an exact circular arc of rational radius, always oriented
// counterclockwise from P0 to P1 around its center.
type Arc struct {
	// The center of the supporting circle.
	Center Point
	// The radius of the supporting circle.
	Radius *big.Rat
	// The arc's start point. It must lie exactly on the supporting circle.
	P0 ExtPoint
	// The arc's end point. It must lie exactly on the supporting circle.
	P1 ExtPoint
}

func (a Arc) String() string {
	return fmt.Sprintf("[%s -> %s ccw around %s]", a.P0, a.P1, a.Center)
}

// DirectedRight reports whether the arc is directed left to right, in the
// lexicographic xy order. It is only meaningful for x-monotone arcs.
func (a Arc) DirectedRight() bool {
	return a.P0.CmpXY(a.P1) < 0
}

// Start returns the arc's start point.
func (a Arc) Start() ExtPoint { return a.P0 }

// End returns the arc's end point.
func (a Arc) End() ExtPoint { return a.P1 }

// circlePos is a coarse position of a point on a circle, ordered by
// counterclockwise travel from the rightmost point.
type circlePos int

const (
	posRight circlePos = iota // the rightmost point, with a vertical tangent
	posUpper                  // the open upper half
	posLeft                   // the leftmost point, with a vertical tangent
	posLower                  // the open lower half
)

func (a Arc) pos(pt ExtPoint) circlePos {
	switch pt.Y.CmpRat(a.Center.Y) {
	case 1:
		return posUpper
	case -1:
		return posLower
	}
	if pt.X.CmpRat(a.Center.X) > 0 {
		return posRight
	}
	return posLeft
}

// ccwCmp orders two points on the supporting circle by counterclockwise
// travel from the rightmost point. Along the upper half x strictly
// decreases, along the lower half it strictly increases.
func (a Arc) ccwCmp(p, q ExtPoint) int {
	rp, rq := a.pos(p), a.pos(q)
	if rp != rq {
		if rp < rq {
			return -1
		}
		return 1
	}
	switch rp {
	case posUpper:
		return q.X.Cmp(p.X)
	case posLower:
		return p.X.Cmp(q.X)
	default:
		return 0
	}
}

// between reports whether p lies strictly inside the counterclockwise arc
// from s to t.
func (a Arc) between(s, p, t ExtPoint) bool {
	if a.ccwCmp(s, t) < 0 {
		return a.ccwCmp(s, p) < 0 && a.ccwCmp(p, t) < 0
	}
	// The arc wraps past the rightmost point.
	return a.ccwCmp(s, p) < 0 || a.ccwCmp(p, t) < 0
}

// XMonotone decomposes the arc into its ordered sequence of x-monotone
// sub-arcs by splitting it at the two vertical-tangent points of the
// supporting circle, whenever one lies strictly inside the arc. The result
// covers the arc exactly and has between one and three elements.
func (a Arc) XMonotone() []Arc {
	if a.P0.Equal(a.P1) {
		panic("offset: degenerate arc")
	}
	left := Pt(ratSub(a.Center.X, a.Radius), a.Center.Y).ExtPoint()
	right := Pt(ratAdd(a.Center.X, a.Radius), a.Center.Y).ExtPoint()

	var splits []ExtPoint
	for _, pole := range []ExtPoint{left, right} {
		if a.between(a.P0, pole, a.P1) {
			splits = append(splits, pole)
		}
	}
	if len(splits) == 2 && a.between(a.P0, splits[1], splits[0]) {
		splits[0], splits[1] = splits[1], splits[0]
	}

	chain := make([]ExtPoint, 0, 4)
	chain = append(chain, a.P0)
	chain = append(chain, splits...)
	chain = append(chain, a.P1)

	arcs := make([]Arc, len(chain)-1)
	for i := range arcs {
		arcs[i] = Arc{
			Center: a.Center,
			Radius: a.Radius,
			P0:     chain[i],
			P1:     chain[i+1],
		}
	}
	return arcs
}

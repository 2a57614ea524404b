package offset

import (
	"errors"
	"iter"
	"math"
	"math/big"
	"slices"
)

var (
	// ErrNonPositiveRadius indicates an offset radius that is not positive.
	ErrNonPositiveRadius = errors.New("offset radius must be positive")
	// ErrNonPositiveEps indicates an approximation tolerance that is not
	// positive.
	ErrNonPositiveEps = errors.New("approximation tolerance must be positive")
)

// Offsetter computes the boundary curves of the approximate offset of
// simple polygons: the Minkowski sum of a polygon with a disk of radius r.
// Offset segments and the endpoints of the connecting arcs are exact
// rational geometry; the only approximated quantities are irrational edge
// lengths, and their approximation error is bounded by the tolerance.
//
// An Offsetter is read-only after construction and may be used for any
// number of cycles, concurrently if desired.
type Offsetter struct {
	r          *big.Rat
	eps        float64
	invSqrtEps int64
}

// NewOffsetter returns an Offsetter for the given exact radius and
// approximation tolerance.
func NewOffsetter(r *big.Rat, eps float64) (*Offsetter, error) {
	if r == nil || r.Sign() <= 0 {
		return nil, ErrNonPositiveRadius
	}
	if !(eps > 0) {
		return nil, ErrNonPositiveEps
	}
	inv := int64(1 / math.Sqrt(eps))
	if inv == 0 {
		inv = 1
	}
	return &Offsetter{
		r:          r,
		eps:        eps,
		invSqrtEps: inv,
	}, nil
}

// Cycle computes the single convolution cycle of the polygon's offset as a
// single-pass stream of labeled curves. The polygon's vertices are visited
// in counterclockwise order regardless of the polygon's own orientation.
// Every edge contributes one or two offset segments, every vertex one
// connecting counterclockwise arc, split into its x-monotone sub-arcs; the
// final arc closes the cycle back to the first offset point and only its
// last sub-arc is marked as the last curve of the cycle. Sequence indices
// start at 0 and increase by one per emitted curve, and every curve is
// stamped with cycleID.
func (o *Offsetter) Cycle(pgn *Polygon, cycleID int) iter.Seq[LabeledCurve] {
	return func(yield func(LabeledCurve) bool) {
		n := pgn.NumVertices()
		step := 1
		if pgn.Orientation() == Clockwise {
			step = n - 1
		}

		index := 0
		emit := func(c Curve, last bool) bool {
			lc := LabeledCurve{
				Curve: c,
				Label: Label{
					Right: c.DirectedRight(),
					Cycle: cycleID,
					Index: index,
					Last:  last,
				},
			}
			index++
			return yield(lc)
		}

		var firstOp, prevOp Point
		curr := 0
		for i := range n {
			next := (curr + step) % n
			segs, op1, op2 := o.offsetEdge(pgn.Vertex(curr), pgn.Vertex(next))

			if i == 0 {
				// Remember the very first offset point for closing the
				// cycle.
				firstOp = op1
			} else {
				// Connect the previous edge's last offset point to op1 with
				// a counterclockwise arc around the shared vertex.
				arc := Arc{
					Center: pgn.Vertex(curr),
					Radius: o.r,
					P0:     prevOp.ExtPoint(),
					P1:     op1.ExtPoint(),
				}
				for _, xarc := range arc.XMonotone() {
					if !emit(arcCurve(xarc), false) {
						return
					}
				}
			}

			for _, seg := range segs {
				if !emit(segmentCurve(seg), false) {
					return
				}
			}

			prevOp = op2
			curr = next
		}

		// Close the convolution cycle with the final arc, centered at the
		// first vertex visited.
		arc := Arc{
			Center: pgn.Vertex(0),
			Radius: o.r,
			P0:     prevOp.ExtPoint(),
			P1:     firstOp.ExtPoint(),
		}
		xarcs := arc.XMonotone()
		for j, xarc := range xarcs {
			if !emit(arcCurve(xarc), j == len(xarcs)-1) {
				return
			}
		}
	}
}

// CycleCurves collects the cycle produced by Cycle into a slice.
func (o *Offsetter) CycleCurves(pgn *Polygon, cycleID int) []LabeledCurve {
	return slices.Collect(o.Cycle(pgn, cycleID))
}

// offsetEdge computes the offset geometry of the single oriented edge
// v1 -> v2: one or two offset segments, together with the offset points op1
// and op2 corresponding to v1 and v2. Two segments are produced exactly
// when the edge length is irrational; they share the intersection point of
// the circle tangents at op1 and op2.
func (o *Offsetter) offsetEdge(v1, v2 Point) (segs []Segment, op1, op2 Point) {
	deltaX := ratSub(v2.X, v1.X)
	deltaY := ratSub(v2.Y, v1.Y)
	signDeltaX := deltaX.Sign()
	signDeltaY := deltaY.Sign()

	if signDeltaX == 0 {
		// The edge is vertical. The offset edge lies at distance r to the
		// right if y2 > y1, and to the left if y2 < y1.
		shift := o.r
		if signDeltaY < 0 {
			shift = ratNeg(o.r)
		}
		op1 = v1.Translate(shift, ratInt(0))
		op2 = v2.Translate(shift, ratInt(0))
		return []Segment{{P0: op1, P1: op2}}, op1, op2
	}
	if signDeltaY == 0 {
		// The edge is horizontal. The offset edge lies at distance r to the
		// bottom if x2 > x1, and to the top if x2 < x1.
		shift := ratNeg(o.r)
		if signDeltaX < 0 {
			shift = o.r
		}
		op1 = v1.Translate(ratInt(0), shift)
		op2 = v2.Translate(ratInt(0), shift)
		return []Segment{{P0: op1, P1: op2}}, op1, op2
	}

	// In the general case the edge length d is usually irrational. The
	// approximation error for d is bounded by
	//
	//	2 * d * eps * |(d - deltaY) / deltaX|
	//
	// computed with a floating-point guide.
	sqrD := ratAdd(ratSq(deltaX), ratSq(deltaY))
	dd := math.Sqrt(ratF(sqrD))
	errBound := ratFloat(2 * dd * o.eps * math.Abs((dd-ratF(deltaY))/ratF(deltaX)))

	absDeltaX := ratAbs(deltaX)
	absDeltaY := ratAbs(deltaY)
	appD, appErr := refineSqrt(sqrD, sqrtSeed(sqrD, o.invSqrtEps),
		func(appD, appErr *big.Rat) bool {
			return ratAbs(appErr).Cmp(errBound) <= 0 &&
				appD.Cmp(absDeltaX) > 0 &&
				appD.Cmp(absDeltaY) > 0
		})

	if appErr.Sign() == 0 {
		// The edge length is rational, so both endpoints can be shifted by
		// the exact vector (r*deltaY/d, -r*deltaX/d).
		transX := ratQuo(ratMul(o.r, deltaY), appD)
		transY := ratQuo(ratMul(o.r, ratNeg(deltaX)), appD)
		op1 = v1.Translate(transX, transY)
		op2 = v2.Translate(transX, transY)
		return []Segment{{P0: op1, P1: op2}}, op1, op2
	}

	// Bias the approximation according to the sign of deltaX: a lower bound
	// of the root when x1 > x2 and an upper bound when x1 < x2. This keeps
	// the two tangent half-angles below from crossing, so the offset points
	// stay consistently ordered. Preserve this branch exactly.
	if signDeltaX < 0 {
		if appErr.Sign() < 0 {
			appD = ratQuo(sqrD, appD)
		}
	} else {
		if appErr.Sign() > 0 {
			appD = ratQuo(sqrD, appD)
		}
	}

	// If theta is the angle the edge vector forms with the x-axis, the
	// outward normal forms phi = theta - pi/2, and tan(phi/2) is bounded
	// from below and above by:
	lowerTanHalfPhi := ratQuo(ratSub(appD, deltaY), ratNeg(deltaX))
	upperTanHalfPhi := ratQuo(ratNeg(deltaX), ratAdd(appD, deltaY))

	sin, cos := halfAngleSinCos(lowerTanHalfPhi)
	op1 = v1.Translate(ratMul(o.r, cos), ratMul(o.r, sin))
	sin, cos = halfAngleSinCos(upperTanHalfPhi)
	op2 = v2.Translate(ratMul(o.r, cos), ratMul(o.r, sin))

	// The tangents to the two offset circles at op1 and op2 intersect in a
	// point that joins the two offset segments.
	l1 := LineThrough(v1, op1).Perpendicular(op1)
	l2 := LineThrough(v2, op2).Perpendicular(op2)
	mid, ok := l1.Intersect(l2)
	if !ok {
		panic("offset: tangent lines at consecutive offset points are parallel")
	}

	return []Segment{
		{P0: op1, P1: mid},
		{P0: mid, P1: op2},
	}, op1, op2
}

// halfAngleSinCos converts a rational tangent half-angle t = tan(phi/2) to
// the exact pair sin(phi) = 2t/(1+t²), cos(phi) = (1-t²)/(1+t²).
func halfAngleSinCos(t *big.Rat) (sin, cos *big.Rat) {
	sqrT := ratSq(t)
	denom := ratAdd(ratInt(1), sqrT)
	sin = ratQuo(ratMul(ratInt(2), t), denom)
	cos = ratQuo(ratSub(ratInt(1), sqrT), denom)
	return sin, cos
}

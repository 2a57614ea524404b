package offset

import "fmt"

// CurveKind distinguishes the two curve geometries a convolution cycle is
// made of.
type CurveKind int

const (
	SegmentKind CurveKind = iota + 1
	ArcKind
)

func (k CurveKind) String() string {
	switch k {
	case SegmentKind:
		return "segment"
	case ArcKind:
		return "arc"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Curve is a single boundary curve of the offset: either an exact straight
// segment or an x-monotone circular arc.
type Curve struct {
	Kind CurveKind
	// The segment geometry. This is only valid when Kind == SegmentKind.
	Segment Segment
	// The arc geometry. This is only valid when Kind == ArcKind.
	Arc Arc
}

func segmentCurve(s Segment) Curve {
	return Curve{Kind: SegmentKind, Segment: s}
}

func arcCurve(a Arc) Curve {
	return Curve{Kind: ArcKind, Arc: a}
}

// Start returns the curve's start point.
func (c Curve) Start() ExtPoint {
	switch c.Kind {
	case SegmentKind:
		return c.Segment.Start()
	case ArcKind:
		return c.Arc.Start()
	default:
		panic("unreachable")
	}
}

// End returns the curve's end point.
func (c Curve) End() ExtPoint {
	switch c.Kind {
	case SegmentKind:
		return c.Segment.End()
	case ArcKind:
		return c.Arc.End()
	default:
		panic("unreachable")
	}
}

// DirectedRight reports whether the curve is directed left to right.
func (c Curve) DirectedRight() bool {
	switch c.Kind {
	case SegmentKind:
		return c.Segment.DirectedRight()
	case ArcKind:
		return c.Arc.DirectedRight()
	default:
		panic("unreachable")
	}
}

// Label carries the metadata the arrangement consumer needs for every
// emitted curve.
type Label struct {
	// Whether the curve is directed left to right.
	Right bool
	// The id of the convolution cycle the curve belongs to.
	Cycle int
	// The curve's position within its cycle, starting at 0.
	Index int
	// Whether the curve is the last one of its cycle.
	Last bool
}

// LabeledCurve is the unit emitted to the output stream: a curve together
// with its label.
type LabeledCurve struct {
	Curve Curve
	Label Label
}

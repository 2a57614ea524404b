package offset

import "fmt"

// Segment is an exact straight offset edge between two rational points.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

func (s Segment) String() string {
	return fmt.Sprintf("[%s -> %s]", s.P0, s.P1)
}

// DirectedRight reports whether the segment is directed left to right, in
// the lexicographic xy order.
func (s Segment) DirectedRight() bool {
	return s.P0.CmpXY(s.P1) < 0
}

// Start returns the segment's start point in extension-field coordinates.
func (s Segment) Start() ExtPoint { return s.P0.ExtPoint() }

// End returns the segment's end point in extension-field coordinates.
func (s Segment) End() ExtPoint { return s.P1.ExtPoint() }

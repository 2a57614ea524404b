package offset

import (
	"fmt"
	"math/big"
)

// Point is an exact 2D point with rational coordinates.
type Point struct {
	X *big.Rat
	Y *big.Rat
}

// Pt returns the point (x, y).
func Pt(x, y *big.Rat) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%s, %s)", pt.X.RatString(), pt.Y.RatString())
}

// Translate returns pt shifted by the exact vector (dx, dy).
func (pt Point) Translate(dx, dy *big.Rat) Point {
	return Point{
		X: ratAdd(pt.X, dx),
		Y: ratAdd(pt.Y, dy),
	}
}

// CmpXY compares two points lexicographically, x first, returning -1, 0,
// or +1.
func (pt Point) CmpXY(o Point) int {
	if c := pt.X.Cmp(o.X); c != 0 {
		return c
	}
	return pt.Y.Cmp(o.Y)
}

func (pt Point) Equal(o Point) bool {
	return pt.CmpXY(o) == 0
}

// ExtPoint converts pt to extension-field coordinates. This is the explicit
// conversion applied wherever a segment endpoint is reused as an arc
// endpoint.
func (pt Point) ExtPoint() ExtPoint {
	return ExtPoint{X: ExtRat(pt.X), Y: ExtRat(pt.Y)}
}

// ExtPoint is a 2D point whose coordinates may lie in a quadratic extension
// field. Circular-arc endpoints use this representation.
type ExtPoint struct {
	X Ext
	Y Ext
}

func (pt ExtPoint) String() string {
	return fmt.Sprintf("(%s, %s)", pt.X, pt.Y)
}

// CmpXY compares two points lexicographically, x first, returning -1, 0,
// or +1.
func (pt ExtPoint) CmpXY(o ExtPoint) int {
	if c := pt.X.Cmp(o.X); c != 0 {
		return c
	}
	return pt.Y.Cmp(o.Y)
}

func (pt ExtPoint) Equal(o ExtPoint) bool {
	return pt.CmpXY(o) == 0
}

// Rat returns the rational value of pt, if both coordinates are rational by
// construction.
func (pt ExtPoint) Rat() (Point, bool) {
	x, okx := pt.X.Rat()
	y, oky := pt.Y.Rat()
	if !okx || !oky {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Float64 returns a floating-point approximation of pt.
func (pt ExtPoint) Float64() (x, y float64) {
	return pt.X.Float64(), pt.Y.Float64()
}

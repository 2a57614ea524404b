package offset

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices indicates a polygon with fewer than three vertices.
	ErrTooFewVertices = errors.New("polygon must have at least three vertices")
	// ErrRepeatedVertex indicates consecutive coincident polygon vertices.
	ErrRepeatedVertex = errors.New("polygon must not repeat consecutive vertices")
	// ErrDegeneratePolygon indicates a polygon with zero signed area.
	ErrDegeneratePolygon = errors.New("polygon must not have zero area")
)

// Orientation describes the winding direction of a polygon.
type Orientation int

const (
	Clockwise        Orientation = -1
	Counterclockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Polygon is a cyclic sequence of at least three exact vertices, in either
// winding direction. It is immutable after construction.
type Polygon struct {
	vertices    []Point
	orientation Orientation
}

// NewPolygon returns the polygon with the given vertex cycle. The vertices
// are assumed to describe a simple polygon; simplicity itself is not
// verified, but the cheap degeneracies are: fewer than three vertices,
// consecutive coincident vertices, and zero signed area are all rejected.
func NewPolygon(vertices []Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewVertices, len(vertices))
	}
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if v.Equal(next) {
			return nil, fmt.Errorf("%w: vertex %d", ErrRepeatedVertex, i)
		}
	}
	// Twice the signed area, computed exactly; positive means
	// counterclockwise.
	area := ratInt(0)
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		area = ratAdd(area, ratSub(ratMul(v.X, next.Y), ratMul(next.X, v.Y)))
	}
	orientation := Counterclockwise
	switch area.Sign() {
	case 0:
		return nil, ErrDegeneratePolygon
	case -1:
		orientation = Clockwise
	}
	return &Polygon{
		vertices:    vertices,
		orientation: orientation,
	}, nil
}

// NumVertices returns the number of vertices.
func (p *Polygon) NumVertices() int { return len(p.vertices) }

// Vertex returns the i-th vertex, starting at 0.
func (p *Polygon) Vertex(i int) Point { return p.vertices[i] }

// Orientation returns the winding direction of the vertex cycle, detected
// from the polygon's exact signed area.
func (p *Polygon) Orientation() Orientation { return p.orientation }

package offset

import (
	"errors"
	"testing"
)

func TestPolygonOrientation(t *testing.T) {
	ccw, err := NewPolygon([]Point{ipt(0, 0), ipt(1, 0), ipt(1, 1), ipt(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if got := ccw.Orientation(); got != Counterclockwise {
		t.Errorf("got %v, want counterclockwise", got)
	}

	cw, err := NewPolygon([]Point{ipt(0, 0), ipt(0, 1), ipt(1, 1), ipt(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if got := cw.Orientation(); got != Clockwise {
		t.Errorf("got %v, want clockwise", got)
	}
}

func TestPolygonValidation(t *testing.T) {
	cases := []struct {
		name     string
		vertices []Point
		want     error
	}{
		{
			"too few vertices",
			[]Point{ipt(0, 0), ipt(1, 0)},
			ErrTooFewVertices,
		},
		{
			"repeated vertex",
			[]Point{ipt(0, 0), ipt(1, 0), ipt(1, 0), ipt(0, 1)},
			ErrRepeatedVertex,
		},
		{
			"repeated vertex across the wrap",
			[]Point{ipt(0, 0), ipt(1, 0), ipt(1, 1), ipt(0, 0)},
			ErrRepeatedVertex,
		},
		{
			"collinear vertices",
			[]Point{ipt(0, 0), ipt(1, 1), ipt(2, 2)},
			ErrDegeneratePolygon,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewPolygon(c.vertices); !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
		})
	}
}

func TestPolygonAccessors(t *testing.T) {
	pgn, err := NewPolygon([]Point{ipt(0, 0), ipt(4, 0), ipt(0, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if got := pgn.NumVertices(); got != 3 {
		t.Errorf("got %d vertices, want 3", got)
	}
	diff(t, ipt(4, 0), pgn.Vertex(1), exactCmp)
}

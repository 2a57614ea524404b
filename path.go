package offset

import (
	"math"

	"honnef.co/go/curve"
)

// Path approximates a collected convolution cycle as a closed float Bézier
// path, with offset segments becoming lines and connecting arcs becoming
// cubic Bézier approximations within the given tolerance. The result is a
// display and interchange form; it plays no role in the exact computation.
func Path(cycle []LabeledCurve, tolerance float64) curve.BezPath {
	if len(cycle) == 0 {
		return nil
	}
	path := curve.BezPath{curve.MoveTo(floatPt(cycle[0].Curve.Start()))}
	for _, lc := range cycle {
		switch lc.Curve.Kind {
		case SegmentKind:
			path = append(path, curve.LineTo(floatPt(lc.Curve.End())))
		case ArcKind:
			first := true
			for el := range floatArc(lc.Curve.Arc).PathElements(tolerance) {
				// The arc starts where the previous curve ended; drop its
				// MoveTo.
				if first {
					first = false
					continue
				}
				path = append(path, el)
			}
		default:
			panic("unreachable")
		}
	}
	path = append(path, curve.ClosePath())
	return path
}

// Path returns the polygon's outline as a float Bézier path.
func (p *Polygon) Path() curve.BezPath {
	path := make(curve.BezPath, 0, p.NumVertices()+2)
	for i, v := range p.vertices {
		pt := curve.Pt(ratF(v.X), ratF(v.Y))
		if i == 0 {
			path = append(path, curve.MoveTo(pt))
		} else {
			path = append(path, curve.LineTo(pt))
		}
	}
	path = append(path, curve.ClosePath())
	return path
}

func floatPt(pt ExtPoint) curve.Point {
	x, y := pt.Float64()
	return curve.Pt(x, y)
}

// floatArc converts an exact counterclockwise arc to the float arc type.
func floatArc(a Arc) curve.Arc {
	cx := ratF(a.Center.X)
	cy := ratF(a.Center.Y)
	x0, y0 := a.P0.Float64()
	x1, y1 := a.P1.Float64()
	start := math.Atan2(y0-cy, x0-cx)
	sweep := math.Atan2(y1-cy, x1-cx) - start
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	r := ratF(a.Radius)
	return curve.Arc{
		Center:     curve.Pt(cx, cy),
		Radii:      curve.Vec(r, r),
		StartAngle: start,
		SweepAngle: sweep,
	}
}

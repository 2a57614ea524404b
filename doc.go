// Package offset computes the boundary curves of the approximate offset of
// a simple polygon: the Minkowski sum of the polygon with a disk of radius
// r. The output is one labeled closed cycle of exact line segments and
// circular arcs, in the form an arrangement-construction or union stage
// consumes to produce the final offset shape.
//
// # Exactness and approximation
//
// All emitted geometry is exact: coordinates are rationals (or, for arc
// endpoints in general, elements of a quadratic extension field, see
// [Ext]). The only quantities that are approximated are irrational edge
// lengths and the tangent half-angles derived from them, and the
// approximation error is provably bounded by the caller's tolerance. The
// approximation is biased per edge so that it can never break the
// downstream topological assumptions: offset points stay consistently
// ordered, every emitted arc is split into x-monotone sub-arcs, and the
// cycle closes exactly.
//
// Axis-aligned edges and edges of rational length are offset exactly, with
// zero approximation error. A general edge is offset by two segments that
// meet at the intersection of the circle tangents at its two offset points.
//
// # Labels
//
// Every emitted curve carries a [Label]: whether the curve is directed left
// to right, the id of its convolution cycle, its strictly increasing
// sequence index within the cycle, and whether it is the cycle's last
// curve. See [Offsetter.Cycle].
//
// # Float export
//
// [Path] bridges to the float world of [honnef.co/go/curve], approximating
// a collected cycle as a closed Bézier path for display or further
// processing. It is a one-way, lossy conversion.
package offset

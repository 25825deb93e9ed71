package bsp

import (
	"errors"
	"fmt"
)

// Epsilon is the tolerance used to classify a point against a plane. It is
// a package-level constant rather than configurable at runtime: the
// splitting algorithm's correctness depends on every classification in a
// single operation using the same tolerance.
const Epsilon = 1e-5

// ErrDegeneratePlane is returned when three points cannot determine a
// plane: either two of them coincide or all three are collinear, so the
// cross product used to build the normal has zero length.
var ErrDegeneratePlane = errors.New("bsp: degenerate plane (collinear or repeated points)")

// Plane is an oriented plane: points p on the plane satisfy Normal·p == W.
type Plane struct {
	Normal Vector
	W      float64
}

// NewPlaneFromPoints builds the plane through three non-collinear points,
// oriented by the right-hand rule (a, b, c taken counter-clockwise when
// viewed from the side the normal points to).
func NewPlaneFromPoints(a, b, c Vector) (Plane, error) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() < Epsilon {
		return Plane{}, fmt.Errorf("%w: points %v, %v, %v", ErrDegeneratePlane, a, b, c)
	}
	n = n.Unit()
	return Plane{Normal: n, W: n.Dot(a)}, nil
}

// Flip returns the plane with normal and offset negated, i.e. the same
// plane with front and back swapped.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Negate(), W: -p.W}
}

// SameOrientation reports whether p and other's normals point the same
// general direction, used to classify coplanar polygons as same-facing or
// opposite-facing (§4.2).
func (p Plane) SameOrientation(other Plane) bool {
	return p.Normal.Dot(other.Normal) > 0
}

// classification tags a vertex (or a polygon, via bitwise OR of its
// vertices' tags) relative to a plane.
type classification int

const (
	coplanar classification = 0
	front    classification = 1
	back     classification = 2
	spanning classification = front | back
)

// classifyPoint returns the per-vertex tag for pos against p.
func (p Plane) classifyPoint(pos Vector) classification {
	t := p.Normal.Dot(pos) - p.W
	switch {
	case t < -Epsilon:
		return back
	case t > Epsilon:
		return front
	default:
		return coplanar
	}
}

// signedDistance returns Normal·pos - W, the raw signed distance used by
// the split procedure to compute intersection parameters.
func (p Plane) signedDistance(pos Vector) float64 {
	return p.Normal.Dot(pos) - p.W
}

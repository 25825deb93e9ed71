// Package transform applies affine transforms (translate, rotate) to a
// solid.Solid's polygons in place, grounded on core.py's CSG.translate/
// CSG.rotate. Transforms depend only on bsp's Vector arithmetic, never on
// the BSP tree (spec.md §1, §6).
package transform

import (
	"math"

	"github.com/bloodmagesoftware/solidify/bsp"
	"github.com/bloodmagesoftware/solidify/solid"
)

// Translate shifts every vertex position in s by disp, in place. Normals
// are untouched, matching core.py's translate.
func Translate(s solid.Solid, disp bsp.Vector) error {
	return s.MapPolygons(func(p bsp.Polygon) (bsp.Polygon, error) {
		return p.MapVertices(func(v bsp.Vertex) bsp.Vertex {
			return bsp.NewVertex(v.Pos.Add(disp), v.Normal)
		})
	})
}

// Rotate rotates every vertex position (and non-zero normal) in s by
// angleDeg degrees around axis, in place, grounded on core.py's rotate.
// A zero-length axis leaves s unchanged, matching Vector.Unit's
// zero-vector convention.
func Rotate(s solid.Solid, axis bsp.Vector, angleDeg float64) error {
	ax := axis.Unit()
	if ax == (bsp.Vector{}) {
		return nil
	}
	cosAngle := math.Cos(math.Pi * angleDeg / 180)
	sinAngle := math.Sin(math.Pi * angleDeg / 180)

	rotate := func(v bsp.Vector) bsp.Vector {
		vA := v.Dot(ax)
		vPerp := v.Sub(ax.Scale(vA))
		vPerpLen := vPerp.Length()
		if vPerpLen == 0 {
			// v is parallel to the rotation axis; rotating it is a no-op.
			return v
		}
		u1 := vPerp.Unit()
		u2 := u1.Cross(ax)
		return ax.Scale(vA).Add(u1.Scale(vPerpLen * cosAngle)).Add(u2.Scale(vPerpLen * sinAngle))
	}

	return s.MapPolygons(func(p bsp.Polygon) (bsp.Polygon, error) {
		return p.MapVertices(func(v bsp.Vertex) bsp.Vertex {
			normal := v.Normal
			if normal.Length() > 0 {
				normal = rotate(normal)
			}
			return bsp.NewVertex(rotate(v.Pos), normal)
		})
	})
}

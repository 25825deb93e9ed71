// Package primitive builds polygon meshes for basic solids (cube, sphere,
// cylinder, cone) that feed solid.FromPolygons. These are pure tessellation
// routines: they depend only on bsp's Vector/Vertex/Polygon types, never on
// the BSP tree itself (spec.md §1 lists them as out-of-scope collaborators).
package primitive

import (
	"math"

	"github.com/bloodmagesoftware/solidify/bsp"
	"github.com/bloodmagesoftware/solidify/solid"
)

// CubeParams configures Cube. Cube applies WithDefaults to its argument,
// so the zero value yields the default cube of DefaultCubeParams().
type CubeParams struct {
	Center bsp.Vector
	Radius bsp.Vector
}

// DefaultCubeParams returns the default [-1,1]^3 cube centered at the
// origin, matching core.py's CSG.cube().
func DefaultCubeParams() CubeParams {
	return CubeParams{Center: bsp.Vector{}, Radius: bsp.NewVector(1, 1, 1)}
}

// WithDefaults replaces an all-zero Radius with (1,1,1), so callers that
// only want to override Center don't have to restate Radius. A Radius
// with some but not all components zero is left as it is.
func (p CubeParams) WithDefaults() CubeParams {
	if p.Radius == (bsp.Vector{}) {
		p.Radius = bsp.NewVector(1, 1, 1)
	}
	return p
}

var cubeFaces = []struct {
	indices [4]int
	normal  bsp.Vector
}{
	{[4]int{0, 4, 6, 2}, bsp.NewVector(-1, 0, 0)},
	{[4]int{1, 3, 7, 5}, bsp.NewVector(1, 0, 0)},
	{[4]int{0, 1, 5, 4}, bsp.NewVector(0, -1, 0)},
	{[4]int{2, 6, 7, 3}, bsp.NewVector(0, 1, 0)},
	{[4]int{0, 2, 3, 1}, bsp.NewVector(0, 0, -1)},
	{[4]int{4, 5, 7, 6}, bsp.NewVector(0, 0, 1)},
}

// Cube builds an axis-aligned solid cuboid, grounded on core.py's
// CSG.cube(): eight corners addressed by the low 3 bits of an index
// (bit 0 = x, bit 1 = y, bit 2 = z), six quad faces with outward normals.
func Cube(params CubeParams) (solid.Solid, error) {
	params = params.WithDefaults()
	c, r := params.Center, params.Radius

	corner := func(i int) bsp.Vector {
		sign := func(bit int) float64 {
			if i&bit != 0 {
				return 1
			}
			return -1
		}
		return bsp.NewVector(
			c.X+r.X*sign(1),
			c.Y+r.Y*sign(2),
			c.Z+r.Z*sign(4),
		)
	}

	polys := make([]bsp.Polygon, 0, len(cubeFaces))
	for _, face := range cubeFaces {
		vertices := make([]bsp.Vertex, 4)
		for i, idx := range face.indices {
			vertices[i] = bsp.NewVertex(corner(idx), face.normal)
		}
		poly, err := bsp.NewPolygon(vertices)
		if err != nil {
			return solid.Solid{}, err
		}
		polys = append(polys, poly)
	}
	return solid.FromPolygons(polys), nil
}

// SphereParams configures Sphere.
type SphereParams struct {
	Center bsp.Vector
	Radius float64
	Slices int
	Stacks int
}

// DefaultSphereParams returns a unit sphere at the origin with 16 slices
// and 8 stacks, matching core.py's CSG.sphere() defaults.
func DefaultSphereParams() SphereParams {
	return SphereParams{Radius: 1, Slices: 16, Stacks: 8}
}

func (p SphereParams) withDefaults() SphereParams {
	if p.Radius == 0 {
		p.Radius = 1
	}
	if p.Slices == 0 {
		p.Slices = 16
	}
	if p.Stacks == 0 {
		p.Stacks = 8
	}
	return p
}

// Sphere builds a UV sphere, grounded on core.py's CSG.sphere(): each
// (slice, stack) cell emits one polygon, triangular at the two poles and
// quadrilateral elsewhere, with the vertex position doubling as its
// outward normal direction.
func Sphere(params SphereParams) (solid.Solid, error) {
	params = params.withDefaults()
	c, r := params.Center, params.Radius
	dTheta := 2 * math.Pi / float64(params.Slices)
	dPhi := math.Pi / float64(params.Stacks)

	vertexAt := func(theta, phi float64) bsp.Vertex {
		dir := bsp.NewVector(
			math.Cos(theta)*math.Sin(phi),
			math.Cos(phi),
			math.Sin(theta)*math.Sin(phi),
		)
		return bsp.NewVertex(c.Add(dir.Scale(r)), dir)
	}

	var polys []bsp.Polygon
	for i := 0; i < params.Slices; i++ {
		for j := 0; j < params.Stacks; j++ {
			var vertices []bsp.Vertex
			i1 := (i + 1) % params.Slices
			j1 := j + 1

			vertices = append(vertices, vertexAt(float64(i)*dTheta, float64(j)*dPhi))
			if j > 0 {
				vertices = append(vertices, vertexAt(float64(i1)*dTheta, float64(j)*dPhi))
			}
			if j < params.Stacks-1 {
				vertices = append(vertices, vertexAt(float64(i1)*dTheta, float64(j1)*dPhi))
			}
			vertices = append(vertices, vertexAt(float64(i)*dTheta, float64(j1)*dPhi))

			poly, err := bsp.NewPolygon(vertices)
			if err != nil {
				return solid.Solid{}, err
			}
			polys = append(polys, poly)
		}
	}
	return solid.FromPolygons(polys), nil
}

// CylinderParams configures Cylinder.
type CylinderParams struct {
	Start, End bsp.Vector
	Radius     float64
	Slices     int
}

// DefaultCylinderParams returns a unit-radius cylinder from (0,-1,0) to
// (0,1,0) with 16 slices, matching core.py's CSG.cylinder() defaults.
func DefaultCylinderParams() CylinderParams {
	return CylinderParams{
		Start:  bsp.NewVector(0, -1, 0),
		End:    bsp.NewVector(0, 1, 0),
		Radius: 1,
		Slices: 16,
	}
}

func (p CylinderParams) withDefaults() CylinderParams {
	d := DefaultCylinderParams()
	if p.Start == (bsp.Vector{}) && p.End == (bsp.Vector{}) {
		p.Start, p.End = d.Start, d.End
	}
	if p.Radius == 0 {
		p.Radius = d.Radius
	}
	if p.Slices == 0 {
		p.Slices = d.Slices
	}
	return p
}

// axes builds an orthonormal (axisX, axisY, axisZ) frame with axisZ along
// ray, grounded on core.py's cylinder/cone axis setup: pick whichever of
// the X or Y world axis is least parallel to ray to seed the cross
// product, avoiding a degenerate (near-zero-length) axisX.
func axes(ray bsp.Vector) (axisX, axisY, axisZ bsp.Vector) {
	axisZ = ray.Unit()
	isY := math.Abs(axisZ.Y) > 0.5
	seed := bsp.NewVector(boolFloat(isY), boolFloat(!isY), 0)
	axisX = seed.Cross(axisZ).Unit()
	axisY = axisX.Cross(axisZ).Unit()
	return
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Cylinder builds a capped cylinder, grounded on core.py's
// CSG.cylinder(): a start cap fan, a ring of side quads, an end cap fan.
func Cylinder(params CylinderParams) (solid.Solid, error) {
	params = params.withDefaults()
	s, e, r := params.Start, params.End, params.Radius
	ray := e.Sub(s)
	axisX, axisY, axisZ := axes(ray)

	startNormal := axisZ.Negate()
	start := bsp.NewVertex(s, startNormal)
	end := bsp.NewVertex(e, axisZ)

	point := func(stack, angle, normalBlend float64) bsp.Vertex {
		out := axisX.Scale(math.Cos(angle)).Add(axisY.Scale(math.Sin(angle)))
		pos := s.Add(ray.Scale(stack)).Add(out.Scale(r))
		normal := out.Scale(1 - math.Abs(normalBlend)).Add(axisZ.Scale(normalBlend))
		return bsp.NewVertex(pos, normal)
	}

	dt := 2 * math.Pi / float64(params.Slices)
	var polys []bsp.Polygon
	appendPoly := func(vertices []bsp.Vertex) error {
		poly, err := bsp.NewPolygon(vertices)
		if err != nil {
			return err
		}
		polys = append(polys, poly)
		return nil
	}

	for i := 0; i < params.Slices; i++ {
		t0 := float64(i) * dt
		i1 := (i + 1) % params.Slices
		t1 := float64(i1) * dt

		if err := appendPoly([]bsp.Vertex{start, point(0, t0, -1), point(0, t1, -1)}); err != nil {
			return solid.Solid{}, err
		}
		if err := appendPoly([]bsp.Vertex{point(0, t1, 0), point(0, t0, 0), point(1, t0, 0), point(1, t1, 0)}); err != nil {
			return solid.Solid{}, err
		}
		if err := appendPoly([]bsp.Vertex{end, point(1, t1, 1), point(1, t0, 1)}); err != nil {
			return solid.Solid{}, err
		}
	}
	return solid.FromPolygons(polys), nil
}

// ConeParams configures Cone.
type ConeParams struct {
	Start, End bsp.Vector
	Radius     float64
	Slices     int
}

// DefaultConeParams returns a unit-radius cone from (0,-1,0) to (0,1,0)
// with 16 slices, matching core.py's CSG.cone() defaults.
func DefaultConeParams() ConeParams {
	return ConeParams{
		Start:  bsp.NewVector(0, -1, 0),
		End:    bsp.NewVector(0, 1, 0),
		Radius: 1,
		Slices: 16,
	}
}

func (p ConeParams) withDefaults() ConeParams {
	d := DefaultConeParams()
	if p.Start == (bsp.Vector{}) && p.End == (bsp.Vector{}) {
		p.Start, p.End = d.Start, d.End
	}
	if p.Radius == 0 {
		p.Radius = d.Radius
	}
	if p.Slices == 0 {
		p.Slices = d.Slices
	}
	return p
}

// Cone builds a cone solid, grounded on core.py's CSG.cone(): a base-disk
// fan plus side triangles whose normal accounts for the cone's taper
// angle.
func Cone(params ConeParams) (solid.Solid, error) {
	params = params.withDefaults()
	s, e, r := params.Start, params.End, params.Radius
	ray := e.Sub(s)
	axisX, axisY, axisZ := axes(ray)

	startNormal := axisZ.Negate()
	start := bsp.NewVertex(s, startNormal)

	taperAngle := math.Atan2(r, ray.Length())
	sinTaper, cosTaper := math.Sin(taperAngle), math.Cos(taperAngle)

	point := func(angle float64) (pos, normal bsp.Vector) {
		out := axisX.Scale(math.Cos(angle)).Add(axisY.Scale(math.Sin(angle)))
		pos = s.Add(out.Scale(r))
		normal = out.Scale(cosTaper).Add(axisZ.Scale(sinTaper))
		return
	}

	dt := 2 * math.Pi / float64(params.Slices)
	var polys []bsp.Polygon
	for i := 0; i < params.Slices; i++ {
		t0 := float64(i) * dt
		i1 := (i + 1) % params.Slices
		t1 := float64(i1) * dt

		p0, n0 := point(t0)
		p1, n1 := point(t1)
		nAvg := n0.Add(n1).Scale(0.5)

		base, err := bsp.NewPolygon([]bsp.Vertex{
			start,
			bsp.NewVertex(p0, startNormal),
			bsp.NewVertex(p1, startNormal),
		})
		if err != nil {
			return solid.Solid{}, err
		}
		side, err := bsp.NewPolygon([]bsp.Vertex{
			bsp.NewVertex(p0, n0),
			bsp.NewVertex(e, nAvg),
			bsp.NewVertex(p1, n1),
		})
		if err != nil {
			return solid.Solid{}, err
		}
		polys = append(polys, base, side)
	}
	return solid.FromPolygons(polys), nil
}

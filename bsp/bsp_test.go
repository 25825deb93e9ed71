package bsp

import "testing"

// quad builds a planar quad from four vertices with the given outward
// normal, used throughout these tests to assemble simple cube-like solids
// without depending on the primitive package (which itself depends on
// solid, which depends on bsp — a cycle this test avoids).
func quad(normal Vector, positions ...Vector) Polygon {
	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = NewVertex(p, normal)
	}
	poly, err := NewPolygon(vertices)
	if err != nil {
		panic(err)
	}
	return poly
}

// cubeAt returns the six faces of an axis-aligned cube centered on center
// with the given half-extent radius, outward-facing winding.
func cubeAt(center Vector, radius float64) []Polygon {
	c, r := center, radius
	corner := func(sx, sy, sz float64) Vector {
		return NewVector(c.X+r*sx, c.Y+r*sy, c.Z+r*sz)
	}
	return []Polygon{
		quad(NewVector(-1, 0, 0), corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)),
		quad(NewVector(1, 0, 0), corner(1, -1, 1), corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1)),
		quad(NewVector(0, -1, 0), corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)),
		quad(NewVector(0, 1, 0), corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1), corner(-1, 1, -1)),
		quad(NewVector(0, 0, -1), corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1), corner(1, -1, -1)),
		quad(NewVector(0, 0, 1), corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)),
	}
}

// unitCube returns the six faces of an axis-aligned cube spanning
// [-1,1]^3, outward-facing winding.
func unitCube() []Polygon {
	return cubeAt(Vector{}, 1)
}

func TestNewEmptyTree(t *testing.T) {
	n := New(nil)
	if len(n.AllPolygons()) != 0 {
		t.Errorf("empty tree should have no polygons")
	}
	polys := unitCube()
	if got := n.ClipPolygons(polys); len(got) != len(polys) {
		t.Errorf("ClipPolygons against an empty node should pass polys through unchanged, got %d want %d", len(got), len(polys))
	}
}

func TestBuildAllPolygonsRoundTrip(t *testing.T) {
	polys := unitCube()
	n := New(polys)

	all := n.AllPolygons()
	if len(all) != len(polys) {
		t.Fatalf("AllPolygons() returned %d polygons, want %d", len(all), len(polys))
	}
}

func TestBuildPlaneMembership(t *testing.T) {
	// Spec §8 property 7: every polygon stored in a node's own polygons
	// list satisfies |n·v - w| < EPS for that node's plane.
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || n.plane == nil {
			return
		}
		for _, p := range n.polygons {
			for _, v := range p.Vertices {
				d := n.plane.Normal.Dot(v.Pos) - n.plane.W
				if d < 0 {
					d = -d
				}
				if d >= Epsilon {
					t.Errorf("vertex %v is %v from its node's plane, want < %v", v.Pos, d, Epsilon)
				}
			}
		}
		walk(n.front)
		walk(n.back)
	}
	walk(New(unitCube()))
}

func TestInvertIsInvolution(t *testing.T) {
	polys := unitCube()
	n := New(polys)

	before := n.AllPolygons()
	n.Invert()
	n.Invert()
	after := n.AllPolygons()

	if len(before) != len(after) {
		t.Fatalf("polygon count changed after double invert: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if len(before[i].Vertices) != len(after[i].Vertices) {
			t.Fatalf("polygon %d vertex count changed after double invert", i)
		}
		for j, v := range before[i].Vertices {
			if v.Pos != after[i].Vertices[j].Pos {
				t.Errorf("polygon %d vertex %d position changed after double invert: %v vs %v", i, j, v.Pos, after[i].Vertices[j].Pos)
			}
			if v.Normal != after[i].Vertices[j].Normal {
				t.Errorf("polygon %d vertex %d normal changed after double invert: %v vs %v", i, j, v.Normal, after[i].Vertices[j].Normal)
			}
		}
	}
}

func TestInvertFlipsSplittingPlane(t *testing.T) {
	n := New(unitCube())
	plane := *n.plane
	n.Invert()
	if n.plane.Normal != plane.Normal.Negate() {
		t.Errorf("root plane normal after invert = %v, want %v", n.plane.Normal, plane.Normal.Negate())
	}
	if !almostEqual(n.plane.W, -plane.W) {
		t.Errorf("root plane W after invert = %v, want %v", n.plane.W, -plane.W)
	}
}

func TestClipPolygonsDiscardsInterior(t *testing.T) {
	// A small square at z=0 lies strictly inside the cube, so clipping it
	// against the cube tree should return nothing.
	cube := New(unitCube())

	interior := quad(NewVector(0, 0, 1), NewVector(-0.1, -0.1, 0), NewVector(0.1, -0.1, 0), NewVector(0.1, 0.1, 0), NewVector(-0.1, 0.1, 0))
	clipped := cube.ClipPolygons([]Polygon{interior})
	if len(clipped) != 0 {
		t.Errorf("ClipPolygons should discard a polygon strictly inside the solid, got %d fragments", len(clipped))
	}
}

func TestClipPolygonsKeepsExterior(t *testing.T) {
	cube := New(unitCube())

	exterior := quad(NewVector(0, 0, 1), NewVector(5, 5, 5), NewVector(6, 5, 5), NewVector(6, 6, 5), NewVector(5, 6, 5))
	clipped := cube.ClipPolygons([]Polygon{exterior})
	if len(clipped) != 1 {
		t.Fatalf("ClipPolygons should keep a polygon entirely outside the solid, got %d fragments", len(clipped))
	}
}

func TestClipToRemovesInteriorGeometry(t *testing.T) {
	a := New(unitCube())
	// b is a small closed cube fully inside a; a's own boundary faces lie
	// entirely outside b, so clipping a against b discards nothing (it's
	// b clipped against a that empties out). b's six planes still split
	// a's faces as they pass through the tree: the four faces parallel to
	// each cut are sliced into strips, so a's 6 faces come back as 18
	// fragments covering the same surface.
	b := New(cubeAt(Vector{}, 0.1))

	a.ClipTo(b)
	if len(a.AllPolygons()) != 18 {
		t.Errorf("ClipTo(b) with b strictly inside a should keep all of a's surface as 18 split fragments, got %d", len(a.AllPolygons()))
	}

	// b's faces, on the other hand, lie entirely inside a, so clipping b
	// against a should remove everything.
	b.ClipTo(New(unitCube()))
	if len(b.AllPolygons()) != 0 {
		t.Errorf("ClipTo(a) with b strictly inside a should empty b, got %d left", len(b.AllPolygons()))
	}
}

func TestCloneIndependence(t *testing.T) {
	n := New(unitCube())
	clone := n.Clone()

	clone.Invert()

	originalPlane := *n.plane
	if clone.plane.Normal == originalPlane.Normal {
		t.Fatalf("test setup: clone invert should change its root plane normal")
	}
	if n.plane.Normal != originalPlane.Normal {
		t.Errorf("cloning and mutating the clone affected the original tree's root plane")
	}
}

package transform

import (
	"math"
	"testing"

	"github.com/bloodmagesoftware/solidify/bsp"
	"github.com/bloodmagesoftware/solidify/solid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vectorAlmostEqual(a, b bsp.Vector) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func singleTriangleSolid(t *testing.T) solid.Solid {
	t.Helper()
	poly, err := bsp.NewPolygon([]bsp.Vertex{
		bsp.NewVertex(bsp.NewVector(0, 0, 0), bsp.NewVector(0, 0, 1)),
		bsp.NewVertex(bsp.NewVector(1, 0, 0), bsp.NewVector(0, 0, 1)),
		bsp.NewVertex(bsp.NewVector(0, 1, 0), bsp.NewVector(0, 0, 1)),
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return solid.FromPolygons([]bsp.Polygon{poly})
}

func TestTranslateShiftsPositionsNotNormals(t *testing.T) {
	s := singleTriangleSolid(t)
	disp := bsp.NewVector(1, 2, 3)

	if err := Translate(s, disp); err != nil {
		t.Fatalf("Translate: %v", err)
	}

	polys := s.ToPolygons()
	want := []bsp.Vector{
		bsp.NewVector(1, 2, 3),
		bsp.NewVector(2, 2, 3),
		bsp.NewVector(1, 3, 3),
	}
	for i, v := range polys[0].Vertices {
		if !vectorAlmostEqual(v.Pos, want[i]) {
			t.Errorf("vertex %d position = %v, want %v", i, v.Pos, want[i])
		}
		if !vectorAlmostEqual(v.Normal, bsp.NewVector(0, 0, 1)) {
			t.Errorf("vertex %d normal = %v, want unchanged (0,0,1)", i, v.Normal)
		}
	}
}

func TestRotate90DegreesAroundZ(t *testing.T) {
	s := singleTriangleSolid(t)

	if err := Rotate(s, bsp.NewVector(0, 0, 1), 90); err != nil {
		t.Fatalf("Rotate: %v", err)
	}

	// The rotation basis is u1 (perpendicular component) and u2 =
	// u1.Cross(axis), so a +90deg turn around +Z carries +X to -Y: a
	// clockwise turn seen from +Z, the opposite sense of the right-hand
	// rule.
	got := s.ToPolygons()[0].Vertices[1].Pos // was (1,0,0)
	want := bsp.NewVector(0, -1, 0)
	if !vectorAlmostEqual(got, want) {
		t.Errorf("rotated (1,0,0) by 90deg around Z = %v, want %v", got, want)
	}
}

func TestRotateZeroAxisIsNoOp(t *testing.T) {
	s := singleTriangleSolid(t)
	before := s.ToPolygons()[0].Clone()

	if err := Rotate(s, bsp.Vector{}, 45); err != nil {
		t.Fatalf("Rotate: %v", err)
	}

	after := s.ToPolygons()[0]
	for i, v := range before.Vertices {
		if v.Pos != after.Vertices[i].Pos {
			t.Errorf("vertex %d moved despite zero-length rotation axis: %v -> %v", i, v.Pos, after.Vertices[i].Pos)
		}
	}
}

func TestRotateLeavesZeroNormalAlone(t *testing.T) {
	poly, err := bsp.NewPolygon([]bsp.Vertex{
		bsp.NewVertex(bsp.NewVector(0, 0, 0), bsp.Vector{}),
		bsp.NewVertex(bsp.NewVector(1, 0, 0), bsp.Vector{}),
		bsp.NewVertex(bsp.NewVector(0, 1, 0), bsp.Vector{}),
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	s := solid.FromPolygons([]bsp.Polygon{poly})

	if err := Rotate(s, bsp.NewVector(0, 0, 1), 90); err != nil {
		t.Fatalf("Rotate: %v", err)
	}

	for _, v := range s.ToPolygons()[0].Vertices {
		if v.Normal != (bsp.Vector{}) {
			t.Errorf("zero normal was rotated into %v", v.Normal)
		}
	}
}

func TestRotateAroundAxisParallelVertexIsNoOp(t *testing.T) {
	poly, err := bsp.NewPolygon([]bsp.Vertex{
		bsp.NewVertex(bsp.NewVector(0, 0, 1), bsp.Vector{}),
		bsp.NewVertex(bsp.NewVector(1, 0, 1), bsp.Vector{}),
		bsp.NewVertex(bsp.NewVector(0, 1, 1), bsp.Vector{}),
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	s := solid.FromPolygons([]bsp.Polygon{poly})

	// Rotating the vertex (0,0,1) around the Z axis should leave it fixed
	// (it's exactly on the axis, so its perpendicular component is zero).
	if err := Rotate(s, bsp.NewVector(0, 0, 1), 37); err != nil {
		t.Fatalf("Rotate: %v", err)
	}

	got := s.ToPolygons()[0].Vertices[0].Pos
	if !vectorAlmostEqual(got, bsp.NewVector(0, 0, 1)) {
		t.Errorf("vertex on the rotation axis moved to %v", got)
	}
}

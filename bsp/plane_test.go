package bsp

import (
	"errors"
	"testing"
)

func TestNewPlaneFromPoints(t *testing.T) {
	t.Run("unit XY plane", func(t *testing.T) {
		p, err := NewPlaneFromPoints(
			NewVector(0, 0, 0),
			NewVector(1, 0, 0),
			NewVector(0, 1, 0),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !vectorAlmostEqual(p.Normal, NewVector(0, 0, 1)) {
			t.Errorf("Normal = %v, want (0,0,1)", p.Normal)
		}
		if !almostEqual(p.W, 0) {
			t.Errorf("W = %v, want 0", p.W)
		}
	})

	t.Run("collinear points are degenerate", func(t *testing.T) {
		_, err := NewPlaneFromPoints(
			NewVector(0, 0, 0),
			NewVector(1, 0, 0),
			NewVector(2, 0, 0),
		)
		if !errors.Is(err, ErrDegeneratePlane) {
			t.Errorf("err = %v, want ErrDegeneratePlane", err)
		}
	})

	t.Run("repeated points are degenerate", func(t *testing.T) {
		_, err := NewPlaneFromPoints(
			NewVector(1, 1, 1),
			NewVector(1, 1, 1),
			NewVector(0, 1, 0),
		)
		if !errors.Is(err, ErrDegeneratePlane) {
			t.Errorf("err = %v, want ErrDegeneratePlane", err)
		}
	})
}

func TestPlaneFlip(t *testing.T) {
	p, err := NewPlaneFromPoints(NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flipped := p.Flip()

	if !vectorAlmostEqual(flipped.Normal, p.Normal.Negate()) {
		t.Errorf("Flip().Normal = %v, want %v", flipped.Normal, p.Normal.Negate())
	}
	if !almostEqual(flipped.W, -p.W) {
		t.Errorf("Flip().W = %v, want %v", flipped.W, -p.W)
	}
	if flipped.SameOrientation(p) {
		t.Error("flipped plane should not share orientation with the original")
	}
}

func TestPlaneClassifyPoint(t *testing.T) {
	p, err := NewPlaneFromPoints(NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testCases := []struct {
		Name     string
		Point    Vector
		Expected classification
	}{
		{"on plane", NewVector(5, 5, 0), coplanar},
		{"within epsilon", NewVector(5, 5, Epsilon / 2), coplanar},
		{"in front", NewVector(0, 0, 1), front},
		{"behind", NewVector(0, 0, -1), back},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := p.classifyPoint(tc.Point); got != tc.Expected {
				t.Errorf("classifyPoint(%v) = %v, want %v", tc.Point, got, tc.Expected)
			}
		})
	}
}

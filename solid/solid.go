// Package solid implements the public Boolean-operation API (union,
// subtract, intersect, inverse) on top of the bsp package's tree
// mechanics, following the non-negotiable invert/clipTo sequences from
// core.py (§4.4 of the specification).
package solid

import "github.com/bloodmagesoftware/solidify/bsp"

// Solid is a closed polyhedral set represented by its boundary polygon
// list. Solids own their polygon slice by value; Boolean operations never
// mutate their operands (§5).
type Solid struct {
	polygons []bsp.Polygon
}

// FromPolygons wraps polys in a new Solid. The slice is not copied here;
// callers that still hold a reference to polys and later mutate it will
// observe those mutations through the Solid. Boolean operations always
// clone their operands before touching anything, so this is safe for the
// normal construct-then-operate flow.
func FromPolygons(polys []bsp.Polygon) Solid {
	return Solid{polygons: polys}
}

// ToPolygons returns the Solid's polygon list.
func (s Solid) ToPolygons() []bsp.Polygon {
	return s.polygons
}

// MapPolygons replaces every polygon in s with f(polygon), mutating s's
// backing array in place and stopping at the first error. Used by the
// transform package to apply per-vertex affine transforms without
// reaching into bsp internals (§6: transforms mutate a Solid's polygons
// in place).
func (s Solid) MapPolygons(f func(bsp.Polygon) (bsp.Polygon, error)) error {
	for i, p := range s.polygons {
		np, err := f(p)
		if err != nil {
			return err
		}
		s.polygons[i] = np
	}
	return nil
}

// Clone returns a Solid with an independent copy of every polygon.
func (s Solid) Clone() Solid {
	polys := make([]bsp.Polygon, len(s.polygons))
	for i, p := range s.polygons {
		polys[i] = p.Clone()
	}
	return Solid{polygons: polys}
}

// Inverse returns a new Solid with solid and empty space switched. No BSP
// tree is involved (§4.4); this solid is not modified.
func (s Solid) Inverse() Solid {
	clone := s.Clone()
	for i, p := range clone.polygons {
		clone.polygons[i] = p.Flip()
	}
	return clone
}

// Union returns a new Solid representing the space in either s or other.
// Neither operand is modified.
func (s Solid) Union(other Solid) Solid {
	a := bsp.New(s.Clone().polygons)
	b := bsp.New(other.Clone().polygons)

	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())

	return FromPolygons(a.AllPolygons())
}

// Subtract returns a new Solid representing the space in s but not in
// other. Neither operand is modified. An empty s yields the empty solid:
// the invert/clipTo sequence below would otherwise turn ∅ − B into ~B,
// since clipping against a plane-less BSP node is a no-op.
func (s Solid) Subtract(other Solid) Solid {
	if len(s.polygons) == 0 {
		return FromPolygons(nil)
	}

	a := bsp.New(s.Clone().polygons)
	b := bsp.New(other.Clone().polygons)

	a.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())
	a.Invert()

	return FromPolygons(a.AllPolygons())
}

// Intersect returns a new Solid representing the space in both s and
// other. Neither operand is modified. An empty operand on either side
// has no volume to intersect, so the result is empty (§7, §8.2) — the
// invert/clipTo sequence below can't express that itself, since clipping
// against a plane-less (empty) BSP node is a no-op rather than "clip
// everything away".
func (s Solid) Intersect(other Solid) Solid {
	if len(s.polygons) == 0 || len(other.polygons) == 0 {
		return FromPolygons(nil)
	}

	a := bsp.New(s.Clone().polygons)
	b := bsp.New(other.Clone().polygons)

	a.Invert()
	b.ClipTo(a)
	b.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	a.Build(b.AllPolygons())
	a.Invert()

	return FromPolygons(a.AllPolygons())
}

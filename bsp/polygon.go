package bsp

// ErrDegeneratePolygon is returned by NewPolygon when fewer than three
// vertices are supplied, or when the plane through its first three
// vertices is degenerate (§7's REDESIGN FLAG: fail fast instead of
// propagating a NaN plane).
var ErrDegeneratePolygon = ErrDegeneratePlane

// Polygon is an ordered, coplanar sequence of at least three vertices plus
// the plane derived from its first three vertex positions (§3). The
// caller is responsible for keeping every vertex within Epsilon of the
// plane; the splitter does not re-validate this after producing a
// polygon.
type Polygon struct {
	Vertices []Vertex
	Plane    Plane
}

// NewPolygon builds a Polygon from at least three vertices, deriving its
// plane from the first three vertex positions. It fails with
// ErrDegeneratePolygon rather than silently carrying a NaN plane forward.
func NewPolygon(vertices []Vertex) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrDegeneratePolygon
	}
	plane, err := NewPlaneFromPoints(vertices[0].Pos, vertices[1].Pos, vertices[2].Pos)
	if err != nil {
		return Polygon{}, err
	}
	return Polygon{Vertices: vertices, Plane: plane}, nil
}

// newPolygonOnPlane builds a Polygon from vertices already known to lie on
// plane, skipping plane re-derivation. Used internally by the splitter,
// which produces front/back fragments that are coplanar with the parent
// polygon's plane by construction (§E of SPEC_FULL.md).
func newPolygonOnPlane(vertices []Vertex, plane Plane) Polygon {
	return Polygon{Vertices: vertices, Plane: plane}
}

// Flip reverses vertex order and flips every vertex and the plane,
// returning a new Polygon with the opposite winding and orientation.
func (p Polygon) Flip() Polygon {
	n := len(p.Vertices)
	flipped := make([]Vertex, n)
	for i, v := range p.Vertices {
		flipped[n-1-i] = v.Flip()
	}
	return Polygon{Vertices: flipped, Plane: p.Plane.Flip()}
}

// MapVertices returns a new Polygon with f applied to every vertex and
// its plane recomputed from the transformed first three positions.
// Affine transforms (translate, rotate) must go through this rather than
// editing Vertices directly, or the cached Plane drifts out of sync with
// the vertex positions it's supposed to describe (§3's polygon
// invariant).
func (p Polygon) MapVertices(f func(Vertex) Vertex) (Polygon, error) {
	vertices := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = f(v)
	}
	return NewPolygon(vertices)
}

// Clone returns a deep copy of p: an independent vertex slice so that
// flipping or mutating the clone never affects p.
func (p Polygon) Clone() Polygon {
	vertices := make([]Vertex, len(p.Vertices))
	copy(vertices, p.Vertices)
	return Polygon{Vertices: vertices, Plane: p.Plane}
}

// splitResult holds the four disjoint polygon buckets produced by
// splitPolygon (§4.2).
type splitResult struct {
	coplanarFront []Polygon
	coplanarBack  []Polygon
	front         []Polygon
	back          []Polygon
}

// splitPolygon classifies poly against plane and appends it (or the two
// fragments produced by splitting it) into the appropriate buckets of
// result. This is the six-line primitive §4.2 describes: classify every
// vertex, OR the tags together, dispatch on the combined tag.
func splitPolygon(plane Plane, poly Polygon, result *splitResult) {
	types := make([]classification, len(poly.Vertices))
	var polyType classification
	for i, v := range poly.Vertices {
		t := plane.classifyPoint(v.Pos)
		types[i] = t
		polyType |= t
	}

	switch polyType {
	case coplanar:
		if plane.SameOrientation(poly.Plane) {
			result.coplanarFront = append(result.coplanarFront, poly)
		} else {
			result.coplanarBack = append(result.coplanarBack, poly)
		}
	case front:
		result.front = append(result.front, poly)
	case back:
		result.back = append(result.back, poly)
	default: // spanning
		var frontVerts, backVerts []Vertex
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := types[i], types[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]

			switch {
			case ti != back && ti != front: // coplanar: goes to both, back gets the clone
				frontVerts = append(frontVerts, vi)
				backVerts = append(backVerts, vi.Clone())
			case ti != back:
				frontVerts = append(frontVerts, vi)
			case ti != front:
				backVerts = append(backVerts, vi)
			}

			if (ti|tj) == spanning {
				s := -plane.signedDistance(vi.Pos) / plane.Normal.Dot(vj.Pos.Sub(vi.Pos))
				intersect := Interpolate(vi, vj, s)
				frontVerts = append(frontVerts, intersect)
				backVerts = append(backVerts, intersect.Clone())
			}
		}
		if len(frontVerts) >= 3 {
			result.front = append(result.front, newPolygonOnPlane(frontVerts, poly.Plane))
		}
		if len(backVerts) >= 3 {
			result.back = append(result.back, newPolygonOnPlane(backVerts, poly.Plane))
		}
	}
}

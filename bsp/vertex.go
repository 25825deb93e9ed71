package bsp

// Vertex is a point on a polygon's boundary together with its shading
// normal. A zero-value Normal means "no normal supplied" (§3); Interpolate
// does not renormalize, matching core.py's geom.Vertex.interpolate.
type Vertex struct {
	Pos    Vector
	Normal Vector
}

// NewVertex constructs a Vertex from a position and normal.
func NewVertex(pos, normal Vector) Vertex {
	return Vertex{Pos: pos, Normal: normal}
}

// Flip negates the vertex's normal, leaving its position untouched.
func (v Vertex) Flip() Vertex {
	return Vertex{Pos: v.Pos, Normal: v.Normal.Negate()}
}

// Clone returns an independent copy of v. Vector fields are plain structs
// copied by value, so this is here mainly for readability at call sites
// that care about "no aliasing" (§4.2, §9) rather than because Go needs
// help copying the struct.
func (v Vertex) Clone() Vertex {
	return v
}

// Interpolate returns the vertex linearly interpolated between a and b at
// parameter t ∈ [0,1]. Position and normal are interpolated independently;
// the resulting normal is not renormalized (§4.1).
func Interpolate(a, b Vertex, t float64) Vertex {
	return Vertex{
		Pos:    a.Pos.Lerp(b.Pos, t),
		Normal: a.Normal.Lerp(b.Normal, t),
	}
}

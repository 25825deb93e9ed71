package bsp

// Node is a node of the BSP tree (§3, §4.3). A Node with no Plane is
// empty: no geometry, no children, no coplanar polygons. Nodes own their
// children and polygons exclusively; there is no shared or cyclic
// structure anywhere in the tree.
type Node struct {
	plane    *Plane
	polygons []Polygon
	front    *Node
	back     *Node
}

// New builds a BSP tree from polys. An empty slice produces an empty leaf
// node (no plane, no children) matching §7's empty-input contract.
func New(polys []Polygon) *Node {
	n := &Node{}
	if len(polys) > 0 {
		n.Build(polys)
	}
	return n
}

// Invert recursively complements the solid this subtree represents: every
// polygon is flipped, the splitting plane is flipped, and front/back are
// swapped. Runs in O(tree size) (§4.3).
func (n *Node) Invert() {
	if n == nil || n.plane == nil {
		return
	}
	for i := range n.polygons {
		n.polygons[i] = n.polygons[i].Flip()
	}
	flipped := n.plane.Flip()
	n.plane = &flipped
	n.front, n.back = n.back, n.front
	n.front.Invert()
	n.back.Invert()
}

// ClipPolygons returns the portions of polys that lie outside the solid
// represented by n (§4.3). If n is empty, polys is returned unchanged.
func (n *Node) ClipPolygons(polys []Polygon) []Polygon {
	if n == nil || n.plane == nil {
		return polys
	}

	var result splitResult
	for _, p := range polys {
		splitPolygon(*n.plane, p, &result)
	}
	front := append(result.coplanarFront, result.front...)
	back := append(result.coplanarBack, result.back...)

	if n.front != nil {
		front = n.front.ClipPolygons(front)
	}
	if n.back != nil {
		back = n.back.ClipPolygons(back)
	} else {
		back = nil // polygons inside the solid are discarded
	}

	return append(front, back...)
}

// ClipTo removes from n everything that lies inside other (§4.3).
func (n *Node) ClipTo(other *Node) {
	if n == nil || n.plane == nil {
		return
	}
	n.polygons = other.ClipPolygons(n.polygons)
	n.front.ClipTo(other)
	n.back.ClipTo(other)
}

// AllPolygons returns every polygon stored anywhere in the subtree rooted
// at n, in a stable traversal order (this node's own polygons, then
// front, then back).
func (n *Node) AllPolygons() []Polygon {
	if n == nil || n.plane == nil {
		return nil
	}
	all := make([]Polygon, 0, len(n.polygons))
	all = append(all, n.polygons...)
	all = append(all, n.front.AllPolygons()...)
	all = append(all, n.back.AllPolygons()...)
	return all
}

// Build extends the tree with polys, splitting them against the existing
// splitting plane (adopting polys[0]'s plane if n is empty) and
// recursing into front/back children, creating them as needed. Build is
// additive: calling it more than once accumulates geometry (§4.3).
//
// The first polygon handed to Build fixes the splitting hierarchy for
// everything that follows, so preserving input order across repeated
// Build calls is what makes results reproducible (§4.3's determinism
// note). Recursion depth tracks tree depth, which in turn tracks
// tessellation fineness (§5) — pathological inputs can in principle drive
// this arbitrarily deep, same as the teacher's own BSP recursion
// (bsp.buildEdgeTest, PointInBSP) does not bound stack usage either.
func (n *Node) Build(polys []Polygon) {
	if len(polys) == 0 {
		return
	}
	if n.plane == nil {
		plane := polys[0].Plane
		n.plane = &plane
	}

	var result splitResult
	for _, p := range polys {
		splitPolygon(*n.plane, p, &result)
	}
	n.polygons = append(n.polygons, result.coplanarFront...)
	n.polygons = append(n.polygons, result.coplanarBack...)

	if len(result.front) > 0 {
		if n.front == nil {
			n.front = &Node{}
		}
		n.front.Build(result.front)
	}
	if len(result.back) > 0 {
		if n.back == nil {
			n.back = &Node{}
		}
		n.back.Build(result.back)
	}
}

// Clone returns a deep copy of the subtree rooted at n: independent
// nodes, independent polygon slices, front/back cloned recursively.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{front: n.front.Clone(), back: n.back.Clone()}
	if n.plane != nil {
		plane := *n.plane
		clone.plane = &plane
	}
	if n.polygons != nil {
		clone.polygons = make([]Polygon, len(n.polygons))
		for i, p := range n.polygons {
			clone.polygons[i] = p.Clone()
		}
	}
	return clone
}

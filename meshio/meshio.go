// Package meshio converts a solid.Solid to and from on-disk mesh formats:
// the fixed ASCII VTK format specified in spec.md §6 (grounded on
// core.py's saveVTK/toVerticesAndPolygons), a Wavefront OBJ writer/reader
// for interop with common mesh viewers, and a gob-based binary cache used
// by the scene/cmd layer (see DESIGN.md for why gob rather than
// protobuf).
package meshio

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bloodmagesoftware/solidify/bsp"
	"github.com/bloodmagesoftware/solidify/solid"
)

// vertexKey is the exact-equality dedup key used by ToVerticesAndPolygons
// (§6: "deduplicates vertices by exact-equality of (x, y, z) triples, no
// tolerance").
type vertexKey struct {
	X, Y, Z float64
}

// ToVerticesAndPolygons returns the deduplicated vertex list, the
// per-polygon index connectivity (cells), and the total vertex-index
// count across all cells, grounded on core.py's toVerticesAndPolygons.
// Vertices are deduplicated by exact (x, y, z) equality and assigned
// sequential indices in first-seen order.
func ToVerticesAndPolygons(s solid.Solid) (verts []bsp.Vector, cells [][]int, indexCount int) {
	index := make(map[vertexKey]int)

	for _, poly := range s.ToPolygons() {
		cell := make([]int, 0, len(poly.Vertices))
		for _, v := range poly.Vertices {
			key := vertexKey{v.Pos.X, v.Pos.Y, v.Pos.Z}
			i, ok := index[key]
			if !ok {
				i = len(verts)
				index[key] = i
				verts = append(verts, v.Pos)
			}
			cell = append(cell, i)
			indexCount++
		}
		cells = append(cells, cell)
	}

	return verts, cells, indexCount
}

// WriteVTK writes s to w in the legacy VTK ASCII PolyData format
// specified in spec.md §6, byte-for-byte compatible with core.py's
// saveVTK: a fixed four-line header, a POINTS block, then a POLYGONS
// block with per-cell vertex counts and indices.
func WriteVTK(w io.Writer, s solid.Solid, title string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# vtk DataFile Version 3.0")
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET POLYDATA")

	verts, cells, indexCount := ToVerticesAndPolygons(s)

	fmt.Fprintf(bw, "POINTS %d float\n", len(verts))
	for _, v := range verts {
		fmt.Fprintf(bw, "%v %v %v\n", v.X, v.Y, v.Z)
	}

	fmt.Fprintf(bw, "POLYGONS %d %d\n", len(cells), indexCount+len(cells))
	for _, cell := range cells {
		fmt.Fprintf(bw, "%d \n", len(cell))
		for _, idx := range cell {
			fmt.Fprintf(bw, "%d \n", idx)
		}
	}

	return bw.Flush()
}

// WriteOBJ writes s as a Wavefront OBJ mesh: a "v x y z" line per unique
// vertex (same dedup as ToVerticesAndPolygons) followed by an "f ..."
// line per polygon using 1-based OBJ indices. Not part of spec.md or
// core.py; added because VTK alone has no path into common mesh viewers
// and renderers, and OBJ needs no new dependency to read or write.
func WriteOBJ(w io.Writer, s solid.Solid) error {
	bw := bufio.NewWriter(w)

	verts, cells, _ := ToVerticesAndPolygons(s)
	for _, v := range verts {
		fmt.Fprintf(bw, "v %v %v %v\n", v.X, v.Y, v.Z)
	}
	for _, cell := range cells {
		fmt.Fprint(bw, "f")
		for _, idx := range cell {
			fmt.Fprintf(bw, " %d", idx+1)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// ReadOBJ parses a Wavefront OBJ mesh written by WriteOBJ (or any OBJ file
// using only "v" and "f" records): vertex positions and face index lists.
// Faces referencing "v/vt/vn" or "v//vn" index triples use only the
// position index; texture and normal indices are ignored, since bsp.Vertex
// carries no UV and WriteOBJ never emits per-vertex normals. Vertices get
// the zero normal, matching §3's "normal may be the zero vector" sentinel.
func ReadOBJ(r io.Reader) (solid.Solid, error) {
	var positions []bsp.Vector
	var polys []bsp.Polygon

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return solid.Solid{}, fmt.Errorf("meshio: line %d: malformed vertex record", lineNo)
			}
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return solid.Solid{}, fmt.Errorf("meshio: line %d: malformed vertex record", lineNo)
			}
			positions = append(positions, bsp.NewVector(x, y, z))

		case "f":
			if len(fields) < 4 {
				return solid.Solid{}, fmt.Errorf("meshio: line %d: face needs at least 3 vertices", lineNo)
			}
			vertices := make([]bsp.Vertex, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idxField := strings.SplitN(ref, "/", 2)[0]
				idx, err := strconv.Atoi(idxField)
				if err != nil {
					return solid.Solid{}, fmt.Errorf("meshio: line %d: malformed face index %q", lineNo, ref)
				}
				if idx < 1 || idx > len(positions) {
					return solid.Solid{}, fmt.Errorf("meshio: line %d: face index %d out of range", lineNo, idx)
				}
				vertices = append(vertices, bsp.NewVertex(positions[idx-1], bsp.Vector{}))
			}
			poly, err := bsp.NewPolygon(vertices)
			if err != nil {
				return solid.Solid{}, fmt.Errorf("meshio: line %d: %w", lineNo, err)
			}
			polys = append(polys, poly)
		}
	}
	if err := scanner.Err(); err != nil {
		return solid.Solid{}, fmt.Errorf("meshio: reading OBJ: %w", err)
	}

	return solid.FromPolygons(polys), nil
}

// gobPolygon and gobVertex mirror bsp.Polygon/bsp.Vertex with exported
// fields so gob can encode them without reaching into bsp internals or
// requiring bsp itself to expose a serialization format it has no other
// use for.
type gobVertex struct {
	Pos, Normal bsp.Vector
}

type gobPolygon struct {
	Vertices []gobVertex
}

// Encode writes s to w as a gob stream, used by the scene/cmd layer to
// cache a built Solid between CLI invocations without re-running Boolean
// operations. Plane is not encoded; Decode rebuilds it from vertices via
// bsp.NewPolygon.
func Encode(w io.Writer, s solid.Solid) error {
	polys := s.ToPolygons()
	out := make([]gobPolygon, len(polys))
	for i, p := range polys {
		gv := make([]gobVertex, len(p.Vertices))
		for j, v := range p.Vertices {
			gv[j] = gobVertex{Pos: v.Pos, Normal: v.Normal}
		}
		out[i] = gobPolygon{Vertices: gv}
	}
	return gob.NewEncoder(w).Encode(out)
}

// Decode reads a gob stream written by Encode and rebuilds a solid.Solid,
// re-deriving each polygon's plane from its stored vertices.
func Decode(r io.Reader) (solid.Solid, error) {
	var in []gobPolygon
	if err := gob.NewDecoder(r).Decode(&in); err != nil {
		return solid.Solid{}, fmt.Errorf("meshio: decoding gob solid: %w", err)
	}

	polys := make([]bsp.Polygon, len(in))
	for i, gp := range in {
		vertices := make([]bsp.Vertex, len(gp.Vertices))
		for j, gv := range gp.Vertices {
			vertices[j] = bsp.NewVertex(gv.Pos, gv.Normal)
		}
		poly, err := bsp.NewPolygon(vertices)
		if err != nil {
			return solid.Solid{}, fmt.Errorf("meshio: rebuilding polygon %d: %w", i, err)
		}
		polys[i] = poly
	}

	return solid.FromPolygons(polys), nil
}

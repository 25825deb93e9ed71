// Package scene describes a CSG construction as a YAML document: a tree
// of primitive, transform, and boolean-operator nodes that Build
// evaluates into a single solid.Solid. This is what makes the CLI's
// build command meaningful — core.py only ever exposed a Python API, no
// file format for composing solids — and is grounded on venture's
// level.Level: a yaml.v3-backed struct with a New/Save/Load trio
// (level/types.go), here describing a CSG tree instead of a tile grid.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bloodmagesoftware/solidify/bsp"
	"github.com/bloodmagesoftware/solidify/primitive"
	"github.com/bloodmagesoftware/solidify/solid"
	"github.com/bloodmagesoftware/solidify/transform"
)

type (
	// Scene is the top-level document: a single root Node evaluated into
	// the finished Solid.
	Scene struct {
		Root Node `yaml:"root"`
	}

	// Node is a tagged union: exactly one of Primitive, Op, or Transform
	// must be set. yaml.v3 doesn't have sum types, so (as in
	// level.Object/level.Portal) each variant is its own optional field.
	Node struct {
		Primitive *PrimitiveNode `yaml:"primitive,omitempty"`
		Op        *OpNode        `yaml:"op,omitempty"`
		Transform *TransformNode `yaml:"transform,omitempty"`
	}

	// PrimitiveNode instantiates one of the four primitive solids. Kind
	// selects the constructor; the remaining fields are interpreted
	// according to Kind and left at their zero value (which each
	// constructor treats as "use the default") when irrelevant.
	PrimitiveNode struct {
		Kind   string  `yaml:"kind"` // "cube", "sphere", "cylinder", "cone"
		Center Vec3    `yaml:"center,omitempty"`
		Radius Vec3    `yaml:"radius,omitempty"` // cube: per-axis; others: Radius.X
		Start  Vec3    `yaml:"start,omitempty"`  // cylinder, cone
		End    Vec3    `yaml:"end,omitempty"`    // cylinder, cone
		Slices int     `yaml:"slices,omitempty"`
		Stacks int     `yaml:"stacks,omitempty"` // sphere only
	}

	// OpNode combines two child nodes with a Boolean operator.
	OpNode struct {
		Kind string `yaml:"kind"` // "union", "subtract", "intersect"
		A    *Node  `yaml:"a"`
		B    *Node  `yaml:"b"`
	}

	// TransformNode translates and/or rotates a child node's result.
	TransformNode struct {
		Child      *Node   `yaml:"child"`
		Translate  *Vec3   `yaml:"translate,omitempty"`
		RotateAxis *Vec3   `yaml:"rotate_axis,omitempty"`
		RotateDeg  float64 `yaml:"rotate_deg,omitempty"`
	}

	// Vec3 is the YAML-facing 3-vector, distinct from bsp.Vector so the
	// scene package carries no dependency on bsp's float64-only
	// constructor shape (it round-trips through ToVector instead).
	Vec3 struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		Z float64 `yaml:"z"`
	}
)

// ToVector converts v to a bsp.Vector.
func (v Vec3) ToVector() bsp.Vector {
	return bsp.NewVector(v.X, v.Y, v.Z)
}

// Load reads and parses a scene document from path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Scene
	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the scene document to path.
func (s *Scene) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(4)

	return encoder.Encode(s)
}

// Build evaluates the scene's root node into a solid.Solid.
func (s *Scene) Build() (solid.Solid, error) {
	return buildNode(&s.Root)
}

func buildNode(n *Node) (solid.Solid, error) {
	switch {
	case n.Primitive != nil:
		return buildPrimitive(n.Primitive)
	case n.Op != nil:
		return buildOp(n.Op)
	case n.Transform != nil:
		return buildTransform(n.Transform)
	default:
		return solid.Solid{}, fmt.Errorf("scene: node has no primitive, op, or transform set")
	}
}

func buildPrimitive(p *PrimitiveNode) (solid.Solid, error) {
	switch p.Kind {
	case "cube":
		return primitive.Cube(primitive.CubeParams{
			Center: p.Center.ToVector(),
			Radius: p.Radius.ToVector(),
		})
	case "sphere":
		return primitive.Sphere(primitive.SphereParams{
			Center: p.Center.ToVector(),
			Radius: p.Radius.X,
			Slices: p.Slices,
			Stacks: p.Stacks,
		})
	case "cylinder":
		return primitive.Cylinder(primitive.CylinderParams{
			Start:  p.Start.ToVector(),
			End:    p.End.ToVector(),
			Radius: p.Radius.X,
			Slices: p.Slices,
		})
	case "cone":
		return primitive.Cone(primitive.ConeParams{
			Start:  p.Start.ToVector(),
			End:    p.End.ToVector(),
			Radius: p.Radius.X,
			Slices: p.Slices,
		})
	default:
		return solid.Solid{}, fmt.Errorf("scene: unknown primitive kind %q", p.Kind)
	}
}

func buildOp(o *OpNode) (solid.Solid, error) {
	if o.A == nil || o.B == nil {
		return solid.Solid{}, fmt.Errorf("scene: op %q requires both a and b", o.Kind)
	}
	a, err := buildNode(o.A)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("scene: building op %q operand a: %w", o.Kind, err)
	}
	b, err := buildNode(o.B)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("scene: building op %q operand b: %w", o.Kind, err)
	}

	switch o.Kind {
	case "union":
		return a.Union(b), nil
	case "subtract":
		return a.Subtract(b), nil
	case "intersect":
		return a.Intersect(b), nil
	default:
		return solid.Solid{}, fmt.Errorf("scene: unknown op kind %q", o.Kind)
	}
}

func buildTransform(t *TransformNode) (solid.Solid, error) {
	if t.Child == nil {
		return solid.Solid{}, fmt.Errorf("scene: transform node has no child")
	}
	s, err := buildNode(t.Child)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("scene: building transform child: %w", err)
	}

	if t.Translate != nil {
		if err := transform.Translate(s, t.Translate.ToVector()); err != nil {
			return solid.Solid{}, fmt.Errorf("scene: translating: %w", err)
		}
	}
	if t.RotateAxis != nil {
		if err := transform.Rotate(s, t.RotateAxis.ToVector(), t.RotateDeg); err != nil {
			return solid.Solid{}, fmt.Errorf("scene: rotating: %w", err)
		}
	}

	return s, nil
}

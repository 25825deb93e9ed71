//go:build !cli

// Package view implements a read-only wireframe viewer for a solid.Solid,
// adapted from venture's level.Editor (level/editor.go,
// level/editor_canvas.go) and cmd/level.go's window loop: the same gio
// pointer-event handling and clip.Path line-stroking, stripped down to
// orbit/pan/zoom with no editing tools, projecting 3D polygon edges
// instead of a 2D tile grid.
package view

import (
	"image/color"
	"math"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/bloodmagesoftware/solidify/bsp"
	"github.com/bloodmagesoftware/solidify/solid"
)

// edge is a pair of world-space endpoints extracted from a solid's
// polygon boundaries, one per polygon side. Edges are not deduplicated
// across polygons: shared edges between adjacent faces are drawn twice,
// same as venture's collision polygon outlines are drawn per-polygon.
type edge struct {
	A, B bsp.Vector
}

// viewer holds orbit/pan/zoom camera state and the edges to render.
type viewer struct {
	edges []edge

	// camera
	yaw, pitch float32
	zoom       float32
	panX, panY float32

	isOrbiting bool
	isPanning  bool
	lastX      float32
	lastY      float32
}

func newViewer(s solid.Solid) *viewer {
	var edges []edge
	for _, poly := range s.ToPolygons() {
		n := len(poly.Vertices)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			edges = append(edges, edge{A: poly.Vertices[i].Pos, B: poly.Vertices[j].Pos})
		}
	}
	return &viewer{
		edges: edges,
		yaw:   0.6,
		pitch: 0.4,
		zoom:  80,
	}
}

// project maps a world point to a screen point under the current
// orbit/pan/zoom, using a simple rotate-then-orthographic-scale
// projection (no perspective divide: the point of this viewer is
// checking mesh topology, not producing a photorealistic render).
func (v *viewer) project(p bsp.Vector, centerX, centerY float32) f32.Point {
	cosY, sinY := math.Cos(float64(v.yaw)), math.Sin(float64(v.yaw))
	x1 := p.X*cosY - p.Z*sinY
	z1 := p.X*sinY + p.Z*cosY

	cosP, sinP := math.Cos(float64(v.pitch)), math.Sin(float64(v.pitch))
	y2 := p.Y*cosP - z1*sinP

	return f32.Point{
		X: centerX + float32(x1)*v.zoom + v.panX,
		Y: centerY - float32(y2)*v.zoom + v.panY,
	}
}

func (v *viewer) layout(gtx layout.Context) layout.Dimensions {
	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	paint.ColorOp{Color: color.NRGBA{R: 25, G: 25, B: 25, A: 255}}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	event.Op(gtx.Ops, v)
	v.handleInput(gtx)

	centerX := float32(gtx.Constraints.Max.X) / 2
	centerY := float32(gtx.Constraints.Max.Y) / 2

	for _, e := range v.edges {
		a := v.project(e.A, centerX, centerY)
		b := v.project(e.B, centerX, centerY)
		drawLine(gtx, a, b, 1.2, color.NRGBA{R: 120, G: 200, B: 255, A: 255})
	}

	area.Pop()
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (v *viewer) handleInput(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Press | pointer.Release | pointer.Drag | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}

		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		switch pe.Kind {
		case pointer.Press:
			switch pe.Buttons {
			case pointer.ButtonPrimary:
				v.isOrbiting = true
			case pointer.ButtonSecondary:
				v.isPanning = true
			}
			v.lastX, v.lastY = pe.Position.X, pe.Position.Y

		case pointer.Release:
			if pe.Buttons&pointer.ButtonPrimary == 0 {
				v.isOrbiting = false
			}
			if pe.Buttons&pointer.ButtonSecondary == 0 {
				v.isPanning = false
			}

		case pointer.Drag:
			dx := pe.Position.X - v.lastX
			dy := pe.Position.Y - v.lastY
			if v.isOrbiting {
				v.yaw += dx * 0.01
				v.pitch += dy * 0.01
			}
			if v.isPanning {
				v.panX += dx
				v.panY += dy
			}
			v.lastX, v.lastY = pe.Position.X, pe.Position.Y

		case pointer.Scroll:
			factor := float32(1.0 + pe.Scroll.Y*0.05)
			v.zoom *= factor
			const minZoom, maxZoom = 2, 4000
			if v.zoom < minZoom {
				v.zoom = minZoom
			}
			if v.zoom > maxZoom {
				v.zoom = maxZoom
			}
		}
	}
}

func drawLine(gtx layout.Context, a, b f32.Point, width float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(a)
	path.LineTo(b)
	spec := path.End()
	stroke := clip.Stroke{Path: spec, Width: width}.Op()

	defer stroke.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// Run opens a window and displays s as a rotatable, pannable, zoomable
// wireframe until the window is closed. Left-drag orbits, right-drag
// pans, scroll zooms.
func Run(title string, s solid.Solid) error {
	v := newViewer(s)

	go func() {
		window := new(app.Window)
		if err := runWindow(window, v); err != nil {
			panic(err)
		}
	}()
	app.Main()
	return nil
}

func runWindow(window *app.Window, v *viewer) error {
	theme := material.NewTheme()
	theme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 20, G: 20, B: 20, A: 255},
		Fg:         color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		ContrastBg: color.NRGBA{R: 50, G: 50, B: 50, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			v.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

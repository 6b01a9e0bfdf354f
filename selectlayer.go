package main

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"

	"github.com/vellumdoc/vellum/internal/coord"
	"github.com/vellumdoc/vellum/internal/gesture"
)

// SelectLayer lets the user sweep out a rectangular region of the
// page. The region is kept in content space so it stays put under
// zoom, rotation and scrolling.
type SelectLayer struct {
	layerBase
	transform *coord.Transform
	style     Style

	page     int
	dragging bool
	start    f32.Point
	end      f32.Point
	have     bool
}

func NewSelectLayer(t *coord.Transform, style Style) *SelectLayer {
	return &SelectLayer{
		layerBase: layerBase{name: "select", z: 10},
		transform: t,
		style:     style,
	}
}

func (s *SelectLayer) Deactivate() {
	s.layerBase.Deactivate()
	s.dragging = false
}

func (s *SelectLayer) Render(page int, scale float32) {
	if page != s.page {
		s.page = page
		s.dragging = false
		s.have = false
	}
}

// Selection reports the current region in content space, if any.
func (s *SelectLayer) Selection() (min, max f32.Point, ok bool) {
	if !s.have {
		return
	}
	return canonPts(s.start, s.end), canonMax(s.start, s.end), true
}

func (s *SelectLayer) handleGesture(ev gesture.Event) {
	switch ev.Kind {
	case gesture.KindTap:
		s.have = false
		s.dragging = false
	case gesture.KindPan:
		p := s.transform.ClientToPage(ev.Position.X, ev.Position.Y)
		if !s.dragging {
			s.dragging = true
			s.have = true
			// Anchor where the pan started, not where it was
			// recognized.
			s.start = s.transform.ClientToPage(ev.Position.X-ev.Delta.X, ev.Position.Y-ev.Delta.Y)
		}
		s.end = p
		if ev.Final {
			s.dragging = false
			log(LogCatgLayer, "selection: %v to %v on page %d\n", s.start, s.end, s.page)
		}
	}
}

func (s *SelectLayer) draw(gtx layout.Context) {
	if !s.have {
		return
	}
	min := canonPts(s.start, s.end)
	max := canonMax(s.start, s.end)

	r := clientBounds(s.transform, min, max)
	bg := s.style.SelectionBgColor
	bg.A = 0x60
	fillRect(gtx, r, bg)
	strokeRect(gtx, f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		float32(r.Dx()), float32(r.Dy()), 1, s.style.SelectionFgColor)
}

// clientBounds maps a content-space rectangle through the transform
// and returns its client-space bounding box. All four corners go
// through so rotation is handled.
func clientBounds(t *coord.Transform, min, max f32.Point) image.Rectangle {
	pts := [4]f32.Point{
		t.PageToClient(min.X, min.Y),
		t.PageToClient(max.X, min.Y),
		t.PageToClient(min.X, max.Y),
		t.PageToClient(max.X, max.Y),
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
	}
	return image.Rect(int(lo.X), int(lo.Y), int(hi.X+0.5), int(hi.Y+0.5))
}

func canonPts(a, b f32.Point) f32.Point {
	return f32.Pt(min32(a.X, b.X), min32(a.Y, b.Y))
}

func canonMax(a, b f32.Point) f32.Point {
	return f32.Pt(max32(a.X, b.X), max32(a.Y, b.Y))
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

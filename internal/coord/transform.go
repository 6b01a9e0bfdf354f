// Package coord converts points and distances between the client
// (screen) coordinate space of the viewport and the content space of a
// document page, composing zoom, page rotation, scroll offset and the
// viewport's position on screen.
package coord

import (
	"image"

	"gioui.org/f32"
)

// Transform holds the current view parameters for one page. The zero
// value is usable for headless tests: the viewport defaults to the
// origin and the scale must be set before converting.
type Transform struct {
	scale    float32
	rotation int
	offset   f32.Point
	viewport image.Rectangle
	pageW    float32
	pageH    float32
}

// New returns a Transform at scale 1 with no rotation or offset.
func New() *Transform {
	return &Transform{scale: 1}
}

// SetScale sets the zoom factor. Callers must keep it positive; the
// Transform does not validate it.
func (t *Transform) SetScale(s float32) {
	t.scale = s
}

// SetRotation sets the page rotation in degrees. Only 0, 90, 180 and
// 270 are meaningful; callers normalize before calling.
func (t *Transform) SetRotation(deg int) {
	t.rotation = deg
}

// SetOffset sets the scroll offset of the page within the viewport, in
// client pixels.
func (t *Transform) SetOffset(x, y float32) {
	t.offset = f32.Pt(x, y)
}

// SetPageSize sets the page dimensions in content-space units.
// Rotation pivots around the center of this rectangle.
func (t *Transform) SetPageSize(w, h float32) {
	t.pageW = w
	t.pageH = h
}

// SetViewport sets the client-space bounds of the element the page is
// displayed in. A zero rectangle leaves the viewport origin at (0,0),
// which is the headless fallback.
func (t *Transform) SetViewport(r image.Rectangle) {
	t.viewport = r
}

func (t *Transform) Scale() float32 {
	return t.scale
}

func (t *Transform) Rotation() int {
	return t.rotation
}

func (t *Transform) Offset() f32.Point {
	return t.offset
}

func (t *Transform) Viewport() image.Rectangle {
	return t.viewport
}

func (t *Transform) PageSize() (w, h float32) {
	return t.pageW, t.pageH
}

// PageClientBounds returns the client-space bounding rectangle of the
// whole page under the current view parameters.
func (t *Transform) PageClientBounds() image.Rectangle {
	corners := [4]f32.Point{
		t.PageToClient(0, 0),
		t.PageToClient(t.pageW, 0),
		t.PageToClient(0, t.pageH),
		t.PageToClient(t.pageW, t.pageH),
	}
	min, max := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return image.Rect(int(min.X), int(min.Y), int(max.X+0.5), int(max.Y+0.5))
}

// ClientToPage converts a client-space point to content space. Offset
// and scale are screen-space effects and are undone first; rotation is
// a content-space effect and is undone last, pivoting on the page
// center.
func (t *Transform) ClientToPage(x, y float32) f32.Point {
	p := f32.Pt(
		(x-float32(t.viewport.Min.X)-t.offset.X)/t.scale,
		(y-float32(t.viewport.Min.Y)-t.offset.Y)/t.scale,
	)
	if t.rotation != 0 {
		p = t.rotateAboutCenter(p, -t.rotation)
	}
	return p
}

// PageToClient converts a content-space point to client space. It is
// the exact inverse of ClientToPage: rotate first, then scale, then
// translate.
func (t *Transform) PageToClient(x, y float32) f32.Point {
	p := f32.Pt(x, y)
	if t.rotation != 0 {
		p = t.rotateAboutCenter(p, t.rotation)
	}
	return f32.Pt(
		p.X*t.scale+t.offset.X+float32(t.viewport.Min.X),
		p.Y*t.scale+t.offset.Y+float32(t.viewport.Min.Y),
	)
}

// PageToClientDistance scales a content-space distance to client
// pixels. Distances are rotation- and offset-invariant.
func (t *Transform) PageToClientDistance(d float32) float32 {
	return d * t.scale
}

// ClientToPageDistance converts a client-pixel distance to content
// space.
func (t *Transform) ClientToPageDistance(d float32) float32 {
	return d / t.scale
}

// rotateAboutCenter rotates p by deg degrees around the page center.
// Only quarter turns occur, so the cases are exact and introduce no
// trigonometric error.
func (t *Transform) rotateAboutCenter(p f32.Point, deg int) f32.Point {
	deg = ((deg % 360) + 360) % 360

	cx := t.pageW / 2
	cy := t.pageH / 2
	dx := p.X - cx
	dy := p.Y - cy

	switch deg {
	case 90:
		dx, dy = -dy, dx
	case 180:
		dx, dy = -dx, -dy
	case 270:
		dx, dy = dy, -dx
	}
	return f32.Pt(cx+dx, cy+dy)
}

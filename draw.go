package main

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// fillRect paints r with the given color.
func fillRect(gtx layout.Context, r image.Rectangle, c Color) {
	st := clip.Rect(r).Push(gtx.Ops)
	paint.ColorOp{Color: color.NRGBA(c)}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	st.Pop()
}

// strokeRect draws the outline of a w by h box with its top-left corner
// at min.
func strokeRect(gtx layout.Context, min f32.Point, w, h, strokewidth float32, c Color) {
	// Clipping paths drawn clockwise fall inside, counterclockwise outside.
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(min)
	path.Line(f32.Pt(w, 0))
	path.Line(f32.Pt(0, h))
	path.Line(f32.Pt(-w, 0))
	path.Line(f32.Pt(0, -h))

	path.Move(f32.Pt(strokewidth, strokewidth))

	w -= 2 * strokewidth
	h -= 2 * strokewidth

	path.Line(f32.Pt(0, h))
	path.Line(f32.Pt(w, 0))
	path.Line(f32.Pt(0, -h))
	path.Line(f32.Pt(-w, 0))

	st := clip.Outline{Path: path.End()}.Op().Push(gtx.Ops)
	paint.ColorOp{Color: color.NRGBA(c)}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	st.Pop()
}

// strokePolyline draws line segments through pts with the given width.
func strokePolyline(gtx layout.Context, pts []f32.Point, width float32, c Color) {
	if len(pts) < 2 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(pts[0])
	for _, p := range pts[1:] {
		path.LineTo(p)
	}
	st := clip.Stroke{Path: path.End(), Width: width}.Op().Push(gtx.Ops)
	paint.ColorOp{Color: color.NRGBA(c)}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	st.Pop()
}

// rectAround returns the square of the given half-size centered on c.
func rectAround(c f32.Point, half float32) image.Rectangle {
	return image.Rect(int(c.X-half), int(c.Y-half), int(c.X+half+0.5), int(c.Y+half+0.5))
}

package main

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"

	"github.com/vellumdoc/vellum/internal/layer"
)

// Modebar is the strip of buttons across the top of the window: one
// button per tool mode, page navigation and rotation. There is no
// text rendering in vellum so the buttons carry small drawn glyphs.
type Modebar struct {
	style    Style
	heightDp int

	mode     layer.Mode
	onMode   func(layer.Mode)
	onPage   func(delta int)
	onRotate func()

	buttons []modebarButton
}

type modebarButton struct {
	bounds image.Rectangle
	mode   layer.Mode
	isMode bool
	action func()
	glyph  func(m *Modebar, gtx layout.Context, r image.Rectangle)
}

var modebarModes = []layer.Mode{
	layer.ModeNone,
	layer.ModeSelect,
	layer.ModeInk,
	layer.ModeForms,
	layer.ModeNotes,
}

func NewModebar(style Style, heightDp int, onMode func(layer.Mode), onPage func(int), onRotate func()) *Modebar {
	if heightDp <= 0 {
		heightDp = 44
	}
	return &Modebar{
		style:    style,
		heightDp: heightDp,
		onMode:   onMode,
		onPage:   onPage,
		onRotate: onRotate,
	}
}

func (m *Modebar) SetMode(mode layer.Mode) {
	m.mode = mode
}

// Layout processes clicks, draws the bar across the top of gtx and
// returns its height in pixels.
func (m *Modebar) Layout(gtx layout.Context, queue event.Queue) int {
	height := int(float32(m.heightDp) * application.PxPerDp())
	width := gtx.Constraints.Max.X

	m.placeButtons(width, height)
	m.handleInput(queue)

	bar := image.Rect(0, 0, width, height)
	fillRect(gtx, bar, m.style.ModebarBgColor)
	fillRect(gtx, image.Rect(0, height-1, width, height), m.style.ModebarBorderColor)

	for _, b := range m.buttons {
		if b.isMode && b.mode == m.mode {
			fillRect(gtx, b.bounds, m.style.ModebarActiveBgColor)
		}
		b.glyph(m, gtx, b.bounds)
	}

	st := clip.Rect(bar).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   m,
		Types: pointer.Press,
	}.Add(gtx.Ops)
	st.Pop()

	return height
}

func (m *Modebar) placeButtons(width, height int) {
	m.buttons = m.buttons[:0]

	side := height
	x := 0
	for _, mode := range modebarModes {
		m.buttons = append(m.buttons, modebarButton{
			bounds: image.Rect(x, 0, x+side, height),
			mode:   mode,
			isMode: true,
			glyph:  modeGlyph(mode),
		})
		x += side
	}

	// Navigation and rotation sit on the right edge.
	right := []modebarButton{
		{action: func() { m.onPage(-1) }, glyph: (*Modebar).prevGlyph},
		{action: func() { m.onPage(1) }, glyph: (*Modebar).nextGlyph},
		{action: func() { m.onRotate() }, glyph: (*Modebar).rotateGlyph},
	}
	x = width - side*len(right)
	for i := range right {
		right[i].bounds = image.Rect(x, 0, x+side, height)
		x += side
	}
	m.buttons = append(m.buttons, right...)
}

func (m *Modebar) handleInput(queue event.Queue) {
	for _, e := range queue.Events(m) {
		pe, ok := e.(pointer.Event)
		if !ok || pe.Type != pointer.Press {
			continue
		}
		pt := image.Pt(int(pe.Position.X), int(pe.Position.Y))
		for _, b := range m.buttons {
			if !pt.In(b.bounds) {
				continue
			}
			if b.isMode {
				log(LogCatgUI, "modebar: mode button %v\n", b.mode)
				m.onMode(b.mode)
			} else {
				b.action()
			}
			break
		}
	}
}

func modeGlyph(mode layer.Mode) func(*Modebar, layout.Context, image.Rectangle) {
	switch mode {
	case layer.ModeSelect:
		return (*Modebar).selectGlyph
	case layer.ModeInk:
		return (*Modebar).inkGlyph
	case layer.ModeForms:
		return (*Modebar).formsGlyph
	case layer.ModeNotes:
		return (*Modebar).notesGlyph
	}
	return (*Modebar).pageGlyph
}

// glyphInset returns the square the glyph is drawn in, inset from the
// button bounds.
func glyphInset(r image.Rectangle) image.Rectangle {
	in := r.Dx() / 4
	return image.Rect(r.Min.X+in, r.Min.Y+in, r.Max.X-in, r.Max.Y-in)
}

func (m *Modebar) pageGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	fillRect(gtx, g, m.style.ModebarFgColor)
}

func (m *Modebar) selectGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	strokeRect(gtx, f32.Pt(float32(g.Min.X), float32(g.Min.Y)),
		float32(g.Dx()), float32(g.Dy()), 2, m.style.ModebarFgColor)
}

func (m *Modebar) inkGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	pts := []f32.Point{
		f32.Pt(float32(g.Min.X), float32(g.Max.Y)),
		f32.Pt(float32(g.Max.X), float32(g.Min.Y)),
	}
	strokePolyline(gtx, pts, 2, m.style.ModebarFgColor)
}

func (m *Modebar) formsGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	rows := 3
	for i := 0; i < rows; i++ {
		y := g.Min.Y + i*g.Dy()/(rows-1)
		if i == rows-1 {
			y = g.Max.Y - 2
		}
		fillRect(gtx, image.Rect(g.Min.X, y, g.Max.X, y+2), m.style.ModebarFgColor)
	}
}

func (m *Modebar) notesGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	half := g.Dx() / 3
	c := g.Min.Add(image.Pt(g.Dx()/2, g.Dy()/2))
	sq := image.Rect(c.X-half, c.Y-half, c.X+half, c.Y+half)
	fillRect(gtx, sq, m.style.NoteColor)
	strokeRect(gtx, f32.Pt(float32(sq.Min.X), float32(sq.Min.Y)),
		float32(sq.Dx()), float32(sq.Dy()), 1, m.style.NoteBorderColor)
}

func (m *Modebar) prevGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	pts := []f32.Point{
		f32.Pt(float32(g.Max.X), float32(g.Min.Y)),
		f32.Pt(float32(g.Min.X), float32(g.Min.Y+g.Dy()/2)),
		f32.Pt(float32(g.Max.X), float32(g.Max.Y)),
	}
	strokePolyline(gtx, pts, 2, m.style.ModebarFgColor)
}

func (m *Modebar) nextGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	pts := []f32.Point{
		f32.Pt(float32(g.Min.X), float32(g.Min.Y)),
		f32.Pt(float32(g.Max.X), float32(g.Min.Y+g.Dy()/2)),
		f32.Pt(float32(g.Min.X), float32(g.Max.Y)),
	}
	strokePolyline(gtx, pts, 2, m.style.ModebarFgColor)
}

func (m *Modebar) rotateGlyph(gtx layout.Context, r image.Rectangle) {
	g := glyphInset(r)
	pts := []f32.Point{
		f32.Pt(float32(g.Min.X), float32(g.Max.Y)),
		f32.Pt(float32(g.Min.X), float32(g.Min.Y)),
		f32.Pt(float32(g.Max.X), float32(g.Min.Y)),
		f32.Pt(float32(g.Max.X), float32(g.Min.Y+g.Dy()/2)),
	}
	strokePolyline(gtx, pts, 2, m.style.ModebarFgColor)
}

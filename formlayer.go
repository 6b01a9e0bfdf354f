package main

import (
	"gioui.org/f32"
	"gioui.org/layout"
	"github.com/ddkwork/golibrary/mylog"

	"github.com/vellumdoc/vellum/internal/coord"
	"github.com/vellumdoc/vellum/internal/doc"
	"github.com/vellumdoc/vellum/internal/gesture"
	"github.com/vellumdoc/vellum/internal/slice"
)

// FormLayer surfaces the interactive form fields (Widget annotations)
// of the current page. A tap inside a field focuses it; a tap outside
// clears focus.
type FormLayer struct {
	layerBase
	doc       *doc.Document
	transform *coord.Transform
	style     Style

	page    int
	fields  []formField
	focused int
}

type formField struct {
	// Content-space rectangle with the origin at the top left, unlike
	// the bottom-left origin PDF rectangles come in.
	min, max f32.Point
}

func NewFormLayer(d *doc.Document, t *coord.Transform, style Style) *FormLayer {
	return &FormLayer{
		layerBase: layerBase{name: "forms", z: 30},
		doc:       d,
		transform: t,
		style:     style,
		page:      -1,
		focused:   -1,
	}
}

func (l *FormLayer) Render(page int, scale float32) {
	if page == l.page {
		return
	}
	l.page = page
	l.focused = -1
	l.loadFields()
}

func (l *FormLayer) loadFields() {
	l.fields = l.fields[:0]

	annots := mylog.Check2(l.doc.PageAnnotations(l.page))
	_, ph := l.transform.PageSize()
	for _, a := range annots {
		if a.Subtype != "Widget" {
			continue
		}
		top := ph - float32(a.Y+a.H)
		l.fields = append(l.fields, formField{
			min: f32.Pt(float32(a.X), top),
			max: f32.Pt(float32(a.X+a.W), top+float32(a.H)),
		})
	}
	log(LogCatgLayer, "forms: %d fields on page %d\n", len(l.fields), l.page)
}

func (l *FormLayer) handleGesture(ev gesture.Event) {
	if ev.Kind != gesture.KindTap {
		return
	}
	p := l.transform.ClientToPage(ev.Position.X, ev.Position.Y)
	l.focused = slice.IndexOf(l.fields, func(f formField) bool {
		return p.X >= f.min.X && p.X <= f.max.X && p.Y >= f.min.Y && p.Y <= f.max.Y
	})
	if l.focused >= 0 {
		log(LogCatgLayer, "forms: focused field %d\n", l.focused)
	}
}

// Focused reports the index of the focused field, or -1.
func (l *FormLayer) Focused() int {
	return l.focused
}

func (l *FormLayer) draw(gtx layout.Context) {
	for i, f := range l.fields {
		r := clientBounds(l.transform, f.min, f.max)
		fill := l.style.FormFieldColor
		fill.A = 0x50
		fillRect(gtx, r, fill)

		border := l.style.FormFieldColor
		w := float32(1)
		if i == l.focused {
			border = l.style.FormFocusColor
			w = 2
		}
		strokeRect(gtx, f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
			float32(r.Dx()), float32(r.Dy()), w, border)
	}
}

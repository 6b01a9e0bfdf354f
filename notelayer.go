package main

import (
	"gioui.org/f32"
	"gioui.org/layout"
	"github.com/chewxy/math32"

	"github.com/vellumdoc/vellum/internal/coord"
	"github.com/vellumdoc/vellum/internal/gesture"
	"github.com/vellumdoc/vellum/internal/slice"
)

// NoteLayer places point markers on the page. A tap drops a note at
// the tapped spot; a long press on an existing note removes it.
type NoteLayer struct {
	layerBase
	transform *coord.Transform
	style     Style

	page  int
	notes map[int][]f32.Point
}

func NewNoteLayer(t *coord.Transform, style Style) *NoteLayer {
	return &NoteLayer{
		layerBase: layerBase{name: "notes", z: 40},
		transform: t,
		style:     style,
		notes:     make(map[int][]f32.Point),
	}
}

func (l *NoteLayer) Render(page int, scale float32) {
	l.page = page
}

func (l *NoteLayer) handleGesture(ev gesture.Event) {
	switch ev.Kind {
	case gesture.KindTap:
		p := l.transform.ClientToPage(ev.Position.X, ev.Position.Y)
		l.notes[l.page] = append(l.notes[l.page], p)
		log(LogCatgLayer, "notes: added note at %v on page %d\n", p, l.page)
	case gesture.KindLongPress:
		l.removeNear(ev.Position)
	}
}

func (l *NoteLayer) removeNear(client f32.Point) {
	p := l.transform.ClientToPage(client.X, client.Y)
	radius := l.transform.ClientToPageDistance(float32(l.style.NoteSize))

	before := len(l.notes[l.page])
	l.notes[l.page] = slice.RemoveFirstMatch(l.notes[l.page], func(n f32.Point) bool {
		return math32.Hypot(n.X-p.X, n.Y-p.Y) <= radius
	})
	if len(l.notes[l.page]) < before {
		log(LogCatgLayer, "notes: removed a note on page %d\n", l.page)
	}
}

// NoteCount reports how many notes exist on the given page.
func (l *NoteLayer) NoteCount(page int) int {
	return len(l.notes[page])
}

func (l *NoteLayer) draw(gtx layout.Context) {
	half := float32(l.style.NoteSize) / 2
	for _, n := range l.notes[l.page] {
		c := l.transform.PageToClient(n.X, n.Y)
		r := rectAround(c, half)
		fillRect(gtx, r, l.style.NoteColor)
		strokeRect(gtx, f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
			float32(r.Dx()), float32(r.Dy()), 1, l.style.NoteBorderColor)
	}
}

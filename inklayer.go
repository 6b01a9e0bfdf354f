package main

import (
	"gioui.org/f32"
	"gioui.org/layout"
	"github.com/chewxy/math32"

	"github.com/vellumdoc/vellum/internal/coord"
	"github.com/vellumdoc/vellum/internal/gesture"
	"github.com/vellumdoc/vellum/internal/slice"
)

// InkLayer records freehand strokes. Points are stored in content
// space so strokes track the page through zoom, rotation and
// scrolling. A long press near a stroke erases it.
type InkLayer struct {
	layerBase
	transform *coord.Transform
	style     Style

	page    int
	strokes map[int][]inkStroke
	current []f32.Point
}

type inkStroke struct {
	Points []f32.Point
}

// eraseRadius is how close a long press must land to a stroke to
// erase it, in client pixels.
const eraseRadius = 24

func NewInkLayer(t *coord.Transform, style Style) *InkLayer {
	return &InkLayer{
		layerBase: layerBase{name: "ink", z: 20},
		transform: t,
		style:     style,
		strokes:   make(map[int][]inkStroke),
	}
}

func (l *InkLayer) Deactivate() {
	l.layerBase.Deactivate()
	l.finishStroke()
}

func (l *InkLayer) Render(page int, scale float32) {
	if page != l.page {
		l.finishStroke()
		l.page = page
	}
}

func (l *InkLayer) handleGesture(ev gesture.Event) {
	switch ev.Kind {
	case gesture.KindPan:
		p := l.transform.ClientToPage(ev.Position.X, ev.Position.Y)
		if l.current == nil {
			start := l.transform.ClientToPage(ev.Position.X-ev.Delta.X, ev.Position.Y-ev.Delta.Y)
			l.current = append(l.current, start)
		}
		l.current = append(l.current, p)
		if ev.Final {
			l.finishStroke()
		}
	case gesture.KindLongPress:
		l.eraseNear(ev.Position)
	}
}

func (l *InkLayer) finishStroke() {
	if len(l.current) < 2 {
		l.current = nil
		return
	}
	l.strokes[l.page] = append(l.strokes[l.page], inkStroke{Points: l.current})
	log(LogCatgLayer, "ink: stroke with %d points on page %d\n", len(l.current), l.page)
	l.current = nil
}

func (l *InkLayer) eraseNear(client f32.Point) {
	p := l.transform.ClientToPage(client.X, client.Y)
	radius := l.transform.ClientToPageDistance(eraseRadius)

	before := len(l.strokes[l.page])
	l.strokes[l.page] = slice.RemoveFirstMatch(l.strokes[l.page], func(s inkStroke) bool {
		return strokeNear(s.Points, p, radius)
	})
	if len(l.strokes[l.page]) < before {
		log(LogCatgLayer, "ink: erased a stroke on page %d\n", l.page)
	}
}

func strokeNear(pts []f32.Point, p f32.Point, radius float32) bool {
	return slice.Contains(pts, func(q f32.Point) bool {
		return math32.Hypot(q.X-p.X, q.Y-p.Y) <= radius
	})
}

func (l *InkLayer) draw(gtx layout.Context) {
	width := l.transform.PageToClientDistance(float32(l.style.InkWidth))
	if width < 1 {
		width = 1
	}

	for _, s := range l.strokes[l.page] {
		strokePolyline(gtx, l.toClient(s.Points), width, l.style.InkColor)
	}
	if len(l.current) >= 2 {
		strokePolyline(gtx, l.toClient(l.current), width, l.style.InkColor)
	}
}

func (l *InkLayer) toClient(pts []f32.Point) []f32.Point {
	out := make([]f32.Point, len(pts))
	for i, p := range pts {
		out[i] = l.transform.PageToClient(p.X, p.Y)
	}
	return out
}

// StrokeCount reports how many finished strokes exist on the given
// page.
func (l *InkLayer) StrokeCount(page int) int {
	return len(l.strokes[page])
}

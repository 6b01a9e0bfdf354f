package main

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"github.com/ddkwork/golibrary/mylog"

	"github.com/vellumdoc/vellum/internal/coord"
	"github.com/vellumdoc/vellum/internal/doc"
	"github.com/vellumdoc/vellum/internal/gesture"
	"github.com/vellumdoc/vellum/internal/layer"
	"github.com/vellumdoc/vellum/internal/trace"
)

// Viewer owns the open document and the layer stack, routes gestures
// between view manipulation and the active tool, and draws each frame.
type Viewer struct {
	style    Style
	settings *Settings

	doc        *doc.Document
	transform  *coord.Transform
	router     *layer.Router
	recognizer *gesture.Recognizer
	recorder   *trace.Recorder
	modebar    *Modebar

	pageLayer   *PageLayer
	selectLayer *SelectLayer
	inkLayer    *InkLayer
	formLayer   *FormLayer
	noteLayer   *NoteLayer
	layers      []viewerLayer

	page        int
	zoom        float32
	rotation    int
	offset      f32.Point
	pinchActive bool
	pinchBase   float32
	panApplied  f32.Point
}

// surfaceBindings is the fixed mode-to-surface assignment.
func surfaceBindings() map[layer.Mode]string {
	return map[layer.Mode]string{
		layer.ModeNone:   "page",
		layer.ModeSelect: "select",
		layer.ModeInk:    "ink",
		layer.ModeForms:  "forms",
		layer.ModeNotes:  "notes",
	}
}

func NewViewer(style Style, settings *Settings) *Viewer {
	v := &Viewer{
		style:     style,
		settings:  settings,
		transform: coord.New(),
		router:    layer.NewRouter(surfaceBindings()),
		zoom:      1,
	}

	v.recognizer = gesture.NewRecognizer(settings.Gesture.GestureConfig())
	v.recognizer.Defer = scheduler.Post
	v.recognizer.OnGesture(v.onGesture)

	v.modebar = NewModebar(style, settings.View.ModebarHeightDp,
		v.SetMode, v.pageBy, v.rotateBy90)

	v.router.OnModeChange(func(m layer.Mode) {
		v.modebar.SetMode(m)
		log(LogCatgViewer, "mode is now %v\n", m)
	})

	return v
}

// LoadFile opens the named PDF and builds the layer stack for it.
func (v *Viewer) LoadFile(path string) {
	if v.doc != nil {
		v.closeDoc()
	}

	v.doc = mylog.Check2(doc.Open(path))
	log(LogCatgDoc, "opened %s: %d pages\n", path, v.doc.NumPages())

	v.pageLayer = NewPageLayer(v.doc, v.transform, v.style, v.settings.View.PageCacheSize)
	v.selectLayer = NewSelectLayer(v.transform, v.style)
	v.inkLayer = NewInkLayer(v.transform, v.style)
	v.formLayer = NewFormLayer(v.doc, v.transform, v.style)
	v.noteLayer = NewNoteLayer(v.transform, v.style)

	v.layers = []viewerLayer{v.pageLayer, v.selectLayer, v.inkLayer, v.formLayer, v.noteLayer}
	for _, l := range v.layers {
		v.router.Register(bindingName(l), l)
	}

	v.page = -1
	v.GoToPage(0)
	application.SetTitle(appName + " - " + path)
}

func bindingName(l viewerLayer) string {
	switch l.(type) {
	case *PageLayer:
		return "page"
	case *SelectLayer:
		return "select"
	case *InkLayer:
		return "ink"
	case *FormLayer:
		return "forms"
	case *NoteLayer:
		return "notes"
	}
	return ""
}

func (v *Viewer) closeDoc() {
	for _, l := range v.layers {
		v.router.Unregister(bindingName(l))
	}
	v.layers = nil
	mylog.Check(v.doc.Close())
	v.doc = nil
}

func (v *Viewer) SetMode(m layer.Mode) {
	v.router.SetMode(m)
}

func (v *Viewer) Mode() layer.Mode {
	return v.router.Mode()
}

// GoToPage clamps p to the document and makes it current. The view
// rotation resets to what the page itself asks for and the scroll
// offset resets to the origin.
func (v *Viewer) GoToPage(p int) {
	if v.doc == nil {
		return
	}
	if p < 0 {
		p = 0
	}
	if p >= v.doc.NumPages() {
		p = v.doc.NumPages() - 1
	}
	if p == v.page {
		return
	}
	v.page = p

	w, h := mylog.Check3(v.doc.PageSize(p))
	v.transform.SetPageSize(float32(w), float32(h))

	rot := mylog.Check2(v.doc.PageRotation(p))
	v.rotation = doc.NormalizeRotation(rot)

	v.offset = f32.Point{}
	log(LogCatgViewer, "page %d: %gx%g rotation %d\n", p, w, h, v.rotation)
	v.applyView()
}

func (v *Viewer) Page() int {
	return v.page
}

func (v *Viewer) pageBy(delta int) {
	v.GoToPage(v.page + delta)
}

func (v *Viewer) rotateBy90() {
	v.rotation = doc.NormalizeRotation(v.rotation + 90)
	v.applyView()
}

// applyView pushes the current view parameters into the transform and
// fans a render notification out to every layer.
func (v *Viewer) applyView() {
	v.transform.SetScale(v.zoom)
	v.transform.SetRotation(v.rotation)
	v.transform.SetOffset(v.offset.X, v.offset.Y)
	v.router.Render(v.page, v.zoom)
}

func (v *Viewer) clampZoom(z float32) float32 {
	min := float32(v.settings.View.MinZoom)
	max := float32(v.settings.View.MaxZoom)
	if min <= 0 {
		min = 0.25
	}
	if max <= min {
		max = 8
	}
	if z < min {
		return min
	}
	if z > max {
		return max
	}
	return z
}

func (v *Viewer) onGesture(ev gesture.Event) {
	log(LogCatgGesture, "gesture %v at %v\n", ev.Kind, ev.Position)

	switch ev.Kind {
	case gesture.KindPinch:
		if !v.pinchActive {
			v.pinchActive = true
			v.pinchBase = v.zoom
			if scheduler != nil {
				scheduler.Cancel(rebaseTimerID)
			}
		}
		v.zoomAbout(v.clampZoom(v.pinchBase*ev.Scale), ev.Position)
		if ev.Final {
			v.pinchActive = false
			v.settleZoom()
		}

	case gesture.KindTwoFingerPan:
		// Delta is cumulative from the gesture's start; apply only
		// what has not been applied yet.
		v.offset = v.offset.Add(ev.Delta.Sub(v.panApplied))
		v.panApplied = ev.Delta
		if ev.Final {
			v.panApplied = f32.Point{}
		}
		v.applyView()

	case gesture.KindDoubleTap:
		target := float32(v.settings.View.DoubleTapZoom)
		if target <= 0 {
			target = 2
		}
		if v.zoom != 1 {
			target = 1
		}
		v.zoomAbout(v.clampZoom(target), ev.Position)
		v.rebase()

	default:
		v.forwardToActive(ev)
	}
	if appWindow != nil {
		appWindow.Invalidate()
	}
}

func (v *Viewer) rebase() {
	if v.pageLayer != nil {
		v.pageLayer.Rebase()
	}
	if appWindow != nil {
		appWindow.Invalidate()
	}
}

const (
	rebaseTimerID = "viewer-rebase"
	rebaseDelay   = 200 * time.Millisecond
)

// settleZoom re-rasterizes shortly after the zoom stops changing. The
// delay coalesces a run of pinches into a single rasterization.
func (v *Viewer) settleZoom() {
	if scheduler == nil {
		v.rebase()
		return
	}
	scheduler.Cancel(rebaseTimerID)
	scheduler.AfterFunc(rebaseTimerID, rebaseDelay, v.rebase)
}

// zoomAbout changes the zoom while keeping the content under the
// given client point stationary.
func (v *Viewer) zoomAbout(z float32, client f32.Point) {
	if z == v.zoom {
		return
	}
	anchor := v.transform.ClientToPage(client.X, client.Y)
	v.zoom = z
	v.applyView()
	moved := v.transform.PageToClient(anchor.X, anchor.Y)
	v.offset = v.offset.Add(f32.Pt(client.X-moved.X, client.Y-moved.Y))
	v.applyView()
}

// forwardToActive hands a tool gesture to whichever layer currently
// holds focus.
func (v *Viewer) forwardToActive(ev gesture.Event) {
	for _, l := range v.layers {
		if l.IsActive() {
			l.handleGesture(ev)
			return
		}
	}
}

// SetRecorder starts appending every touch event to r.
func (v *Viewer) SetRecorder(r *trace.Recorder) {
	v.recorder = r
}

// ReplayTrace pushes a recorded pointer stream through the gesture
// recognizer as if it had arrived from the window.
func (v *Viewer) ReplayTrace(records []trace.Record) {
	log(LogCatgTrace, "replaying %d trace records\n", len(records))
	trace.Replay(records, v.recognizer.Push)
}

const viewerKeySet key.Set = "1|2|3|4|5|N|P|R|⇞|⇟"

func (v *Viewer) handleKey(ev key.Event) {
	if ev.State != key.Press {
		return
	}
	switch ev.Name {
	case "1":
		v.SetMode(layer.ModeNone)
	case "2":
		v.SetMode(layer.ModeSelect)
	case "3":
		v.SetMode(layer.ModeInk)
	case "4":
		v.SetMode(layer.ModeForms)
	case "5":
		v.SetMode(layer.ModeNotes)
	case "N", "⇟":
		v.pageBy(1)
	case "P", "⇞":
		v.pageBy(-1)
	case "R":
		v.rotateBy90()
	}
}

func (v *Viewer) resize(content image.Rectangle) {
	v.transform.SetViewport(content)
	v.router.Resize(content.Dx(), content.Dy())
	log(LogCatgViewer, "viewport now %v\n", content)
}

// Layout draws one frame and wires up input for the next one.
func (v *Viewer) Layout(gtx layout.Context, queue event.Queue) {
	whole := image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	fillRect(gtx, whole, v.style.BackgroundColor)

	barHeight := v.modebar.Layout(gtx, queue)

	content := image.Rect(0, barHeight, whole.Max.X, whole.Max.Y)
	if content != v.transform.Viewport() {
		v.resize(content)
		v.applyView()
	}

	v.drainInput(queue)

	if v.doc == nil {
		return
	}

	st := clip.Rect(content).Push(gtx.Ops)
	for _, l := range v.layers {
		l.draw(gtx)
	}
	v.recognizer.Add(gtx.Ops)
	pointer.InputOp{
		Tag:          v,
		Types:        pointer.Scroll,
		ScrollBounds: image.Rect(-200, -200, 200, 200),
	}.Add(gtx.Ops)
	key.InputOp{Tag: v, Keys: viewerKeySet}.Add(gtx.Ops)
	key.FocusOp{Tag: v}.Add(gtx.Ops)
	st.Pop()
}

func (v *Viewer) drainInput(queue event.Queue) {
	for _, e := range queue.Events(v.recognizer) {
		pe, ok := e.(pointer.Event)
		if !ok {
			continue
		}
		if v.recorder != nil {
			v.recorder.Push(pe)
		}
		v.recognizer.Push(pe)
	}

	for _, e := range queue.Events(v) {
		switch ev := e.(type) {
		case pointer.Event:
			if ev.Type == pointer.Scroll {
				v.offset = v.offset.Sub(ev.Scroll)
				v.applyView()
			}
		case key.Event:
			v.handleKey(ev)
		}
	}
}

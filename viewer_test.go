package main

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"

	"github.com/vellumdoc/vellum/internal/gesture"
	"github.com/vellumdoc/vellum/internal/layer"
)

func touchAt(typ pointer.Type, id int, x, y float32, atMs int) pointer.Event {
	return pointer.Event{
		Type:      typ,
		Source:    pointer.Touch,
		PointerID: pointer.ID(id),
		Position:  f32.Pt(x, y),
		Time:      time.Duration(atMs) * time.Millisecond,
	}
}

func testSettings() *Settings {
	return &Settings{
		View: ViewSettings{
			MinZoom:       0.25,
			MaxZoom:       8,
			DoubleTapZoom: 2,
		},
	}
}

func TestClampZoom(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())

	assert.Equal(t, float32(0.25), v.clampZoom(0.01))
	assert.Equal(t, float32(8), v.clampZoom(100))
	assert.Equal(t, float32(1.5), v.clampZoom(1.5))
}

func TestZoomAboutKeepsAnchorStationary(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())
	v.transform.SetPageSize(612, 792)
	v.transform.SetViewport(image.Rect(0, 44, 800, 600))
	v.applyView()

	client := f32.Pt(300, 200)
	before := v.transform.ClientToPage(client.X, client.Y)

	v.zoomAbout(2, client)

	after := v.transform.ClientToPage(client.X, client.Y)
	assert.InDelta(t, before.X, after.X, 0.01)
	assert.InDelta(t, before.Y, after.Y, 0.01)
	assert.Equal(t, float32(2), v.zoom)
}

func TestPinchGestureZoomsFromGestureStart(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())
	v.transform.SetPageSize(612, 792)
	v.zoom = 2
	v.applyView()

	v.onGesture(gesture.Event{Kind: gesture.KindPinch, Scale: 1.5, Position: f32.Pt(100, 100), Pointers: 2})
	assert.Equal(t, float32(3), v.zoom)

	// A second event scales from the same base, not cumulatively.
	v.onGesture(gesture.Event{Kind: gesture.KindPinch, Scale: 2, Position: f32.Pt(100, 100), Pointers: 2, Final: true})
	assert.Equal(t, float32(4), v.zoom)

	// The next pinch starts over from the settled zoom.
	v.onGesture(gesture.Event{Kind: gesture.KindPinch, Scale: 0.5, Position: f32.Pt(100, 100), Pointers: 2, Final: true})
	assert.Equal(t, float32(2), v.zoom)
}

func TestTwoFingerPanScrolls(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())
	v.transform.SetPageSize(612, 792)
	v.applyView()

	// Both fingers travel 30px down. The gesture deltas are cumulative
	// so the offset must move exactly 30px no matter how many events
	// the stream produced along the way.
	v.recognizer.Push(touchAt(pointer.Press, 1, 100, 100, 0))
	v.recognizer.Push(touchAt(pointer.Press, 2, 200, 100, 10))
	v.recognizer.Push(touchAt(pointer.Move, 1, 100, 115, 20))
	v.recognizer.Push(touchAt(pointer.Move, 2, 200, 115, 30))
	v.recognizer.Push(touchAt(pointer.Move, 1, 100, 130, 40))
	v.recognizer.Push(touchAt(pointer.Move, 2, 200, 130, 50))
	v.recognizer.Push(touchAt(pointer.Release, 1, 100, 130, 60))
	v.recognizer.Push(touchAt(pointer.Release, 2, 200, 130, 70))

	assert.Equal(t, f32.Pt(0, 30), v.offset)
	assert.Equal(t, v.offset, v.transform.Offset())

	// A fresh gesture scrolls relative to where the last one settled.
	v.recognizer.Push(touchAt(pointer.Press, 1, 100, 100, 100))
	v.recognizer.Push(touchAt(pointer.Press, 2, 200, 100, 110))
	v.recognizer.Push(touchAt(pointer.Move, 1, 100, 88, 120))
	v.recognizer.Push(touchAt(pointer.Move, 2, 200, 88, 130))
	v.recognizer.Push(touchAt(pointer.Release, 1, 100, 88, 140))
	v.recognizer.Push(touchAt(pointer.Release, 2, 200, 88, 150))

	assert.Equal(t, f32.Pt(0, 18), v.offset)
}

func TestDoubleTapTogglesZoom(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())
	v.transform.SetPageSize(612, 792)
	v.applyView()

	v.onGesture(gesture.Event{Kind: gesture.KindDoubleTap, Position: f32.Pt(50, 50), Pointers: 1, Final: true})
	assert.Equal(t, float32(2), v.zoom)

	v.onGesture(gesture.Event{Kind: gesture.KindDoubleTap, Position: f32.Pt(50, 50), Pointers: 1, Final: true})
	assert.Equal(t, float32(1), v.zoom)
}

func TestResizeUpdatesViewport(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())

	content := image.Rect(0, 44, 800, 600)
	v.resize(content)

	assert.Equal(t, content, v.transform.Viewport())
}

func TestModeKeys(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())

	v.handleKey(key.Event{Name: "3", State: key.Press})
	assert.Equal(t, layer.ModeInk, v.Mode())

	v.handleKey(key.Event{Name: "1", State: key.Press})
	assert.Equal(t, layer.ModeNone, v.Mode())

	// Releases are ignored.
	v.handleKey(key.Event{Name: "5", State: key.Release})
	assert.Equal(t, layer.ModeNone, v.Mode())
}

func TestGestureForwardingToActiveLayer(t *testing.T) {
	v := NewViewer(DefaultStyle(), testSettings())
	v.transform.SetPageSize(612, 792)

	ink := NewInkLayer(v.transform, DefaultStyle())
	v.layers = []viewerLayer{ink}
	v.router.Register("ink", ink)
	v.SetMode(layer.ModeInk)

	v.onGesture(gesture.Event{Kind: gesture.KindPan, Position: f32.Pt(30, 30), Delta: f32.Pt(20, 20), Pointers: 1})
	v.onGesture(gesture.Event{Kind: gesture.KindPan, Position: f32.Pt(40, 40), Delta: f32.Pt(10, 10), Pointers: 1, Final: true})

	assert.Equal(t, 1, ink.StrokeCount(0))
}

package main

import (
	"gioui.org/layout"

	"github.com/vellumdoc/vellum/internal/gesture"
	"github.com/vellumdoc/vellum/internal/layer"
)

// layerBase carries the parts of the Surface contract that every
// visual tool implements the same way. Concrete layers embed it and
// override what they need.
type layerBase struct {
	name   string
	z      int
	active bool
	width  int
	height int
}

func (b *layerBase) Activate() {
	b.active = true
	log(LogCatgLayer, "layer %s activated\n", b.name)
}

func (b *layerBase) Deactivate() {
	b.active = false
	log(LogCatgLayer, "layer %s deactivated\n", b.name)
}

func (b *layerBase) IsActive() bool {
	return b.active
}

func (b *layerBase) StackOrder() int {
	return b.z
}

func (b *layerBase) Resize(w, h int) {
	b.width = w
	b.height = h
}

func (b *layerBase) Destroy() {
}

// viewerLayer is what the Viewer needs from a layer beyond the Surface
// contract: drawing into a frame, and receiving the gestures the
// Viewer does not consume itself.
type viewerLayer interface {
	layer.Surface
	draw(gtx layout.Context)
	handleGesture(ev gesture.Event)
}

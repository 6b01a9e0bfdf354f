package gesture

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"github.com/chewxy/math32"
)

type phase uint8

const (
	phaseIdle phase = iota
	// phaseSingle is one tracked contact that is still a tap or long
	// press candidate.
	phaseSingle
	phasePanning
	// phaseTwoUndecided is two contacts down whose movement has not
	// yet committed to pinch or two-finger pan.
	phaseTwoUndecided
	phasePinching
	phaseTwoPanning
	// phaseDone is a finished multi-contact gesture with fingers still
	// on the surface. Remaining contacts are ignored until they lift.
	phaseDone
)

type contact struct {
	id        pointer.ID
	start     f32.Point
	last      f32.Point
	startTime time.Duration
	// moved latches once the contact strays past the tap tolerance,
	// even if it later returns to its start.
	moved bool
}

// Timer is a cancellable deferred callback, satisfied by *time.Timer.
type Timer interface {
	Stop() bool
}

type listener struct {
	fn func(Event)
}

// Recognizer runs the gesture state machine for one surface. It is not
// safe for concurrent use; feed it from the surface's event loop.
type Recognizer struct {
	cfg Config

	// Defer, when non-nil, is used to run the long-press callback.
	// The application points it at its work channel so the callback
	// executes on the UI loop instead of the timer goroutine.
	Defer func(func())

	afterFunc func(time.Duration, func()) Timer

	contacts map[pointer.ID]*contact
	order    []pointer.ID
	phase    phase

	longPress      Timer
	longPressSeq   int
	longPressFired bool

	startDist    float32
	lastRatio    float32
	lastTwoDelta f32.Point
	lastCenter   f32.Point

	tapValid bool
	tapAt    time.Duration
	tapPos   f32.Point

	listeners []*listener
}

// NewRecognizer returns a Recognizer using the given thresholds.
func NewRecognizer(cfg Config) *Recognizer {
	return &Recognizer{
		cfg:      cfg,
		contacts: make(map[pointer.ID]*contact),
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}
}

// SetTimerFunc overrides the timer facility. Tests use it to fire the
// long-press deterministically.
func (r *Recognizer) SetTimerFunc(fn func(d time.Duration, f func()) Timer) {
	if fn != nil {
		r.afterFunc = fn
	}
}

// OnGesture registers a listener and returns its unsubscribe func.
func (r *Recognizer) OnGesture(fn func(Event)) func() {
	l := &listener{fn: fn}
	r.listeners = append(r.listeners, l)
	return func() {
		for i, el := range r.listeners {
			if el == l {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

// Add registers the recognizer for pointer input within the current
// clip area. Call it every frame while the owning surface is active.
func (r *Recognizer) Add(ops *op.Ops) {
	pointer.InputOp{
		Tag:   r,
		Types: pointer.Press | pointer.Drag | pointer.Move | pointer.Release | pointer.Cancel,
	}.Add(ops)
}

// Push feeds one raw pointer event through the state machine. Mouse
// events are ignored entirely so native mouse behavior is preserved.
func (r *Recognizer) Push(e pointer.Event) {
	if e.Source != pointer.Touch {
		return
	}
	switch e.Type {
	case pointer.Press:
		r.press(e)
	case pointer.Move, pointer.Drag:
		r.move(e)
	case pointer.Release:
		r.release(e)
	case pointer.Cancel:
		r.cancel(e)
	}
}

// Detach clears all tracked contacts, cancels the long-press timer and
// stops consuming input. Listeners survive a detach.
func (r *Recognizer) Detach() {
	r.stopLongPress()
	r.contacts = make(map[pointer.ID]*contact)
	r.order = r.order[:0]
	r.phase = phaseIdle
	r.longPressFired = false
	r.tapValid = false
}

// Destroy detaches and drops all listeners.
func (r *Recognizer) Destroy() {
	r.Detach()
	r.listeners = nil
}

func (r *Recognizer) press(e pointer.Event) {
	if _, ok := r.contacts[e.PointerID]; ok {
		return
	}
	c := &contact{id: e.PointerID, start: e.Position, last: e.Position, startTime: e.Time}
	r.contacts[e.PointerID] = c
	r.order = append(r.order, e.PointerID)

	switch len(r.contacts) {
	case 1:
		r.phase = phaseSingle
		r.longPressFired = false
		r.startLongPress(e.PointerID)
	case 2:
		r.stopLongPress()
		if r.phase == phasePanning {
			// The second finger ends the single-finger pan so
			// consumers can close out whatever it was driving.
			if fc, ok := r.contacts[r.order[0]]; ok {
				r.emit(Event{
					Kind:     KindPan,
					Position: fc.last,
					Delta:    fc.last.Sub(fc.start),
					Pointers: 1,
					Final:    true,
				})
			}
		}
		r.phase = phaseTwoUndecided
		r.startDist = r.contactDist()
		r.lastRatio = 1
		r.lastCenter = r.centroid()
	}
}

func (r *Recognizer) move(e pointer.Event) {
	c, ok := r.contacts[e.PointerID]
	if !ok {
		return
	}
	c.last = e.Position

	switch r.phase {
	case phaseSingle:
		d := dist(c.last, c.start)
		if d > r.cfg.TapMoveTolerance {
			c.moved = true
			r.stopLongPress()
		}
		if d > r.cfg.PanActivation {
			r.phase = phasePanning
			r.emit(Event{
				Kind:     KindPan,
				Position: c.last,
				Delta:    c.last.Sub(c.start),
				Pointers: len(r.contacts),
			})
		}

	case phasePanning:
		r.emit(Event{
			Kind:     KindPan,
			Position: c.last,
			Delta:    c.last.Sub(c.start),
			Pointers: len(r.contacts),
		})

	case phaseTwoUndecided:
		if len(r.contacts) < 2 {
			return
		}
		// The pinch/two-finger-pan choice is made once here and holds
		// for the rest of the gesture.
		ratio := r.contactDist() / r.startDist
		center := r.centroid()
		if math32.Abs(ratio-1) > r.cfg.PinchActivation {
			r.phase = phasePinching
			r.lastRatio = ratio
			r.lastCenter = center
			r.emit(Event{Kind: KindPinch, Position: center, Scale: ratio, Pointers: len(r.contacts)})
			return
		}
		avg := r.averageDelta()
		if math32.Hypot(avg.X, avg.Y) > r.cfg.PanActivation {
			r.phase = phaseTwoPanning
			r.lastTwoDelta = avg
			r.lastCenter = center
			r.emit(Event{Kind: KindTwoFingerPan, Position: center, Delta: avg, Pointers: len(r.contacts)})
		}

	case phasePinching:
		if len(r.contacts) < 2 {
			return
		}
		ratio := r.contactDist() / r.startDist
		r.lastCenter = r.centroid()
		if math32.Abs(ratio-r.lastRatio) > r.cfg.PinchRatioStep {
			r.lastRatio = ratio
			r.emit(Event{Kind: KindPinch, Position: r.lastCenter, Scale: ratio, Pointers: len(r.contacts)})
		}

	case phaseTwoPanning:
		if len(r.contacts) < 2 {
			return
		}
		avg := r.averageDelta()
		r.lastTwoDelta = avg
		r.lastCenter = r.centroid()
		r.emit(Event{Kind: KindTwoFingerPan, Position: r.lastCenter, Delta: avg, Pointers: len(r.contacts)})
	}
}

func (r *Recognizer) release(e pointer.Event) {
	c, ok := r.contacts[e.PointerID]
	if !ok {
		return
	}
	r.drop(e.PointerID)
	n := len(r.contacts)

	switch r.phase {
	case phaseSingle:
		r.stopLongPress()
		dur := e.Time - c.startTime
		if !r.longPressFired && !c.moved && dur <= r.cfg.TapMaxDuration && dist(e.Position, c.start) <= r.cfg.TapMoveTolerance {
			r.emitTap(e)
		}
		r.phase = phaseIdle

	case phasePanning:
		r.emit(Event{
			Kind:     KindPan,
			Position: e.Position,
			Delta:    e.Position.Sub(c.start),
			Pointers: n,
			Final:    true,
		})
		r.phase = phaseIdle

	case phasePinching:
		if n < 2 {
			r.emit(Event{Kind: KindPinch, Position: r.lastCenter, Scale: r.lastRatio, Pointers: n, Final: true})
			r.finishMulti(n)
		}

	case phaseTwoPanning:
		if n < 2 {
			r.emit(Event{Kind: KindTwoFingerPan, Position: r.lastCenter, Delta: r.lastTwoDelta, Pointers: n, Final: true})
			r.finishMulti(n)
		}

	case phaseTwoUndecided:
		// Never classified; nothing to finalize.
		if n < 2 {
			r.finishMulti(n)
		}

	case phaseDone:
		if n == 0 {
			r.phase = phaseIdle
		}
	}
}

// emitTap emits a tap, or a double tap when the previous tap was close
// enough in time and space. A double tap consumes the stored tap so a
// third tap starts over.
func (r *Recognizer) emitTap(e pointer.Event) {
	if r.tapValid && e.Time-r.tapAt <= r.cfg.DoubleTapGap && dist(e.Position, r.tapPos) <= r.cfg.TapMoveTolerance {
		r.tapValid = false
		r.emit(Event{Kind: KindDoubleTap, Position: e.Position, Pointers: len(r.contacts), Final: true})
		return
	}
	r.tapValid = true
	r.tapAt = e.Time
	r.tapPos = e.Position
	r.emit(Event{Kind: KindTap, Position: e.Position, Pointers: len(r.contacts), Final: true})
}

// cancel drops the contact without emitting anything. Platform
// cancellation is not a release and must not produce a terminal
// gesture.
func (r *Recognizer) cancel(e pointer.Event) {
	if _, ok := r.contacts[e.PointerID]; !ok {
		return
	}
	r.drop(e.PointerID)
	r.stopLongPress()

	n := len(r.contacts)
	if n == 0 {
		r.phase = phaseIdle
		return
	}
	if n < 2 {
		switch r.phase {
		case phaseTwoUndecided, phasePinching, phaseTwoPanning:
			r.phase = phaseDone
		}
	}
}

func (r *Recognizer) finishMulti(remaining int) {
	if remaining == 0 {
		r.phase = phaseIdle
	} else {
		r.phase = phaseDone
	}
}

func (r *Recognizer) drop(id pointer.ID) {
	delete(r.contacts, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Recognizer) startLongPress(id pointer.ID) {
	r.stopLongPress()
	r.longPressSeq++
	seq := r.longPressSeq
	r.longPress = r.afterFunc(r.cfg.LongPressDuration, func() {
		fire := func() { r.fireLongPress(seq, id) }
		if r.Defer != nil {
			r.Defer(fire)
		} else {
			fire()
		}
	})
}

// stopLongPress cancels the pending timer. The sequence bump also
// invalidates a callback that already fired but is still queued behind
// Defer.
func (r *Recognizer) stopLongPress() {
	r.longPressSeq++
	if r.longPress != nil {
		r.longPress.Stop()
		r.longPress = nil
	}
}

func (r *Recognizer) fireLongPress(seq int, id pointer.ID) {
	if seq != r.longPressSeq || r.phase != phaseSingle {
		return
	}
	c, ok := r.contacts[id]
	if !ok {
		return
	}
	if c.moved || dist(c.last, c.start) > r.cfg.TapMoveTolerance {
		return
	}
	r.longPressFired = true
	r.longPress = nil
	r.emit(Event{Kind: KindLongPress, Position: c.last, Pointers: len(r.contacts), Final: true})
}

// contactDist is the distance between the two longest-tracked
// contacts.
func (r *Recognizer) contactDist() float32 {
	if len(r.order) < 2 {
		return 0
	}
	a := r.contacts[r.order[0]]
	b := r.contacts[r.order[1]]
	return dist(a.last, b.last)
}

func (r *Recognizer) centroid() f32.Point {
	var sum f32.Point
	for _, c := range r.contacts {
		sum = sum.Add(c.last)
	}
	n := float32(len(r.contacts))
	if n == 0 {
		return f32.Point{}
	}
	return f32.Pt(sum.X/n, sum.Y/n)
}

func (r *Recognizer) averageDelta() f32.Point {
	var sum f32.Point
	for _, c := range r.contacts {
		sum = sum.Add(c.last.Sub(c.start))
	}
	n := float32(len(r.contacts))
	if n == 0 {
		return f32.Point{}
	}
	return f32.Pt(sum.X/n, sum.Y/n)
}

// emit notifies a snapshot of the listeners so one may unsubscribe
// itself mid-notification.
func (r *Recognizer) emit(ev Event) {
	snapshot := append([]*listener(nil), r.listeners...)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

func dist(a, b f32.Point) float32 {
	d := a.Sub(b)
	return math32.Hypot(d.X, d.Y)
}

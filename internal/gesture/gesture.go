// Package gesture classifies raw touch pointer events into semantic
// gestures: tap, double tap, long press, single-finger pan, two-finger
// pan and pinch. Mouse events are deliberately passed over so that
// native mouse behaviors keep working when a tool has no reason to
// intercept them.
package gesture

import (
	"time"

	"gioui.org/f32"
)

// Kind discriminates the gesture variants carried by Event.
type Kind uint8

const (
	KindTap Kind = iota
	KindDoubleTap
	KindLongPress
	KindPan
	KindTwoFingerPan
	KindPinch
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindDoubleTap:
		return "double-tap"
	case KindLongPress:
		return "long-press"
	case KindPan:
		return "pan"
	case KindTwoFingerPan:
		return "two-finger-pan"
	case KindPinch:
		return "pinch"
	default:
		return "unknown"
	}
}

// Event is one semantic gesture notification. Delta is only meaningful
// for KindPan and KindTwoFingerPan, Scale only for KindPinch. Final
// marks the terminal event of a gesture; taps, double taps and long
// presses are always final.
type Event struct {
	Kind     Kind
	Position f32.Point
	Delta    f32.Point
	Scale    float32
	Pointers int
	Final    bool
}

// Config tunes the classification thresholds. Distances are in client
// pixels.
type Config struct {
	// LongPressDuration is how long a stationary contact must be held
	// before a long press fires.
	LongPressDuration time.Duration
	// TapMaxDuration is the longest press-to-release interval that
	// still counts as a tap.
	TapMaxDuration time.Duration
	// DoubleTapGap is the longest interval between two taps that
	// merges them into a double tap.
	DoubleTapGap time.Duration
	// TapMoveTolerance is the displacement a contact may accumulate
	// while still counting as stationary.
	TapMoveTolerance float32
	// PanActivation is the displacement that turns a single moving
	// contact into a pan.
	PanActivation float32
	// PinchActivation is how far the inter-contact distance ratio must
	// deviate from 1 before a two-contact gesture becomes a pinch
	// rather than a two-finger pan.
	PinchActivation float32
	// PinchRatioStep is the minimum ratio change between consecutive
	// pinch emissions. Sub-pixel jitter stays below it.
	PinchRatioStep float32
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		LongPressDuration: 500 * time.Millisecond,
		TapMaxDuration:    300 * time.Millisecond,
		DoubleTapGap:      300 * time.Millisecond,
		TapMoveTolerance:  6,
		PanActivation:     10,
		PinchActivation:   0.05,
		PinchRatioStep:    0.02,
	}
}

// Package layer routes input ownership and render lifecycle across the
// stacked visual surfaces of a document view. Exactly one surface owns
// pointer input at a time (the one bound to the current mode); all
// surfaces receive render and resize calls regardless.
package layer

// Mode is the currently selected logical tool. The Router owns the
// current value; surfaces learn about changes through activation and
// the mode-change listeners.
type Mode int

const (
	ModeNone Mode = iota
	// ModeSelect is text selection on the rendered page.
	ModeSelect
	// ModeInk is freehand drawing.
	ModeInk
	// ModeForms is form-field filling.
	ModeForms
	// ModeNotes is note (annotation) placement.
	ModeNotes
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSelect:
		return "select"
	case ModeInk:
		return "ink"
	case ModeForms:
		return "forms"
	case ModeNotes:
		return "notes"
	default:
		return "invalid"
	}
}

// Surface is the capability a visual tool exposes to the Router. The
// Router holds only this interface, never concrete tool types.
//
// Activate grants the surface logical focus and input delivery;
// Deactivate withdraws both. Render and Resize are delivered to every
// registered surface whether active or not. StackOrder is the fixed
// z position used to order Render fan-out, lowest first.
type Surface interface {
	Activate()
	Deactivate()
	IsActive() bool
	Render(page int, scale float32)
	Resize(w, h int)
	Destroy()
	StackOrder() int
}

package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface counts lifecycle calls and appends render calls to
// a shared trace so tests can check fan-out order.
type recordingSurface struct {
	name        string
	z           int
	active      bool
	activates   int
	deactivates int
	destroys    int
	resizes     int
	trace       *[]string
}

func (s *recordingSurface) Activate()   { s.active = true; s.activates++ }
func (s *recordingSurface) Deactivate() { s.active = false; s.deactivates++ }
func (s *recordingSurface) IsActive() bool {
	return s.active
}

func (s *recordingSurface) Render(page int, scale float32) {
	if s.trace != nil {
		*s.trace = append(*s.trace, s.name)
	}
}
func (s *recordingSurface) Resize(w, h int) { s.resizes++ }
func (s *recordingSurface) Destroy()        { s.destroys++ }
func (s *recordingSurface) StackOrder() int { return s.z }

func testBindings() map[Mode]string {
	return map[Mode]string{
		ModeSelect: "select",
		ModeInk:    "ink",
		ModeNotes:  "notes",
	}
}

func TestSetModeSwitchesActiveSurface(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	ink := &recordingSurface{name: "ink", z: 20}
	r.Register("select", sel)
	r.Register("ink", ink)

	r.SetMode(ModeSelect)
	assert.True(t, sel.IsActive())
	assert.False(t, ink.IsActive())

	r.SetMode(ModeInk)
	assert.False(t, sel.IsActive())
	assert.True(t, ink.IsActive())
}

func TestSetModeSameModeIsSilentNoop(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	r.Register("select", sel)
	r.SetMode(ModeSelect)

	notified := 0
	r.OnModeChange(func(Mode) { notified++ })
	activates := sel.activates
	deactivates := sel.deactivates

	r.SetMode(ModeSelect)

	assert.Zero(t, notified)
	assert.Equal(t, activates, sel.activates)
	assert.Equal(t, deactivates, sel.deactivates)
}

func TestSetModeOrderingNeverShowsTwoActive(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	ink := &recordingSurface{name: "ink", z: 20}
	r.Register("select", sel)
	r.Register("ink", ink)
	r.SetMode(ModeSelect)

	r.OnModeChange(func(m Mode) {
		// By notification time the old surface is off, the new one is
		// on, and the mode is committed.
		assert.Equal(t, ModeInk, m)
		assert.Equal(t, ModeInk, r.Mode())
		assert.False(t, sel.IsActive())
		assert.True(t, ink.IsActive())
	})
	r.SetMode(ModeInk)
}

func TestSetModeToUnregisteredName(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	r.Register("select", sel)
	r.SetMode(ModeSelect)

	// "notes" has no registered surface; the switch still commits.
	r.SetMode(ModeNotes)
	assert.Equal(t, ModeNotes, r.Mode())
	assert.False(t, sel.IsActive())
}

func TestRegisterAdoptsCurrentMode(t *testing.T) {
	r := NewRouter(testBindings())
	r.SetMode(ModeInk)

	ink := &recordingSurface{name: "ink", z: 20}
	r.Register("ink", ink)
	assert.True(t, ink.IsActive())

	sel := &recordingSurface{name: "select", z: 10}
	r.Register("select", sel)
	assert.False(t, sel.IsActive())
}

func TestRegisterReplacesAndDeactivatesPrior(t *testing.T) {
	r := NewRouter(testBindings())
	r.SetMode(ModeInk)

	first := &recordingSurface{name: "ink", z: 20}
	r.Register("ink", first)
	require.True(t, first.IsActive())

	second := &recordingSurface{name: "ink2", z: 20}
	r.Register("ink", second)

	assert.False(t, first.IsActive())
	assert.True(t, second.IsActive())

	got, ok := r.Get("ink")
	require.True(t, ok)
	assert.Same(t, second, got.(*recordingSurface))
}

func TestRenderReachesAllInStackOrder(t *testing.T) {
	r := NewRouter(testBindings())
	var trace []string
	r.Register("notes", &recordingSurface{name: "notes", z: 40, trace: &trace})
	r.Register("select", &recordingSurface{name: "select", z: 10, trace: &trace})
	r.Register("ink", &recordingSurface{name: "ink", z: 20, trace: &trace})
	r.SetMode(ModeSelect)

	r.Render(1, 1.5)
	assert.Equal(t, []string{"select", "ink", "notes"}, trace)
}

func TestResizeReachesAll(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	ink := &recordingSurface{name: "ink", z: 20}
	r.Register("select", sel)
	r.Register("ink", ink)

	r.Resize(800, 600)
	assert.Equal(t, 1, sel.resizes)
	assert.Equal(t, 1, ink.resizes)
}

func TestUnregisterIsIdempotent(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	r.Register("select", sel)
	r.SetMode(ModeSelect)

	r.Unregister("select")
	assert.False(t, sel.IsActive())
	_, ok := r.Get("select")
	assert.False(t, ok)

	r.Unregister("select")
	r.Unregister("never-registered")
}

func TestDestroy(t *testing.T) {
	r := NewRouter(testBindings())
	sel := &recordingSurface{name: "select", z: 10}
	ink := &recordingSurface{name: "ink", z: 20}
	r.Register("select", sel)
	r.Register("ink", ink)
	r.SetMode(ModeSelect)

	notified := 0
	r.OnModeChange(func(Mode) { notified++ })

	r.Destroy()

	assert.Equal(t, 1, sel.destroys)
	assert.Equal(t, 1, ink.destroys)
	assert.False(t, sel.IsActive())
	_, ok := r.Get("select")
	assert.False(t, ok)

	r.SetMode(ModeInk)
	assert.Zero(t, notified)
}

func TestModeChangeListenerUnsubscribe(t *testing.T) {
	r := NewRouter(testBindings())

	calls := 0
	var unsub func()
	unsub = r.OnModeChange(func(Mode) {
		calls++
		unsub()
	})
	other := 0
	r.OnModeChange(func(Mode) { other++ })

	r.SetMode(ModeSelect)
	r.SetMode(ModeInk)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "ink", ModeInk.String())
	assert.Equal(t, "invalid", Mode(99).String())
}

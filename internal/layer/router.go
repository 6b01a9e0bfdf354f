package layer

import "sort"

type modeListener struct {
	fn func(Mode)
}

// Router owns the current mode and the surface registry. None of its
// operations return errors: missing names, duplicate registrations and
// redundant mode changes are normal, silently handled conditions.
type Router struct {
	bindings  map[Mode]string
	surfaces  map[string]Surface
	mode      Mode
	listeners []*modeListener
}

// NewRouter creates a Router with the given mode-to-surface-name
// bindings. The initial mode is ModeNone.
func NewRouter(bindings map[Mode]string) *Router {
	b := make(map[Mode]string, len(bindings))
	for m, n := range bindings {
		b[m] = n
	}
	return &Router{
		bindings: b,
		surfaces: make(map[string]Surface),
	}
}

// Register adds s under name, replacing and deactivating any surface
// already registered there. The new surface starts deactivated and is
// activated immediately if the current mode is bound to name.
func (r *Router) Register(name string, s Surface) {
	if old, ok := r.surfaces[name]; ok && old != s {
		old.Deactivate()
	}
	r.surfaces[name] = s
	if r.bindings[r.mode] == name {
		s.Activate()
	} else {
		s.Deactivate()
	}
}

// Unregister deactivates and drops the named surface. Absent names are
// a no-op.
func (r *Router) Unregister(name string) {
	s, ok := r.surfaces[name]
	if !ok {
		return
	}
	s.Deactivate()
	delete(r.surfaces, name)
}

// Get returns the registered surface for name. It never constructs
// one.
func (r *Router) Get(name string) (Surface, bool) {
	s, ok := r.surfaces[name]
	return s, ok
}

// SetMode switches the current tool. Setting the mode it already has
// is a true no-op: no activation changes and no listener calls.
// Otherwise the previous mode's surface is deactivated, the new mode's
// surface activated, the mode committed, and only then are listeners
// notified, so they never observe two active surfaces.
func (r *Router) SetMode(m Mode) {
	if m == r.mode {
		return
	}
	if s, ok := r.surfaces[r.bindings[r.mode]]; ok {
		s.Deactivate()
	}
	if s, ok := r.surfaces[r.bindings[m]]; ok {
		s.Activate()
	}
	r.mode = m

	snapshot := append([]*modeListener(nil), r.listeners...)
	for _, l := range snapshot {
		l.fn(m)
	}
}

// Mode returns the current mode.
func (r *Router) Mode() Mode {
	return r.mode
}

// OnModeChange registers a listener called after every committed mode
// change. The returned func unsubscribes it; unsubscribing from within
// the callback is allowed.
func (r *Router) OnModeChange(fn func(Mode)) func() {
	l := &modeListener{fn: fn}
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

// Render calls every registered surface's Render in ascending stack
// order. Inactive surfaces render too; they just don't receive input.
func (r *Router) Render(page int, scale float32) {
	for _, s := range r.ordered() {
		s.Render(page, scale)
	}
}

// Resize calls every registered surface's Resize. Order is not
// significant.
func (r *Router) Resize(w, h int) {
	for _, s := range r.surfaces {
		s.Resize(w, h)
	}
}

// Destroy deactivates and destroys every surface and clears the
// registry and all listeners.
func (r *Router) Destroy() {
	for _, s := range r.surfaces {
		s.Deactivate()
		s.Destroy()
	}
	r.surfaces = make(map[string]Surface)
	r.listeners = nil
}

// ordered returns the surfaces sorted by stack order, lowest first.
// Ties break on name so the order is stable.
func (r *Router) ordered() []Surface {
	names := make([]string, 0, len(r.surfaces))
	for n := range r.surfaces {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.surfaces[names[i]], r.surfaces[names[j]]
		if a.StackOrder() != b.StackOrder() {
			return a.StackOrder() < b.StackOrder()
		}
		return names[i] < names[j]
	})
	out := make([]Surface, len(names))
	for i, n := range names {
		out[i] = r.surfaces[n]
	}
	return out
}

// Package circ implements a fixed-capacity ring that overwrites its
// oldest element when full. The debug log keeps its recent entries in
// one per category.
package circ

type Ring[V any] struct {
	entries []V
	start   int
	count   int
}

func New[V any](max int) *Ring[V] {
	if max < 1 {
		max = 1
	}
	return &Ring[V]{
		entries: make([]V, max),
	}
}

func (r *Ring[V]) Len() int {
	return r.count
}

func (r *Ring[V]) Empty() bool {
	return r.count == 0
}

// Add appends v, evicting the oldest element if the ring is full.
func (r *Ring[V]) Add(v V) {
	if r.count < len(r.entries) {
		r.entries[(r.start+r.count)%len(r.entries)] = v
		r.count++
		return
	}
	r.entries[r.start] = v
	r.start = (r.start + 1) % len(r.entries)
}

// Do calls f for each element, oldest first.
func (r *Ring[V]) Do(f func(v V)) {
	for i := 0; i < r.count; i++ {
		f(r.entries[(r.start+i)%len(r.entries)])
	}
}

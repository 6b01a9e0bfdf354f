// Package cache is a small bounded cache with insertion-order
// eviction. The page layer keeps rendered rasters in one.
package cache

type Cache[K comparable, V any] struct {
	max     int
	entries map[K]V
	order   []K

	// OnEvict, when non-nil, is called with each entry pushed out by
	// Set.
	OnEvict func(key K, val V)
}

func New[K comparable, V any](max int) *Cache[K, V] {
	if max < 1 {
		max = 1
	}
	return &Cache[K, V]{
		max:     max,
		entries: make(map[K]V),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Set adds or replaces the entry for key. Replacing does not change
// the key's position in the eviction order.
func (c *Cache[K, V]) Set(key K, val V) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = val
		return
	}

	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		old := c.entries[oldest]
		delete(c.entries, oldest)
		if c.OnEvict != nil {
			c.OnEvict(oldest, old)
		}
	}

	c.entries[key] = val
	c.order = append(c.order, key)
}

func (c *Cache[K, V]) Del(key K) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]V)
	c.order = c.order[:0]
}

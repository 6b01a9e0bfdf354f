// Package debug keeps a bounded in-memory log of recent messages,
// grouped by category, for inclusion in panic dumps.
package debug

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vellumdoc/vellum/internal/circ"
)

type entry struct {
	when     time.Time
	category string
	message  string
}

// Log stores up to max recent entries per category.
type Log struct {
	mu      sync.Mutex
	max     int
	entries map[string]*circ.Ring[entry]
}

func New(maxEntries int) *Log {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Log{max: maxEntries, entries: make(map[string]*circ.Ring[entry])}
}

func (l *Log) Addf(category, message string, args ...interface{}) {
	l.Add(category, fmt.Sprintf(message, args...))
}

func (l *Log) Add(category, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ring, ok := l.entries[category]
	if !ok {
		ring = circ.New[entry](l.max)
		l.entries[category] = ring
	}
	ring.Add(entry{time.Now(), category, message})
}

func (l *Log) Categories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	cats := make([]string, 0, len(l.entries))
	for c := range l.entries {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// String merges the requested categories (all, if none given) into one
// chronological log.
func (l *Log) String(categories ...string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var merged []entry
	collect := func(ring *circ.Ring[entry]) {
		if ring == nil {
			return
		}
		ring.Do(func(e entry) { merged = append(merged, e) })
	}

	if len(categories) == 0 {
		for _, ring := range l.entries {
			collect(ring)
		}
	} else {
		for _, c := range categories {
			collect(l.entries[c])
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].when.Before(merged[j].when)
	})

	var buf strings.Builder
	for _, e := range merged {
		fmt.Fprintf(&buf, "%s <%s> %s", e.when.Format("2006-01-02T15:04:05.000"), e.category, e.message)
		if !strings.HasSuffix(e.message, "\n") {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

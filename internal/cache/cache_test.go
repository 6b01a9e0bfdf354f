package cache

import (
	"testing"
)

func TestEvictsOldestInsertionFirst(t *testing.T) {
	c := New[int, string](2)

	var evicted []int
	c.OnEvict = func(k int, v string) {
		evicted = append(evicted, k)
	}

	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three")

	if c.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", c.Len())
	}
	if _, ok := c.Get(1); ok {
		t.Fatalf("Oldest entry was not evicted")
	}
	if v, ok := c.Get(3); !ok || v != "three" {
		t.Fatalf("Newest entry missing")
	}
	if len(evicted) != 1 || evicted[0] != 1 {
		t.Fatalf("Expected eviction of key 1, got %v", evicted)
	}
}

func TestReplaceDoesNotEvict(t *testing.T) {
	c := New[int, string](2)

	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(1, "uno")

	if c.Len() != 2 {
		t.Fatalf("Replace changed the entry count")
	}
	if v, _ := c.Get(1); v != "uno" {
		t.Fatalf("Replace did not update the value")
	}
}

func TestDel(t *testing.T) {
	c := New[int, string](3)

	c.Set(1, "one")
	c.Set(2, "two")
	c.Del(1)

	if _, ok := c.Get(1); ok {
		t.Fatalf("Deleted entry still present")
	}

	// The freed slot must not count against the cap.
	c.Set(3, "three")
	c.Set(4, "four")
	if _, ok := c.Get(2); !ok {
		t.Fatalf("Entry 2 evicted too early")
	}
}

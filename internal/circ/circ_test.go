package circ

import (
	"testing"
)

func contents(r *Ring[int]) []int {
	var saw []int
	r.Do(func(v int) { saw = append(saw, v) })
	return saw
}

func TestAdd(t *testing.T) {
	r := New[int](3)

	if !r.Empty() {
		t.Fatalf("New ring is not empty")
	}

	r.Add(1)
	r.Add(2)
	r.Add(3)

	if r.Len() != 3 {
		t.Fatalf("Wrong count. Expected %d but got %d", 3, r.Len())
	}

	saw := contents(r)
	if saw[0] != 1 || saw[1] != 2 || saw[2] != 3 {
		t.Fatalf("Wrong contents: %v", saw)
	}
}

func TestAddPastCapacityEvictsOldest(t *testing.T) {
	r := New[int](3)

	for i := 1; i <= 5; i++ {
		r.Add(i)
	}

	if r.Len() != 3 {
		t.Fatalf("Wrong count. Expected %d but got %d", 3, r.Len())
	}

	saw := contents(r)
	if saw[0] != 3 || saw[1] != 4 || saw[2] != 5 {
		t.Fatalf("Wrong contents: %v", saw)
	}
}

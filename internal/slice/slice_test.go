package slice

import "testing"

func TestRemoveFromEmptySlice(t *testing.T) {
	s := []int{}

	s = RemoveFirstMatch(s, func(int) bool { return true })

	if len(s) != 0 {
		t.Fatalf("Remove from empty list failed")
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	s := []string{"pre", "mid", "post"}
	s = RemoveFirstMatch(s, func(v string) bool { return v == "mid" })

	if len(s) != 2 || s[0] != "pre" || s[1] != "post" {
		t.Fatalf("Remove from multi element list failed. Slice is %v", s)
	}
}

func TestRemoveOnlyFirstMatch(t *testing.T) {
	s := []int{1, 2, 2, 3}
	s = RemoveFirstMatch(s, func(v int) bool { return v == 2 })

	if len(s) != 3 || s[0] != 1 || s[1] != 2 || s[2] != 3 {
		t.Fatalf("Remove took out more than the first match. Slice is %v", s)
	}
}

func TestRemoveNoMatch(t *testing.T) {
	s := []int{1}
	s = RemoveFirstMatch(s, func(int) bool { return false })

	if len(s) != 1 {
		t.Fatalf("Remove of non-existent item changed the slice. Slice is %v", s)
	}
}

func TestContains(t *testing.T) {
	s := []string{"abc", "def"}

	if !Contains(s, func(v string) bool { return v == "def" }) {
		t.Fatalf("Contains missed an element that is there")
	}
	if Contains(s, func(v string) bool { return v == "xyz" }) {
		t.Fatalf("Contains found an element that is not there")
	}
}

func TestIndexOf(t *testing.T) {
	s := []int{4, 5, 6}

	if i := IndexOf(s, func(v int) bool { return v == 5 }); i != 1 {
		t.Fatalf("Expected index 1, got %d", i)
	}
	if i := IndexOf(s, func(v int) bool { return v == 9 }); i != -1 {
		t.Fatalf("Expected -1 for a missing element, got %d", i)
	}
}

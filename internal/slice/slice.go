// Package slice has small helpers for the element-removal and search
// patterns the annotation layers keep repeating.
package slice

// RemoveFirstMatch removes the first element for which matches returns
// true, preserving the order of the remaining elements. The input
// slice is clobbered.
func RemoveFirstMatch[V any](s []V, matches func(v V) bool) []V {
	for i, v := range s {
		if matches(v) {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// Contains reports whether any element matches.
func Contains[V any](s []V, matches func(v V) bool) bool {
	for _, v := range s {
		if matches(v) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first matching element, or -1.
func IndexOf[V any](s []V, matches func(v V) bool) int {
	for i, v := range s {
		if matches(v) {
			return i
		}
	}
	return -1
}

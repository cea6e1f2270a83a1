package seq

import "iter"

// Count returns how many values of seq satisfy pred.
func Count[T any](seq iter.Seq[T], pred func(T) bool) int {
	var n int
	for v := range seq {
		if pred(v) {
			n++
		}
	}
	return n
}

// Find returns the first value of seq that satisfies pred.
func Find[T any](seq iter.Seq[T], pred func(T) bool) (T, bool) {
	for v := range seq {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// AdjacentFind returns the index i of the first adjacent pair (v[i], v[i+1])
// for which pred returns true.
func AdjacentFind[T any](seq iter.Seq[T], pred func(a, b T) bool) (int, bool) {
	var (
		prev  T
		index = -1
	)
	for v := range seq {
		if index >= 0 && pred(prev, v) {
			return index, true
		}
		prev = v
		index++
	}
	return -1, false
}

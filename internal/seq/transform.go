package seq

import "iter"

// Map yields fn applied to every value of seq.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// ZipMap yields fn(a[i], b[i]) for aligned values of a and b.
// It stops as soon as either sequence is exhausted.
func ZipMap[A, B, R any](a iter.Seq[A], b iter.Seq[B], fn func(A, B) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		next, stop := iter.Pull(b)
		defer stop()

		for x := range a {
			y, ok := next()
			if !ok {
				return
			}
			if !yield(fn(x, y)) {
				return
			}
		}
	}
}

// Filter yields the values of seq for which pred returns true.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

package utils

// Reduce folds s into a single value, starting from initializer.
func Reduce[S ~[]E, E any, A any](s S, initializer A, f func(A, E) A) A {
	i := initializer
	for _, item := range s {
		i = f(i, item)
	}
	return i
}

// CountFunc returns the number of elements of s that satisfy f.
func CountFunc[S ~[]E, E any](s S, f func(E) bool) int {
	return Reduce(s, 0, func(n int, item E) int {
		if f(item) {
			n++
		}
		return n
	})
}

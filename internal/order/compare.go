// Package order provides comparator composition, full and partial ordering of
// slices, and seeded shuffling.
package order

import (
	"cmp"
	"slices"
)

// Comparator returns a negative number when a sorts before b, a positive number
// when a sorts after b and zero when they are equivalent.
type Comparator[T any] func(a, b T) int

// By orders values ascending by the key extracted with key.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Desc reverses c.
func Desc[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then orders by the first comparator and breaks ties with each following one in turn.
func Then[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Less adapts a strict weak ordering predicate into a Comparator.
func Less[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// SortStable sorts s by c, keeping equivalent elements in their original order.
func SortStable[S ~[]E, E any](s S, c Comparator[E]) {
	slices.SortStableFunc(s, c)
}

// IsSorted reports whether s is ordered by c.
func IsSorted[S ~[]E, E any](s S, c Comparator[E]) bool {
	return slices.IsSortedFunc(s, c)
}

package utils

import (
	"slices"
	"strings"
)

// Transform replaces every element of s with fn applied to it.
func Transform[S ~[]E, E any](s S, fn func(E) E) {
	for i := range s {
		s[i] = fn(s[i])
	}
}

// TransformInto appends fn(a[i], b[i]) to dst for every index shared by a and b
// and returns the extended slice.
func TransformInto[R, A, B any](dst []R, a []A, b []B, fn func(A, B) R) []R {
	n := min(len(a), len(b))
	dst = slices.Grow(dst, n)
	for i := range n {
		dst = append(dst, fn(a[i], b[i]))
	}
	return dst
}

// ReplaceFunc overwrites with v every element of s that satisfies pred and
// returns how many were replaced.
func ReplaceFunc[S ~[]E, E any](s S, pred func(E) bool, v E) int {
	var n int
	for i := range s {
		if pred(s[i]) {
			s[i] = v
			n++
		}
	}
	return n
}

// ReplaceRunes returns a copy of s with every rune satisfying pred replaced by r.
func ReplaceRunes(s string, pred func(rune) bool, r rune) string {
	return strings.Map(func(c rune) rune {
		if pred(c) {
			return r
		}
		return c
	}, s)
}

package utils

import (
	"slices"
	"strings"
)

// RemoveFunc compacts s in place, keeping the relative order of the elements that
// do not satisfy pred, and returns the shortened slice. Elements between the new
// and the old length are zeroed.
func RemoveFunc[S ~[]E, E any](s S, pred func(E) bool) S {
	return slices.DeleteFunc(s, pred)
}

// Remove compacts s in place, dropping every element equal to v.
func Remove[S ~[]E, E comparable](s S, v E) S {
	return RemoveFunc(s, func(e E) bool { return e == v })
}

// RemoveRunes returns s without the runes that satisfy pred.
func RemoveRunes(s string, pred func(rune) bool) string {
	return strings.Map(func(c rune) rune {
		if pred(c) {
			return -1
		}
		return c
	}, s)
}

package utils

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// MinMax returns the smallest and the largest element of s.
// ok is false when s is empty.
func MinMax[S ~[]E, E cmp.Ordered](s S) (lo, hi E, ok bool) {
	if len(s) == 0 {
		return lo, hi, false
	}

	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, true
}

// MinAdjacentGap returns the smallest absolute difference between neighbouring
// elements of s. ok is false when s has fewer than two elements.
func MinAdjacentGap[S ~[]E, E constraints.Signed | constraints.Float](s S) (gap E, ok bool) {
	for i := 1; i < len(s); i++ {
		d := s[i] - s[i-1]
		if d < 0 {
			d = -d
		}
		if !ok || d < gap {
			gap, ok = d, true
		}
	}
	return gap, ok
}

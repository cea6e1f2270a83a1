package order

import "cmp"

// insertionThreshold is the range length below which NthElement finishes with
// an insertion sort.
const insertionThreshold = 12

// NthElement rearranges s so that s[n] holds the element that would be there if s
// were sorted by c. Every element before n compares <= s[n] and every element after
// it compares >= s[n]; no other order is guaranteed. It panics if n is out of range.
func NthElement[S ~[]E, E any](s S, n int, c Comparator[E]) {
	if n < 0 || n >= len(s) {
		panic("order: NthElement index out of range")
	}

	v := []E(s)
	lo, hi := 0, len(v)-1
	for hi-lo >= insertionThreshold {
		p := partition(v, lo, hi, c)
		switch {
		case n < p:
			hi = p - 1
		case n > p:
			lo = p + 1
		default:
			return
		}
	}
	insertionSort(v, lo, hi, c)
}

// Median returns the middle element of s, the upper one for even lengths.
// s is partially reordered. ok is false when s is empty.
func Median[S ~[]E, E cmp.Ordered](s S) (median E, ok bool) {
	if len(s) == 0 {
		return median, false
	}
	mid := len(s) / 2
	NthElement(s, mid, cmp.Compare[E])
	return s[mid], true
}

// partition orders s[lo..hi] around a median-of-three pivot and returns the
// pivot's final index.
func partition[E any](s []E, lo, hi int, c Comparator[E]) int {
	mid := lo + (hi-lo)/2
	if c(s[mid], s[lo]) < 0 {
		s[mid], s[lo] = s[lo], s[mid]
	}
	if c(s[hi], s[lo]) < 0 {
		s[hi], s[lo] = s[lo], s[hi]
	}
	if c(s[hi], s[mid]) < 0 {
		s[hi], s[mid] = s[mid], s[hi]
	}
	// s[lo] <= s[mid] <= s[hi]; park the pivot next to hi
	s[mid], s[hi-1] = s[hi-1], s[mid]
	pivot := s[hi-1]

	i, j := lo, hi-1
	for {
		for i++; c(s[i], pivot) < 0; i++ {
		}
		for j--; c(pivot, s[j]) < 0; j-- {
		}
		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}
	s[i], s[hi-1] = s[hi-1], s[i]
	return i
}

func insertionSort[E any](s []E, lo, hi int, c Comparator[E]) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && c(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

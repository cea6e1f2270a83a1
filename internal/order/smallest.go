package order

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Smallest returns the k smallest elements of s ordered by c, without sorting
// the whole input. s is left untouched. A k larger than len(s) returns every element.
func Smallest[S ~[]E, E any](s S, k int, c Comparator[E]) []E {
	if k <= 0 || len(s) == 0 {
		return nil
	}
	k = min(k, len(s))

	// max-heap of the k best candidates seen so far; the root is the worst of them
	heap := binaryheap.NewWith(func(a, b interface{}) int {
		return c(b.(E), a.(E))
	})
	for _, v := range s {
		if heap.Size() < k {
			heap.Push(v)
			continue
		}
		worst, _ := heap.Peek()
		if c(v, worst.(E)) < 0 {
			heap.Pop()
			heap.Push(v)
		}
	}

	out := make([]E, heap.Size())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := heap.Pop()
		out[i] = v.(E)
	}
	return out
}

package seq

import "iter"

// Reduce folds seq into a single value, starting from init and combining
// the accumulator with each value in order.
func Reduce[T, A any](seq iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds every value of seq to a zero seed.
func Sum[T Number](seq iter.Seq[T]) T {
	var zero T
	return Reduce(seq, zero, func(acc, v T) T { return acc + v })
}

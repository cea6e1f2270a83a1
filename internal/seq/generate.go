// Package seq provides lazy algorithms over iter.Seq values.
package seq

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Iota yields n consecutive values start, start+1, ..., start+n-1.
func Iota[T Number](start T, n int) iter.Seq[T] {
	return Take(Progression(start, 1), n)
}

// Progression yields the infinite arithmetic sequence start, start+step, start+2*step, ...
func Progression[T Number](start, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := start; ; v += step {
			if !yield(v) {
				return
			}
		}
	}
}

// Generate yields the results of calling fn repeatedly. The sequence is infinite;
// bound it with Take or Fill.
func Generate[T any](fn func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(fn()) {
				return
			}
		}
	}
}

// Take yields at most the first n values of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		var i int
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

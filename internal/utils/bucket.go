package utils

import (
	"cmp"
	"fmt"
)

// Bucketize will put the value into the correct bucket, named by its upper bound.
// It is expected that the buckets are already sorted in increasing order and non-empty.
// Values above the last bucket land in ">last".
func Bucketize[T cmp.Ordered](value T, buckets []T) string {
	for _, bucketValue := range buckets {
		if value <= bucketValue {
			return fmt.Sprint(bucketValue)
		}
	}
	return ">" + fmt.Sprint(buckets[len(buckets)-1])
}

// LinearBuckets returns count evenly spaced bucket bounds from start to end inclusive.
func LinearBuckets(start, end float64, count int) []float64 {
	if count < 1 {
		panic("count parameter must be greater than 0")
	}
	if count == 1 {
		return []float64{end}
	}

	width := (end - start) / float64(count-1)
	buckets := make([]float64, count)
	for i := range buckets {
		buckets[i] = start + float64(i)*width
	}
	buckets[count-1] = end
	return buckets
}

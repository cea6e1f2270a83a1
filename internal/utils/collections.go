package utils

// Filter copies values from src to dst that match the
// predicate fn and returns the count of copied values.
// If the length of dst is less than the number of matching
// values from src, iteration will break once dst has been
// filled to its length.
func Filter[T any](dst, src []T, fn func(T) bool) int {
	m := min(len(src), len(dst))
	var i int
	for _, ref := range src {
		if i >= m {
			break
		}
		if fn(ref) {
			dst[i] = ref
			i++
		}
	}
	return i
}

// Chunk splits collection into consecutive sub-slices of chunkSize elements. The
// final chunk holds the remainder when the collection does not split evenly. The
// chunks share the backing array of collection.
func Chunk[T any](collection []T, chunkSize int) [][]T {
	if chunkSize <= 0 {
		panic("chunkSize parameter must be greater than 0")
	}

	numChunks := (len(collection) + chunkSize - 1) / chunkSize
	result := make([][]T, 0, numChunks)

	for start := 0; start < len(collection); start += chunkSize {
		end := min(start+chunkSize, len(collection))
		result = append(result, collection[start:end:end])
	}

	return result
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	cases := map[string]struct {
		src          []int
		dst          []int
		predicate    func(int) bool
		countMatches int
		expectation  []int
	}{
		"equal_length_all_match": {
			src:          []int{1, 2, 3, 4, 5},
			dst:          make([]int, 5),
			predicate:    func(_ int) bool { return true },
			countMatches: 5,
			expectation:  []int{1, 2, 3, 4, 5},
		},
		"equal_length_negatives": {
			src:          []int{-5, 8, 11, 0, -9},
			dst:          make([]int, 5),
			predicate:    func(n int) bool { return n < 0 },
			countMatches: 2,
			expectation:  []int{-5, -9, 0, 0, 0},
		},
		"smaller_dst_all_match": {
			src:          []int{1, 2, 3, 4, 5},
			dst:          make([]int, 2),
			predicate:    func(_ int) bool { return true },
			countMatches: 2,
			expectation:  []int{1, 2},
		},
		"nil_src": {
			src:          nil,
			dst:          make([]int, 3),
			predicate:    func(_ int) bool { return true },
			countMatches: 0,
			expectation:  []int{0, 0, 0},
		},
		"nil_dst": {
			src:          []int{1, 2, 3},
			dst:          nil,
			predicate:    func(_ int) bool { return true },
			countMatches: 0,
			expectation:  nil,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			count := Filter(tc.dst, tc.src, tc.predicate)
			require.Equal(t, tc.countMatches, count)
			require.Equal(t, tc.expectation, tc.dst)
		})
	}
}

func TestChunk(t *testing.T) {
	cases := map[string]struct {
		input    []int
		size     int
		expected [][]int
	}{
		"even_split": {
			input:    []int{1, 2, 3, 4},
			size:     2,
			expected: [][]int{{1, 2}, {3, 4}},
		},
		"remainder": {
			input:    []int{1, 2, 3, 4, 5},
			size:     2,
			expected: [][]int{{1, 2}, {3, 4}, {5}},
		},
		"size_larger_than_input": {
			input:    []int{1, 2},
			size:     10,
			expected: [][]int{{1, 2}},
		},
		"empty": {
			input:    nil,
			size:     3,
			expected: [][]int{},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, Chunk(tc.input, tc.size))
		})
	}

	t.Run("chunks_share_backing_array", func(t *testing.T) {
		s := []int{1, 2, 3}
		chunks := Chunk(s, 2)
		chunks[1][0] = 30
		require.Equal(t, []int{1, 2, 30}, s)

		// appending to a chunk must not clobber its neighbour
		_ = append(chunks[0], 99)
		require.Equal(t, []int{1, 2, 30}, s)
	})

	t.Run("non_positive_size_panics", func(t *testing.T) {
		require.Panics(t, func() { Chunk([]int{1}, 0) })
	})
}

package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIota(t *testing.T) {
	v := make([]int, 10)
	n := Fill(v, Iota(1, len(v)))

	require.Equal(t, 10, n)
	require.Len(t, v, 10)
	require.True(t, slices.IsSorted(v))
	require.Equal(t, 1, v[0])
	require.Equal(t, 10, v[9])
}

func TestIotaFloat(t *testing.T) {
	require.Equal(t, []float64{-0.5, 0.5, 1.5}, slices.Collect(Iota(-0.5, 3)))
}

func TestGenerateWithState(t *testing.T) {
	startValue, incr := 1, 2
	v := make([]int, 10)
	Fill(v, Generate(func() int {
		value := startValue
		startValue += incr
		return value
	}))

	require.True(t, slices.IsSorted(v))
	_, found := AdjacentFind(slices.Values(v), func(a, b int) bool { return b-a != 2 })
	require.False(t, found)
	require.Equal(t, 1, v[0])
	require.Equal(t, 19, v[9])
}

func TestProgression(t *testing.T) {
	require.Equal(t, []int{10, 7, 4, 1}, slices.Collect(Take(Progression(10, -3), 4)))
}

func TestTake(t *testing.T) {
	cases := map[string]struct {
		n        int
		expected []int
	}{
		"zero":     {n: 0, expected: nil},
		"negative": {n: -4, expected: nil},
		"partial":  {n: 2, expected: []int{1, 2}},
		"exact":    {n: 3, expected: []int{1, 2, 3}},
		"beyond":   {n: 8, expected: []int{1, 2, 3}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := slices.Collect(Take(slices.Values([]int{1, 2, 3}), tc.n))
			require.Equal(t, tc.expected, got)
		})
	}
}

package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestMinMax(t *testing.T) {
	v := []float64{11, 0.5, -97.23, -23.11, 48.78, 22.96, -77}

	smallest, largest, ok := MinMax(v)
	require.True(t, ok)
	require.Equal(t, -97.23, smallest)
	require.Equal(t, 48.78, largest)

	require.Equal(t, floats.Min(v), smallest)
	require.Equal(t, floats.Max(v), largest)
}

func TestMinMaxEdgeCases(t *testing.T) {
	_, _, ok := MinMax([]int(nil))
	require.False(t, ok)

	lo, hi, ok := MinMax([]string{"kiwi"})
	require.True(t, ok)
	require.Equal(t, "kiwi", lo)
	require.Equal(t, "kiwi", hi)

	lo, hi, ok = MinMax([]string{"pear", "apple", "zucchini"})
	require.True(t, ok)
	require.Equal(t, "apple", lo)
	require.Equal(t, "zucchini", hi)
}

func TestMinAdjacentGap(t *testing.T) {
	atpPoints := []int{8445, 7480, 6220, 5300, 5285}

	smallestDifference, ok := MinAdjacentGap(atpPoints)
	require.True(t, ok)
	require.Equal(t, 15, smallestDifference)

	// same scan written out by hand
	want := math.MaxInt
	for i := 1; i < len(atpPoints); i++ {
		d := atpPoints[i] - atpPoints[i-1]
		if d < 0 {
			d = -d
		}
		want = min(want, d)
	}
	require.Equal(t, want, smallestDifference)
}

func TestMinAdjacentGapEdgeCases(t *testing.T) {
	_, ok := MinAdjacentGap([]int{})
	require.False(t, ok)

	_, ok = MinAdjacentGap([]int{7})
	require.False(t, ok)

	gap, ok := MinAdjacentGap([]float64{1.5, 1.5, 9})
	require.True(t, ok)
	require.Zero(t, gap)

	igap, ok := MinAdjacentGap([]int{-3, 4})
	require.True(t, ok)
	require.Equal(t, 7, igap)
}

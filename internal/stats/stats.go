// Package stats summarizes a numeric sample.
package stats

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/M4RKII11II/v10/internal/order"
	"github.com/M4RKII11II/v10/internal/seq"
	"github.com/M4RKII11II/v10/internal/utils"
)

// ErrOverflow reports a summary of finite values whose aggregates exceed the float64 range.
var ErrOverflow = errors.New("summary overflows float64")

// Summary describes a sample of float64 values.
type Summary struct {
	Count  int     `json:"count"`
	Sum    float64 `json:"sum"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"` // sample standard deviation

	// SmallestGap is the smallest distance between neighbouring values in input order.
	SmallestGap float64 `json:"smallest_gap"`

	// Histogram counts values per bucket, keyed by the bucket upper bound.
	Histogram map[string]int `json:"histogram,omitempty"`
}

// Summarize computes a Summary of values. values itself is not modified.
// When buckets is empty no histogram is produced.
func Summarize(values []float64, buckets []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(values),
		Sum:   seq.Sum(slices.Values(values)),
	}
	s.Min, s.Max, _ = utils.MinMax(values)
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if s.Count < 2 {
		// the sample deviation is undefined for a single value
		s.StdDev = 0
	}
	s.SmallestGap, _ = utils.MinAdjacentGap(values)
	s.Median, _ = order.Median(slices.Clone(values))

	if len(buckets) > 0 {
		bounds := slices.Clone(buckets)
		slices.Sort(bounds)

		s.Histogram = utils.Reduce(values, make(map[string]int, len(bounds)+1), func(h map[string]int, v float64) map[string]int {
			h[utils.Bucketize(v, bounds)]++
			return h
		})
	}
	return s
}

// Finite reports whether every aggregate of s is a finite number. Sums and
// spreads of finite values can still overflow to an infinity.
func (s Summary) Finite() bool {
	for _, v := range []float64{s.Sum, s.Min, s.Max, s.Median, s.Mean, s.StdDev, s.SmallestGap} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

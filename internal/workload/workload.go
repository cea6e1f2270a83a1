// Package workload builds the large partial ordering benchmark: a sample whose
// lower half lies below Pivot, whose upper half lies above it and which holds
// Pivot exactly once, so that Pivot is its median.
package workload

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/M4RKII11II/v10/internal/order"
	"github.com/M4RKII11II/v10/internal/utils"
	"github.com/M4RKII11II/v10/pkg/logger"
)

// Pivot separates the two halves of the sample.
const Pivot = 1000

// Split returns size+1 values: size/2 values drawn from [0, Pivot), size/2 drawn
// from (Pivot, 2*Pivot] and Pivot itself as the last element. Generation is spread
// over workers goroutines; each worker's values depend only on seed and its
// position, so the result is reproducible for a given seed and worker count.
func Split(ctx context.Context, size, workers int, seed uint64) ([]float64, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("workload size must be a positive even number, got %d", size)
	}

	v := make([]float64, size, size+1)
	half := size / 2
	err := utils.ParallelChunks(ctx, v, workers, func(ctx context.Context, chunk []float64, offset int) error {
		rng := order.NewRand(seed + uint64(offset))
		for i := range chunk {
			if i%4096 == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			if offset+i < half {
				chunk[i] = float64(rng.IntN(Pivot))
			} else {
				chunk[i] = float64(Pivot + 1 + rng.IntN(Pivot))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return append(v, Pivot), nil
}

// Result describes one run of the workload.
type Result struct {
	Median   float64
	Size     int
	Generate time.Duration
	Shuffle  time.Duration
	Select   time.Duration
}

// Run generates the sample, shuffles it and selects its median with a partial ordering.
func Run(ctx context.Context, log logger.Logger, size, workers int, seed uint64) (Result, error) {
	res := Result{Size: size + 1}

	start := time.Now()
	v, err := Split(ctx, size, workers, seed)
	if err != nil {
		return res, err
	}
	res.Generate = time.Since(start)
	log.Debug("generated sample", zap.Int("size", len(v)), zap.Duration("took", res.Generate))

	start = time.Now()
	order.Shuffle(v, order.NewRand(seed))
	res.Shuffle = time.Since(start)
	log.Debug("shuffled sample", zap.Duration("took", res.Shuffle))

	if err := ctx.Err(); err != nil {
		return res, err
	}

	start = time.Now()
	mid := len(v) / 2
	order.NthElement(v, mid, cmp.Compare[float64])
	res.Select = time.Since(start)
	res.Median = v[mid]
	log.Info("selected median",
		zap.Float64("median", res.Median),
		zap.Int("size", res.Size),
		zap.Duration("took", res.Select),
	)

	return res, nil
}

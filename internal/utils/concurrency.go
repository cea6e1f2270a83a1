package utils

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// cancelCheckInterval is how many elements a worker processes between context checks.
const cancelCheckInterval = 1 << 12

// NewPool returns a new pool where each task respects context cancellation.
// Wait() will only return the first error seen.
func NewPool(ctx context.Context, maxGoroutines int) *pool.ContextPool {
	return pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxGoroutines)
}

// ParallelChunks splits s into at most workers contiguous chunks and calls fn once
// per chunk on its own goroutine. offset is the index of the chunk's first element
// in s. A non-positive workers uses GOMAXPROCS.
func ParallelChunks[T any](ctx context.Context, s []T, workers int, fn func(ctx context.Context, chunk []T, offset int) error) error {
	if len(s) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	size := (len(s) + workers - 1) / workers
	p := NewPool(ctx, workers)
	for i, chunk := range Chunk(s, size) {
		offset := i * size
		p.Go(func(ctx context.Context) error {
			return fn(ctx, chunk, offset)
		})
	}
	return p.Wait()
}

// ParallelTransform is Transform spread over workers goroutines. It stops early and
// returns the context error when ctx is cancelled; s is then partially transformed.
func ParallelTransform[S ~[]E, E any](ctx context.Context, s S, workers int, fn func(E) E) error {
	return ParallelChunks(ctx, []E(s), workers, func(ctx context.Context, chunk []E, _ int) error {
		for i := range chunk {
			if i%cancelCheckInterval == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			chunk[i] = fn(chunk[i])
		}
		return nil
	})
}

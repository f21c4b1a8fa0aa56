package solver

import (
	"context"
	"fmt"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
	"xprogram/internal/xerr"
	"xprogram/internal/xprog"
)

// ExtractParallel shards independent extraction attempts across
// workers, per spec.md §5's remark that a parallel implementation
// would shard outer attempts with no shared mutable state: each
// worker gets its own rng.Source derived from a distinct seed and
// operates on the read-only program p, so no mutable bit-matrix is
// shared between goroutines. The first success wins; the rest are cancelled.
func ExtractParallel(ctx context.Context, p *xprog.Program, opts ExtractOptions, seeds []uint32) (*bitmatrix.Matrix, int, error) {
	if len(seeds) == 0 {
		return nil, 0, fmt.Errorf("xprogram: ExtractParallel: %w", xerr.ErrDimensionMismatch)
	}

	type result struct {
		key       *bitmatrix.Matrix
		keysTried int
		err       error
	}

	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan result, len(seeds))
	for _, seed := range seeds {
		src := rng.New(seed)
		go func(src *rng.Source) {
			key, tried, err := Extract(workerCtx, p, opts, src)
			results <- result{key: key, keysTried: tried, err: err}
		}(src)
	}

	var (
		totalTried int
		firstErr   error
	)
	for i := 0; i < len(seeds); i++ {
		r := <-results
		totalTried += r.keysTried
		if r.err == nil {
			cancel()
			return r.key, totalTried, nil
		}
		if firstErr == nil {
			firstErr = r.err
		}
	}
	return nil, totalTried, firstErr
}

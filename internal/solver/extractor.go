package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/prof"
	"xprogram/internal/rng"
	"xprogram/internal/xerr"
	"xprogram/internal/xprog"
)

// ExtractOptions bounds the outer retry loop (spec.md §4.6).
type ExtractOptions struct {
	MaxIt    int
	SysMaxIt float64
}

// DefaultExtractOptions returns the spec defaults: 100 outer attempts,
// each building a system of floor(n*1.2) samples.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{MaxIt: 100, SysMaxIt: 1.2}
}

// Extract recovers the hidden key of p, composing C2-C5 with bounded
// retries. It reports the count of candidate keys actually evaluated,
// for benchmarking. On context cancellation it returns ErrCancelled
// without mutating p.
func Extract(ctx context.Context, p *xprog.Program, opts ExtractOptions, src *rng.Source) (*bitmatrix.Matrix, int, error) {
	n := p.N()
	keysTried := 0

	for attempt := 1; attempt <= opts.MaxIt; attempt++ {
		select {
		case <-ctx.Done():
			return nil, keysTried, fmt.Errorf("xprogram: extract cancelled: %w", xerr.ErrCancelled)
		default:
		}

		attemptStart := time.Now()
		sysOpts := SystemOptions{MaxIters: int(math.Floor(float64(n) * opts.SysMaxIt))}
		sys, err := BuildSystem(p, sysOpts, src)
		prof.Track(attemptStart, "buildsystem")
		if err != nil {
			return nil, keysTried, err
		}

		backsolveStart := time.Now()
		cands, err := BackSolve(sys)
		prof.Track(backsolveStart, "backsolve")
		if err != nil {
			if errors.Is(err, xerr.ErrTooManyFreeColumns) {
				continue
			}
			return nil, keysTried, err
		}

		for i := 0; i < cands.Count(); i++ {
			key, err := cands.Key(i)
			if err != nil {
				return nil, keysTried, err
			}
			keysTried++
			if CheckKey(p, key, src) {
				return key, keysTried, nil
			}
		}
	}

	return nil, keysTried, fmt.Errorf("xprogram: after %d attempts: %w", opts.MaxIt, xerr.ErrMaxIterationsExceeded)
}

// Package sampling fans random point generation out across goroutines.
//
// Every worker owns its own rng.Source seeded from randutil.Derive, and fills
// a fixed slice range, so the output depends only on the seed, sample count
// and worker count.
package sampling

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/kinemath/geom"
	"github.com/lox/kinemath/internal/randutil"
	"github.com/lox/kinemath/rng"
)

// ErrEmptyRegion is returned when a generator has no area to sample.
var ErrEmptyRegion = errors.New("sampling: region has no area")

// checkEvery is how many samples a worker draws between context checks.
const checkEvery = 1024

// Config controls a sampling run.
type Config struct {
	Samples int
	Workers int // zero means runtime.NumCPU()
	Seed    int64
	Logger  *log.Logger
}

// Generator draws one point from src. It reports false when the region it
// samples is empty.
type Generator func(src *rng.Source) (geom.Point, bool)

// Stats describes a finished run.
type Stats struct {
	Workers int
	Calls   int64 // rng draws across all workers
}

// Points runs gen cfg.Samples times across cfg.Workers goroutines.
func Points(ctx context.Context, cfg Config, gen Generator) ([]geom.Point, Stats, error) {
	if cfg.Samples < 0 {
		return nil, Stats{}, fmt.Errorf("sampling: negative sample count %d", cfg.Samples)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger = logger.WithPrefix("sampling")

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = max(min(workers, cfg.Samples), 1)

	points := make([]geom.Point, cfg.Samples)
	calls := make([]int64, workers)

	perWorker := cfg.Samples / workers
	remainder := cfg.Samples % workers

	g, ctx := errgroup.WithContext(ctx)
	lo := 0
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		out := points[lo : lo+n]
		lo += n

		src := rng.New(randutil.Derive(cfg.Seed, w))
		g.Go(func() error {
			for i := range out {
				if i%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				p, ok := gen(src)
				if !ok {
					return ErrEmptyRegion
				}
				out[i] = p
			}
			calls[w] = src.CallCount()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Workers: workers}
	for _, c := range calls {
		stats.Calls += c
	}
	logger.Debug("sampled", "samples", cfg.Samples, "workers", workers, "seed", cfg.Seed, "calls", stats.Calls)
	return points, stats, nil
}

// Rect samples uniformly from rect.
func Rect(ctx context.Context, cfg Config, rect geom.Rect) ([]geom.Point, Stats, error) {
	return Points(ctx, cfg, func(src *rng.Source) (geom.Point, bool) {
		return geom.RandomPointInRect(src, rect), true
	})
}

// Annulus samples from the padded outer rect minus the padded inner rect.
func Annulus(ctx context.Context, cfg Config, outer geom.Rect, outerPad geom.Size, inner geom.Rect, innerPad geom.Size) ([]geom.Point, Stats, error) {
	return Points(ctx, cfg, func(src *rng.Source) (geom.Point, bool) {
		return geom.RandomPointInAnnulus(src, outer, outerPad, inner, innerPad)
	})
}

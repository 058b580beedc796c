package analysis

import (
	"context"
	"time"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/unary"
	"golang.org/x/sync/errgroup"
)

// Batch runs 1^n for every n in ns on independent machines, at most workers
// at a time (workers <= 0 means unbounded). Results keep the order of ns.
func Batch(ctx context.Context, def *domain.Definition, ns []int, workers, maxSteps int) ([]domain.Measurement, error) {
	if maxSteps <= 0 {
		maxSteps = domain.DefaultMaxSteps
	}

	results := make([]domain.Measurement, len(ns))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, n := range ns {
		g.Go(func() error {
			m := runtime.New(def, runtime.WithHistory(false))
			m.Reset(unary.Encode(n))

			start := time.Now()
			accepted, err := m.RunContext(gctx, maxSteps)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			results[i] = domain.Measurement{
				N:           n,
				Steps:       m.StepCount(),
				Value:       unary.Decode(m.CleanResult()),
				Repetitions: 1,
				Avg:         elapsed,
				Min:         elapsed,
				Max:         elapsed,
				Completed:   accepted,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

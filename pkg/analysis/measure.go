package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/unary"
)

// Runner executes a machine on one input. *turing.Simulator satisfies it.
type Runner interface {
	Simulate(ctx context.Context, input string, maxSteps int) (domain.Outcome, error)
}

// Measure runs 1^n reps times and records the step count and wall time.
// A run that does not halt accepting leaves Completed false.
func Measure(ctx context.Context, r Runner, n, reps, maxSteps int) (domain.Measurement, error) {
	reps = max(reps, 1)
	m := domain.Measurement{N: n, Completed: true}
	input := unary.Encode(n)

	var total time.Duration
	for i := range reps {
		start := time.Now()
		out, err := r.Simulate(ctx, input, maxSteps)
		elapsed := time.Since(start)
		if err != nil {
			m.Completed = false
			return m, fmt.Errorf("n=%d: %w", n, err)
		}

		total += elapsed
		if i == 0 || elapsed < m.Min {
			m.Min = elapsed
		}
		m.Max = max(m.Max, elapsed)
		m.Repetitions++
		m.Steps = out.Steps
		m.Value = out.Value
		m.Completed = m.Completed && out.Accepted
	}
	m.Avg = total / time.Duration(m.Repetitions)
	return m, nil
}

// Repetitions is the number of timed runs used for input size n: small
// inputs are cheap and noisy, large ones are slow.
func Repetitions(n int) int {
	switch {
	case n <= 10:
		return 3
	case n <= 12:
		return 2
	default:
		return 1
	}
}

// Config drives Adaptive.
type Config struct {
	MaxN      int           // Largest n to try
	TimeLimit time.Duration // Per-measurement budget; zero disables it
	MaxSteps  int           // Step budget per run; zero means domain.DefaultMaxSteps
	Logger    *slog.Logger
	Progress  func(domain.Measurement) // Called after each measurement
}

// Adaptive measures n = 0..MaxN in order and stops early at the first
// measurement slower than TimeLimit (that measurement is kept). A run cut
// short by the time limit is kept with Completed false.
func Adaptive(ctx context.Context, r Runner, cfg Config) ([]domain.Measurement, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = domain.DefaultMaxSteps
	}

	var out []domain.Measurement
	for n := 0; n <= cfg.MaxN; n++ {
		runCtx, cancel := ctx, context.CancelFunc(func() {})
		if cfg.TimeLimit > 0 {
			runCtx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		}
		m, err := Measure(runCtx, r, n, Repetitions(n), maxSteps)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			if !errors.Is(err, context.DeadlineExceeded) {
				return out, err
			}
			logger.Info("time limit reached", "n", n, "limit", cfg.TimeLimit)
			out = append(out, m)
			notify(cfg.Progress, m)
			break
		}

		logger.Debug("measured", "n", n, "steps", m.Steps, "avg", m.Avg, "completed", m.Completed)
		out = append(out, m)
		notify(cfg.Progress, m)

		if cfg.TimeLimit > 0 && m.Avg > cfg.TimeLimit {
			logger.Info("time limit exceeded", "n", n, "avg", m.Avg, "limit", cfg.TimeLimit)
			break
		}
	}
	return out, nil
}

func notify(fn func(domain.Measurement), m domain.Measurement) {
	if fn != nil {
		fn(m)
	}
}

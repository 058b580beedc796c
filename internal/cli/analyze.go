package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/analysis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/persistence/middleware"
	"github.com/aretw0/turing/pkg/ports"
)

// AnalyzeOptions configures the analyze command.
type AnalyzeOptions struct {
	Options
	MaxN      int
	TimeLimit time.Duration
	MaxSteps  int

	// StepsOnly skips timing and runs every n concurrently on Workers
	// goroutines.
	StepsOnly bool
	Workers   int

	// Reports go to RedisAddr when set, else to files under OutDir.
	OutDir    string
	RedisAddr string
	RedisTTL  time.Duration
	NoSave    bool

	Out io.Writer
	Now func() time.Time
}

// Analyze handles the 'analyze' command: it measures, prints the table and
// the fit, then stores the report.
func Analyze(ctx context.Context, opts AnalyzeOptions) (*domain.Report, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := createLogger(opts.Debug)
	sim, err := createSimulator(opts.Options, logger)
	if err != nil {
		return nil, err
	}
	def := sim.Definition()

	var ms []domain.Measurement
	if opts.StepsOnly {
		ns := make([]int, opts.MaxN+1)
		for i := range ns {
			ns[i] = i
		}
		ms, err = analysis.Batch(ctx, def, ns, opts.Workers, opts.MaxSteps)
	} else {
		ms, err = analysis.Adaptive(ctx, sim, analysis.Config{
			MaxN:      opts.MaxN,
			TimeLimit: opts.TimeLimit,
			MaxSteps:  opts.MaxSteps,
			Logger:    logger,
			Progress: func(m domain.Measurement) {
				fmt.Fprintf(opts.Out, "  n=%-3d steps=%-10d avg=%v\n", m.N, m.Steps, m.Avg)
			},
		})
	}
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	report := analysis.NewReport(def.Name, ms, opts.Now())
	fmt.Fprintln(opts.Out)
	tui.NewPrinter(opts.Out).PrintReport(report)

	if opts.NoSave {
		return report, nil
	}
	backend, closeStore := openStore(opts.OutDir, opts.RedisAddr, opts.RedisTTL)
	defer closeStore()
	store := middleware.Chain(backend, middleware.NewLoggingMiddleware(logger))
	if err := store.Save(ctx, report.ID, report); err != nil {
		return report, fmt.Errorf("failed to save report: %w", err)
	}
	if fs, ok := backend.(*file.Store); ok {
		printSystemMessage(opts.Out, "Report saved to %s", fs.Path(report.ID))
	} else {
		printSystemMessage(opts.Out, "Report saved as %s", report.ID)
	}
	return report, nil
}

// openStore returns the Redis store when redisAddr is set, else the file
// store under dir.
func openStore(dir, redisAddr string, ttl time.Duration) (ports.ReportStore, func()) {
	if redisAddr != "" {
		s := redis.New(redisAddr, "", 0, redis.WithTTL(ttl))
		return s, func() { _ = s.Close() }
	}
	return file.New(dir), func() {}
}

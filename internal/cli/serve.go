package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/turing/internal/logging"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/persistence/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	Options
	Addr     string
	MaxSteps int
	// Reports are read from RedisAddr when set, else from ReportsDir.
	ReportsDir string
	RedisAddr  string
	Out        io.Writer
}

// NewServer builds the HTTP server with its own metrics registry.
func NewServer(opts ServeOptions, logger *slog.Logger) (*http.Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	storeMetrics, err := middleware.NewStoreMetrics(reg)
	if err != nil {
		return nil, err
	}

	sim, err := createSimulator(opts.Options, logger, metrics.Hooks())
	if err != nil {
		return nil, err
	}

	backend, closeStore := openStore(opts.ReportsDir, opts.RedisAddr, 0)
	reports := middleware.Chain(backend,
		middleware.NewLoggingMiddleware(logger),
		storeMetrics.Middleware(),
	)

	handler := httpAdapter.NewHandler(sim,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMaxSteps(opts.MaxSteps),
		httpAdapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
		httpAdapter.WithReports(reports),
	)
	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(closeStore)
	return srv, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	srv, err := NewServer(opts, logger)
	if err != nil {
		return err
	}

	serverErrors := make(chan error, 1)
	printSystemMessage(opts.Out, "Starting Turing server on %s", srv.Addr)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		printSystemMessage(opts.Out, "Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			return srv.Close()
		}
		printSystemMessage(opts.Out, "Server stopped gracefully")
		return nil
	}
}

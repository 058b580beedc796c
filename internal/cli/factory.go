package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
)

// Options are the settings shared by every command.
type Options struct {
	// Machine is a definition file (.json, .yaml, .yml). Empty selects the
	// bundled Fibonacci machine.
	Machine string
	Debug   bool
}

// createSimulator initializes a simulator with standard CLI conventions.
func createSimulator(opts Options, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*turing.Simulator, error) {
	simOpts := []turing.Option{turing.WithLogger(logger)}
	if opts.Machine != "" {
		simOpts = append(simOpts, turing.WithDefinitionFile(opts.Machine))
	}
	if opts.Debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}
	if len(hooks) > 0 {
		simOpts = append(simOpts, turing.WithLifecycleHooks(observability.Combine(hooks...)))
	}

	sim, err := turing.New(simOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing simulator: %w", err)
	}
	return sim, nil
}

// createLogger configures the application logger.
// Debug writes everything to Stderr; otherwise only warnings and errors.
func createLogger(debug bool) *slog.Logger {
	return logging.New(logging.Level(debug))
}

package turing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/machines"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/unary"
)

// Simulator is the high-level entry point of the library. It holds one
// validated definition and runs each request on a fresh machine, so a
// Simulator may be shared across goroutines as long as its hooks are safe
// for concurrent use.
type Simulator struct {
	def     *domain.Definition
	loader  ports.DefinitionLoader
	name    string
	path    string
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	machine []runtime.Option
}

// Option defines a functional option for configuring the Simulator.
type Option func(*Simulator)

// WithLoader reads the definition called name from loader instead of the
// bundled Fibonacci machine.
func WithLoader(loader ports.DefinitionLoader, name string) Option {
	return func(s *Simulator) {
		s.loader = loader
		s.name = name
	}
}

// WithDefinitionFile loads the definition from a JSON or YAML file.
func WithDefinitionFile(path string) Option {
	return func(s *Simulator) {
		s.path = path
	}
}

// WithDefinition uses an already built definition (see pkg/dsl).
// It is validated like any loaded one.
func WithDefinition(def *domain.Definition) Option {
	return func(s *Simulator) {
		s.def = def
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// WithExtractor replaces the Fibonacci post-processing used for CleanResult.
func WithExtractor(x unary.Extractor) Option {
	return func(s *Simulator) {
		s.machine = append(s.machine, runtime.WithExtractor(x))
	}
}

// New builds a Simulator. Without options it loads the bundled Fibonacci
// machine.
func New(opts ...Option) (*Simulator, error) {
	s := &Simulator{
		loader: file.NewLoader(machines.FS),
		name:   machines.Fibonacci,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	var err error
	switch {
	case s.def != nil:
		err = definition.Validate(s.def)
	case s.path != "":
		s.def, err = definition.Load(s.path)
	default:
		s.def, err = definition.FromLoader(s.loader, s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load machine: %w", err)
	}

	s.logger.Debug("machine loaded",
		"machine", s.def.Name,
		"states", len(s.def.States),
		"transitions", s.def.TransitionCount(),
	)
	return s, nil
}

// Definition returns the loaded definition.
func (s *Simulator) Definition() *domain.Definition {
	return s.def
}

// NewMachine returns a fresh interpreter wired with the simulator's logger
// and hooks. Extra options are applied last.
func (s *Simulator) NewMachine(opts ...runtime.Option) *runtime.Machine {
	base := []runtime.Option{
		runtime.WithLogger(s.logger),
		runtime.WithLifecycleHooks(s.hooks),
	}
	base = append(base, s.machine...)
	return runtime.New(s.def, append(base, opts...)...)
}

// Simulate runs a unary input to completion (or maxSteps; zero or less means
// domain.DefaultMaxSteps) and summarizes the result.
func (s *Simulator) Simulate(ctx context.Context, input string, maxSteps int) (domain.Outcome, error) {
	return s.simulate(ctx, input, maxSteps, false)
}

// Trace is Simulate with the snapshot history included in the outcome.
func (s *Simulator) Trace(ctx context.Context, input string, maxSteps int) (domain.Outcome, error) {
	return s.simulate(ctx, input, maxSteps, true)
}

func (s *Simulator) simulate(ctx context.Context, input string, maxSteps int, trace bool) (domain.Outcome, error) {
	if err := unary.Validate(input); err != nil {
		return domain.Outcome{}, err
	}
	if maxSteps <= 0 {
		maxSteps = domain.DefaultMaxSteps
	}

	m := s.NewMachine(runtime.WithHistory(trace))
	m.Reset(input)
	if _, err := m.RunContext(ctx, maxSteps); err != nil {
		return domain.Outcome{}, fmt.Errorf("simulation interrupted after %d steps: %w", m.StepCount(), err)
	}

	out := m.Outcome(input)
	if trace {
		out.Snapshots = m.History()
	}
	s.logger.Debug("simulation finished",
		"input_len", len(input),
		"steps", out.Steps,
		"state", out.State,
		"status", out.Status,
	)
	return out, nil
}

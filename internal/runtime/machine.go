package runtime

import (
	"context"
	"log/slog"
	"slices"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/aretw0/turing/pkg/unary"
)

// cancelCheckInterval is how many steps RunContext executes between context checks.
const cancelCheckInterval = 1024

// Machine is a deterministic single-tape Turing machine interpreter.
type Machine struct {
	def *domain.Definition

	tape   *tape.Tape
	state  string
	head   int
	steps  int
	status domain.Status

	history       []domain.Snapshot
	recordHistory bool
	margin        int

	extractor unary.Extractor
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// New creates a machine for def, reset on an empty tape.
// The definition is trusted; validate it when loading.
func New(def *domain.Definition, opts ...Option) *Machine {
	m := &Machine{
		def:           def,
		recordHistory: true,
		margin:        domain.HistoryMargin,
		extractor:     unary.Fibonacci,
		logger:        logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset("")
	return m
}

// Reset loads input onto a fresh tape and returns the machine to its initial
// configuration. The history restarts with the step-0 snapshot.
func (m *Machine) Reset(input string) {
	m.tape = tape.New(input, m.def.Blank)
	m.state = m.def.Initial
	m.head = 0
	m.steps = 0
	m.status = domain.StatusRunning
	m.history = m.history[:0]
	m.record()
	m.logger.Debug("machine reset", "machine", m.def.Name, "input_len", len(input))
}

// Step executes one transition. It returns true iff the machine is still
// running afterwards.
//
// With no rule for (state, symbol) the machine halts without moving, and no
// step is counted. Otherwise the symbol is written, the state and head are
// updated, and entering an accepting or rejecting state halts the machine.
func (m *Machine) Step() bool {
	if m.status.Halted() {
		return false
	}

	read := m.tape.Read(m.head)
	rule, ok := m.def.Lookup(m.state, read)
	if !ok {
		if m.def.IsAccepting(m.state) {
			m.halt(domain.StatusAccepted)
		} else {
			m.halt(domain.StatusRejected)
		}
		return false
	}

	from := m.state
	m.tape.Write(m.head, rule.Write)
	m.state = rule.Next
	m.head += rule.Move.Offset()
	m.steps++
	m.record()

	if m.hooks.OnStep != nil {
		m.hooks.OnStep(&domain.StepEvent{
			Step:  m.steps,
			From:  from,
			To:    m.state,
			Read:  read,
			Write: rule.Write,
			Move:  rule.Move,
			Head:  m.head,
		})
	}

	switch {
	case m.def.IsAccepting(m.state):
		m.halt(domain.StatusAccepted)
	case m.def.IsRejecting(m.state):
		m.halt(domain.StatusRejected)
	}
	return !m.status.Halted()
}

// Run steps until the machine halts or has executed maxSteps steps in total,
// and reports whether it halted accepting. Exhausting the budget leaves the
// machine running and returns false.
func (m *Machine) Run(maxSteps int) bool {
	for m.steps < maxSteps && m.Step() {
	}
	return m.Accepted()
}

// RunContext is Run with cancellation. The context is polled every
// cancelCheckInterval steps; on cancellation the machine is left where it
// stopped and ctx.Err() is returned.
func (m *Machine) RunContext(ctx context.Context, maxSteps int) (bool, error) {
	for m.steps < maxSteps {
		if m.steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return m.Accepted(), err
			}
		}
		if !m.Step() {
			break
		}
	}
	return m.Accepted(), nil
}

func (m *Machine) halt(status domain.Status) {
	m.status = status
	m.logger.Debug("machine halted",
		"machine", m.def.Name,
		"state", m.state,
		"status", status,
		"steps", m.steps,
	)
	if m.hooks.OnHalt != nil {
		m.hooks.OnHalt(&domain.HaltEvent{State: m.state, Status: status, Steps: m.steps})
	}
}

func (m *Machine) record() {
	if !m.recordHistory {
		return
	}
	window, offset := m.tape.Render(m.margin)
	m.history = append(m.history, domain.Snapshot{
		Step:   m.steps,
		State:  m.state,
		Head:   m.head,
		Tape:   window,
		Offset: offset,
	})
}

// Result is the tape content with leading and trailing blanks removed.
func (m *Machine) Result() string {
	return m.tape.String()
}

// CleanResult applies the configured extractor (Fibonacci by default) to Result.
func (m *Machine) CleanResult() string {
	return m.extractor.Extract(m.Result(), m.def.Blank)
}

// History returns a copy of the recorded snapshots.
func (m *Machine) History() []domain.Snapshot {
	return slices.Clone(m.history)
}

// Render returns the current tape window and the position of its first cell.
func (m *Machine) Render() (string, int) {
	return m.tape.Render(m.margin)
}

// Definition returns the definition being interpreted.
func (m *Machine) Definition() *domain.Definition { return m.def }

// State returns the current control state.
func (m *Machine) State() string { return m.state }

// Head returns the current head position.
func (m *Machine) Head() int { return m.head }

// StepCount returns the number of executed transitions.
func (m *Machine) StepCount() int { return m.steps }

// Status returns the current halt classification.
func (m *Machine) Status() domain.Status { return m.status }

// Halted reports whether the machine has stopped.
func (m *Machine) Halted() bool { return m.status.Halted() }

// Accepted reports whether the machine halted in an accepting configuration.
func (m *Machine) Accepted() bool { return m.status == domain.StatusAccepted }

// Outcome packages the current configuration for callers outside the package.
func (m *Machine) Outcome(input string) domain.Outcome {
	clean := m.CleanResult()
	return domain.Outcome{
		Input:       input,
		Steps:       m.steps,
		State:       m.state,
		Status:      m.status,
		Accepted:    m.Accepted(),
		Result:      m.Result(),
		CleanResult: clean,
		Value:       unary.Decode(clean),
	}
}

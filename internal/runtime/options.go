package runtime

import (
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/unary"
)

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithHistory toggles snapshot recording (on by default). Long analysis runs
// turn it off to keep memory flat.
func WithHistory(enabled bool) Option {
	return func(m *Machine) {
		m.recordHistory = enabled
	}
}

// WithHistoryMargin sets how many blank cells surround the tape in snapshots.
func WithHistoryMargin(margin int) Option {
	return func(m *Machine) {
		m.margin = max(margin, 0)
	}
}

// WithExtractor replaces the post-processing used by CleanResult.
func WithExtractor(x unary.Extractor) Option {
	return func(m *Machine) {
		m.extractor = x
	}
}

package observability

import (
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// Combine fans each event out to every non-nil hook, in order.
func Combine(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	var onStep []func(*domain.StepEvent)
	var onHalt []func(*domain.HaltEvent)
	for _, h := range all {
		if h.OnStep != nil {
			onStep = append(onStep, h.OnStep)
		}
		if h.OnHalt != nil {
			onHalt = append(onHalt, h.OnHalt)
		}
	}

	var out domain.LifecycleHooks
	if len(onStep) > 0 {
		out.OnStep = func(e *domain.StepEvent) {
			for _, fn := range onStep {
				fn(e)
			}
		}
	}
	if len(onHalt) > 0 {
		out.OnHalt = func(e *domain.HaltEvent) {
			for _, fn := range onHalt {
				fn(e)
			}
		}
	}
	return out
}

// LogHooks logs halts at info level and, when debug is enabled on logger,
// every transition.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("step",
				"step", e.Step,
				"from", e.From,
				"to", e.To,
				"read", e.Read,
				"write", e.Write,
				"move", e.Move,
				"head", e.Head,
			)
		},
		OnHalt: func(e *domain.HaltEvent) {
			logger.Info("halt", "state", e.State, "status", e.Status, "steps", e.Steps)
		},
	}
}

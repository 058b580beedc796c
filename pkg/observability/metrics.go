package observability

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by machine hooks.
type Metrics struct {
	Steps    prometheus.Counter
	Halts    *prometheus.CounterVec
	RunSteps prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turing_steps_total",
			Help: "Total number of executed transitions",
		}),
		Halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_halts_total",
				Help: "Total number of halted runs by outcome",
			},
			[]string{"status"},
		),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "turing_run_steps",
			Help:    "Steps executed by each halted run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
	for _, c := range []prometheus.Collector{m.Steps, m.Halts, m.RunSteps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(*domain.StepEvent) {
			m.Steps.Inc()
		},
		OnHalt: func(e *domain.HaltEvent) {
			m.Halts.WithLabelValues(string(e.Status)).Inc()
			m.RunSteps.Observe(float64(e.Steps))
		},
	}
}

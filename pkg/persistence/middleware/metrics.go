package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts report store operations by outcome and times them.
type StoreMetrics struct {
	Ops      *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewStoreMetrics creates the collectors and registers them on reg.
func NewStoreMetrics(reg prometheus.Registerer) (*StoreMetrics, error) {
	m := &StoreMetrics{
		Ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_report_store_ops_total",
				Help: "Report store operations by operation and result",
			},
			[]string{"op", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "turing_report_store_duration_seconds",
				Help:    "Latency of report store operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{m.Ops, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware returns a store wrapper feeding these collectors.
func (m *StoreMetrics) Middleware() Middleware {
	return func(next ports.ReportStore) ports.ReportStore {
		return &metricsMiddleware{next: next, m: m}
	}
}

type metricsMiddleware struct {
	next ports.ReportStore
	m    *StoreMetrics
}

func (mw *metricsMiddleware) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case isNotFound(err):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	mw.m.Ops.WithLabelValues(op, result).Inc()
	mw.m.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (mw *metricsMiddleware) Save(ctx context.Context, id string, report *domain.Report) error {
	start := time.Now()
	err := mw.next.Save(ctx, id, report)
	mw.observe("save", start, err)
	return err
}

func (mw *metricsMiddleware) Load(ctx context.Context, id string) (*domain.Report, error) {
	start := time.Now()
	report, err := mw.next.Load(ctx, id)
	mw.observe("load", start, err)
	return report, err
}

func (mw *metricsMiddleware) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := mw.next.Delete(ctx, id)
	mw.observe("delete", start, err)
	return err
}

func (mw *metricsMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := mw.next.List(ctx)
	mw.observe("list", start, err)
	return ids, err
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrReportNotFound)
}

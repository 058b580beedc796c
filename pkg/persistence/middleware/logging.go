package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.ReportStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation: debug on success, warn
// on failure. A missing report is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.ReportStore) ports.ReportStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(op, id string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if id != "" {
		attrs = append(attrs, "id", id)
	}
	if err != nil && !isNotFound(err) {
		m.logger.Warn("report store", append(attrs, "err", err)...)
		return
	}
	m.logger.Debug("report store", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, id string, report *domain.Report) error {
	start := time.Now()
	err := m.next.Save(ctx, id, report)
	m.log("save", id, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, id string) (*domain.Report, error) {
	start := time.Now()
	report, err := m.next.Load(ctx, id)
	m.log("load", id, start, err)
	return report, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := m.next.Delete(ctx, id)
	m.log("delete", id, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := m.next.List(ctx)
	m.log("list", "", start, err)
	return ids, err
}

package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ReportStore defines the interface for persisting analysis reports.
type ReportStore interface {
	// Save persists the report under id, replacing any previous one.
	Save(ctx context.Context, id string, report *domain.Report) error

	// Load retrieves the report stored under id.
	// Returns domain.ErrReportNotFound if it does not exist.
	Load(ctx context.Context, id string) (*domain.Report, error)

	// Delete removes the report. Deleting a missing report is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored report IDs.
	List(ctx context.Context) ([]string, error)
}

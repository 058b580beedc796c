package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunReportStoreContract runs a suite of tests to verify that a ReportStore
// implementation adheres to the defined interface contract.
func RunReportStoreContract(t *testing.T, store ReportStore) {
	ctx := context.Background()
	reportID := "contract-" + time.Now().Format("20060102150405")

	sample := func(id string) *domain.Report {
		return &domain.Report{
			ID:        id,
			Machine:   "fibonacci",
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Measurements: []domain.Measurement{
				{N: 0, Steps: 1, Value: 0, Repetitions: 3, Avg: time.Microsecond, Completed: true},
				{N: 1, Steps: 10, Value: 1, Repetitions: 3, Avg: 2 * time.Microsecond, Completed: true},
			},
			Ratios: []float64{10},
			Fit:    &domain.Fit{Coefficient: 1.5, Base: 2.6, RSquared: 0.99, Points: 1},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		report := sample(reportID)

		err := store.Save(ctx, reportID, report)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, reportID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, report.Machine, loaded.Machine)
		assert.True(t, report.CreatedAt.Equal(loaded.CreatedAt))
		assert.Equal(t, report.Measurements, loaded.Measurements)
		assert.Equal(t, report.Ratios, loaded.Ratios)
		require.NotNil(t, loaded.Fit)
		assert.InDelta(t, 2.6, loaded.Fit.Base, 1e-9)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+reportID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, reportID, sample(reportID))
		require.NoError(t, err)

		err = store.Delete(ctx, reportID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, reportID)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, "Load after Delete should return ErrReportNotFound")

		assert.NoError(t, store.Delete(ctx, reportID), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := reportID + "-1"
		id2 := reportID + "-2"
		require.NoError(t, store.Save(ctx, id1, sample(id1)))
		require.NoError(t, store.Save(ctx, id2, sample(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}

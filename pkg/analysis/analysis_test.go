package analysis_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/analysis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fibonacciSteps = []int{1, 10, 36, 84, 162, 312, 614, 1286, 2860, 6716, 16398, 41120, 104854}

func simulator(t *testing.T) *turing.Simulator {
	t.Helper()
	sim, err := turing.New()
	require.NoError(t, err)
	return sim
}

func TestMeasure(t *testing.T) {
	m, err := analysis.Measure(context.Background(), simulator(t), 5, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 5, m.N)
	assert.Equal(t, 312, m.Steps)
	assert.Equal(t, 5, m.Value)
	assert.Equal(t, 2, m.Repetitions)
	assert.True(t, m.Completed)
	assert.LessOrEqual(t, m.Min, m.Avg)
	assert.LessOrEqual(t, m.Avg, m.Max)
}

func TestMeasure_BudgetExhausted(t *testing.T) {
	m, err := analysis.Measure(context.Background(), simulator(t), 5, 1, 100)
	require.NoError(t, err)
	assert.False(t, m.Completed)
	assert.Equal(t, 100, m.Steps)
}

func TestRepetitions(t *testing.T) {
	assert.Equal(t, 3, analysis.Repetitions(0))
	assert.Equal(t, 3, analysis.Repetitions(10))
	assert.Equal(t, 2, analysis.Repetitions(11))
	assert.Equal(t, 2, analysis.Repetitions(12))
	assert.Equal(t, 1, analysis.Repetitions(13))
}

func TestAdaptive(t *testing.T) {
	var seen []int
	ms, err := analysis.Adaptive(context.Background(), simulator(t), analysis.Config{
		MaxN:      6,
		TimeLimit: time.Minute,
		Progress:  func(m domain.Measurement) { seen = append(seen, m.N) },
	})
	require.NoError(t, err)
	require.Len(t, ms, 7)

	for n, m := range ms {
		assert.Equal(t, n, m.N)
		assert.Equal(t, fibonacciSteps[n], m.Steps, "n=%d", n)
		assert.True(t, m.Completed)
		assert.Equal(t, analysis.Repetitions(n), m.Repetitions)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, seen)
}

func TestAdaptive_StopsAtTimeLimit(t *testing.T) {
	ms, err := analysis.Adaptive(context.Background(), simulator(t), analysis.Config{
		MaxN:      20,
		TimeLimit: time.Nanosecond,
	})
	require.NoError(t, err)
	assert.Len(t, ms, 1, "the first measurement already exceeds a 1ns budget")
}

func TestAdaptive_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analysis.Adaptive(ctx, simulator(t), analysis.Config{MaxN: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatch(t *testing.T) {
	sim := simulator(t)
	ns := []int{8, 0, 3, 5, 1, 7}

	ms, err := analysis.Batch(context.Background(), sim.Definition(), ns, 3, 0)
	require.NoError(t, err)
	require.Len(t, ms, len(ns))

	for i, n := range ns {
		assert.Equal(t, n, ms[i].N)
		assert.Equal(t, fibonacciSteps[n], ms[i].Steps)
		assert.True(t, ms[i].Completed)
	}
	assert.Equal(t, 21, ms[0].Value)
}

func TestBatch_Budget(t *testing.T) {
	sim := simulator(t)
	ms, err := analysis.Batch(context.Background(), sim.Definition(), []int{2, 6}, 0, 50)
	require.NoError(t, err)

	assert.True(t, ms[0].Completed)
	assert.False(t, ms[1].Completed)
	assert.Equal(t, 50, ms[1].Steps)
}

func TestRatios(t *testing.T) {
	ms := []domain.Measurement{
		{N: 0, Steps: 0, Completed: true},
		{N: 1, Steps: 10, Completed: true},
		{N: 2, Steps: 25, Completed: true},
		{N: 3, Steps: 50, Completed: true},
		{N: 4, Steps: 80, Completed: false},
		{N: 5, Steps: 200, Completed: true},
	}
	assert.Equal(t, []float64{2.5, 2}, analysis.Ratios(ms))
}

func TestFitExponential_Exact(t *testing.T) {
	var ms []domain.Measurement
	for n := 0; n <= 8; n++ {
		ms = append(ms, domain.Measurement{N: n, Steps: 3 << n, Completed: true})
	}

	fit, err := analysis.FitExponential(ms)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Base, 1e-9)
	assert.InDelta(t, 3.0, fit.Coefficient, 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	assert.Equal(t, 8, fit.Points, "n=0 is excluded")
}

func TestFitExponential_Fibonacci(t *testing.T) {
	var ms []domain.Measurement
	for n, steps := range fibonacciSteps {
		ms = append(ms, domain.Measurement{N: n, Steps: steps, Completed: true})
	}

	fit, err := analysis.FitExponential(ms)
	require.NoError(t, err)
	assert.Greater(t, fit.Base, 2.0)
	assert.Less(t, fit.Base, (1+math.Sqrt(5))/2*(1+math.Sqrt(5))/2)
	assert.Greater(t, fit.RSquared, 0.95)

	ratios := analysis.Ratios(ms)
	assert.InDelta(t, 2.55, ratios[len(ratios)-1], 0.05)
}

func TestFitExponential_NotEnoughData(t *testing.T) {
	_, err := analysis.FitExponential([]domain.Measurement{
		{N: 0, Steps: 1, Completed: true},
		{N: 1, Steps: 10, Completed: true},
		{N: 2, Steps: 36, Completed: false},
	})
	assert.ErrorIs(t, err, analysis.ErrNotEnoughData)
}

func TestNewReport(t *testing.T) {
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	ms := []domain.Measurement{
		{N: 1, Steps: 10, Completed: true},
		{N: 2, Steps: 36, Completed: true},
		{N: 3, Steps: 84, Completed: true},
	}

	report := analysis.NewReport("fib", ms, now)
	assert.Equal(t, "analysis_20260506_070809", report.ID)
	assert.Equal(t, "fib", report.Machine)
	assert.Equal(t, now, report.CreatedAt)
	assert.Len(t, report.Ratios, 2)
	require.NotNil(t, report.Fit)
	assert.Equal(t, 3, report.Fit.Points)

	assert.Nil(t, analysis.NewReport("fib", ms[:1], now).Fit)
}

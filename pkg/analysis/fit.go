package analysis

import (
	"errors"
	"math"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"gonum.org/v1/gonum/stat"
)

// ErrNotEnoughData is returned when a fit has fewer than two usable points.
var ErrNotEnoughData = errors.New("not enough completed measurements")

// Ratios returns steps(n)/steps(n-1) over the leading run of completed
// measurements.
func Ratios(ms []domain.Measurement) []float64 {
	var out []float64
	for i := 1; i < len(ms); i++ {
		prev, cur := ms[i-1], ms[i]
		if !prev.Completed || !cur.Completed {
			break
		}
		if prev.Steps == 0 {
			continue
		}
		out = append(out, float64(cur.Steps)/float64(prev.Steps))
	}
	return out
}

// FitExponential fits steps ≈ a·bⁿ by least squares on ln(steps). The n=0
// point (a single accepting step) is excluded, as are incomplete runs.
func FitExponential(ms []domain.Measurement) (*domain.Fit, error) {
	var xs, ys []float64
	for _, m := range ms {
		if m.N < 1 || !m.Completed || m.Steps <= 0 {
			continue
		}
		xs = append(xs, float64(m.N))
		ys = append(ys, math.Log(float64(m.Steps)))
	}
	if len(xs) < 2 {
		return nil, ErrNotEnoughData
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return &domain.Fit{
		Coefficient: math.Exp(alpha),
		Base:        math.Exp(beta),
		RSquared:    stat.RSquared(xs, ys, nil, alpha, beta),
		Points:      len(xs),
	}, nil
}

// ReportID is the default identifier of a report created at t.
func ReportID(t time.Time) string {
	return "analysis_" + t.Format("20060102_150405")
}

// NewReport bundles measurements with their ratios and, when possible, a fit.
func NewReport(machine string, ms []domain.Measurement, now time.Time) *domain.Report {
	report := &domain.Report{
		ID:           ReportID(now),
		Machine:      machine,
		CreatedAt:    now,
		Measurements: ms,
		Ratios:       Ratios(ms),
	}
	if fit, err := FitExponential(ms); err == nil {
		report.Fit = fit
	}
	return report
}

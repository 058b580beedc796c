package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

// ReportTable renders the measurements as a bordered table with the
// columns n, F(n), steps, ratio, time and status.
func ReportTable(r *domain.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("n", "F(n)", "steps", "ratio", "time", "status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		})

	for i, m := range r.Measurements {
		ratio := "-"
		if i > 0 {
			prev := r.Measurements[i-1]
			if prev.Completed && m.Completed && prev.Steps > 0 {
				ratio = fmt.Sprintf("%.3f", float64(m.Steps)/float64(prev.Steps))
			}
		}
		status := "OK"
		if !m.Completed {
			status = "TIMEOUT"
		}
		t.Row(strconv.Itoa(m.N), strconv.Itoa(m.Value), strconv.Itoa(m.Steps), ratio, formatDuration(m.Avg), status)
	}
	return t.String()
}

// PrintReport prints the measurement table and, when present, the fit.
func (p *Printer) PrintReport(r *domain.Report) {
	fmt.Fprintln(p.w, ReportTable(r))
	fmt.Fprintln(p.w)
	if r.Fit == nil {
		fmt.Fprintln(p.w, "Not enough completed measurements for a fit.")
		return
	}
	fmt.Fprintln(p.w, p.accent("Exponential fit"))
	fmt.Fprintf(p.w, "  steps ≈ %.4f · %.4f^n\n", r.Fit.Coefficient, r.Fit.Base)
	fmt.Fprintf(p.w, "  R² = %.4f over %d points\n", r.Fit.RSquared, r.Fit.Points)
	if len(r.Ratios) > 0 {
		fmt.Fprintf(p.w, "  last ratio %.3f (φ² ≈ 2.618)\n", r.Ratios[len(r.Ratios)-1])
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}

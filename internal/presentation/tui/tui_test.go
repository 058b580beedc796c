package tui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSnapshot(t *testing.T) {
	got := FormatSnapshot(domain.Snapshot{Step: 3, State: "qS1", Head: 3, Tape: "___DC#___", Offset: -3})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Step 0003 | State: qS1             | Head:   3", lines[0])
	assert.Equal(t, "          | Tape:  [___DC#___]", lines[1])
	assert.Equal(t, "          |        [      ^]", lines[2])
}

func snapshots(n int) []domain.Snapshot {
	out := make([]domain.Snapshot, n)
	for i := range out {
		out[i] = domain.Snapshot{Step: i, State: fmt.Sprintf("q%d", i), Tape: "_1_", Offset: -1}
	}
	return out
}

func TestPrintHistory_Short(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(snapshots(4))

	out := buf.String()
	assert.NotContains(t, out, "Showing")
	for i := range 4 {
		assert.Contains(t, out, fmt.Sprintf("Step %04d", i))
	}
	assert.Contains(t, out, "Total steps: 3")
}

func TestPrintHistory_Long(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(snapshots(100))

	out := buf.String()
	assert.Contains(t, out, "Showing 30 of 100 configurations")
	assert.Contains(t, out, "Step 0014")
	assert.NotContains(t, out, "Step 0015")
	assert.NotContains(t, out, "Step 0084")
	assert.Contains(t, out, "Step 0085")
	assert.Contains(t, out, "Step 0099")
	assert.Contains(t, out, "Total steps: 99")
	assert.Equal(t, 30, strings.Count(out, "Step 0"))
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHistory(nil)
	assert.Equal(t, "No configurations recorded.\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(domain.Outcome{
		Input: "11111", Steps: 312, State: "qaccept", Accepted: true,
		CleanResult: "11111", Value: 5,
	})

	out := buf.String()
	assert.Contains(t, out, "RUN SUMMARY")
	assert.Contains(t, out, "Input (n):     '11111' (5 in unary)")
	assert.Contains(t, out, "Total steps:   312")
	assert.Contains(t, out, "Final state:   qaccept")
	assert.Contains(t, out, "Accepted:      yes")
	assert.Contains(t, out, "Result:        '11111' (F(5) = 5)")
}

func TestPrintReport(t *testing.T) {
	report := &domain.Report{
		Measurements: []domain.Measurement{
			{N: 0, Value: 0, Steps: 1, Avg: 2 * time.Microsecond, Completed: true},
			{N: 1, Value: 1, Steps: 10, Avg: 5 * time.Microsecond, Completed: true},
			{N: 2, Value: 1, Steps: 36, Avg: 3 * time.Millisecond, Completed: true},
			{N: 3, Value: 0, Steps: 50, Avg: 2 * time.Second, Completed: false},
		},
		Ratios: []float64{10, 3.6},
		Fit:    &domain.Fit{Coefficient: 2.5, Base: 3.6, RSquared: 1, Points: 2},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(report)

	out := buf.String()
	assert.Contains(t, out, "F(n)")
	assert.Contains(t, out, "3.600")
	assert.Contains(t, out, "TIMEOUT")
	assert.Contains(t, out, "2.0µs")
	assert.Contains(t, out, "3.00ms")
	assert.Contains(t, out, "2.000s")
	assert.Contains(t, out, "steps ≈ 2.5000 · 3.6000^n")
	assert.Contains(t, out, "R² = 1.0000 over 2 points")
	assert.Contains(t, out, "last ratio 3.600")
}

func TestPrintReport_NoFit(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(&domain.Report{
		Measurements: []domain.Measurement{{N: 0, Steps: 1, Completed: true}},
	})
	assert.Contains(t, buf.String(), "Not enough completed measurements")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Equal(t, len(bannerLines)+2, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "|___/")
}

func TestPlainRenderer(t *testing.T) {
	out, err := PlainRenderer("# Title")
	require.NoError(t, err)
	assert.Equal(t, "# Title", out)
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/muesli/termenv"
)

const (
	// fullHistoryLimit is the largest history printed in full.
	fullHistoryLimit = 50
	// historyEdge is how many snapshots are kept from each end of a long history.
	historyEdge = 15

	ruleWidth = 60
)

// FormatSnapshot renders one configuration as three lines: the header, the
// tape window and a caret under the head.
func FormatSnapshot(snap domain.Snapshot) string {
	rel := max(snap.Head-snap.Offset, 0)
	return fmt.Sprintf("Step %04d | State: %-15s | Head: %3d\n", snap.Step, snap.State, snap.Head) +
		fmt.Sprintf("          | Tape:  [%s]\n", snap.Tape) +
		fmt.Sprintf("          |        [%s^]", strings.Repeat(" ", rel))
}

// Printer writes traces and summaries, styling them when the writer is a
// terminal that supports colour.
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w)}
}

func (p *Printer) accent(s string) termenv.Style {
	return p.out.String(s).Foreground(p.out.Color("#a78bfa")).Bold()
}

func (p *Printer) status(ok bool, s string) termenv.Style {
	color := "#f472b6"
	if ok {
		color = "#34d399"
	}
	return p.out.String(s).Foreground(p.out.Color(color))
}

func (p *Printer) rule(ch string) {
	fmt.Fprintln(p.w, strings.Repeat(ch, ruleWidth))
}

// PrintHistory prints every snapshot when there are few of them, otherwise
// the first and last fifteen, followed by the total step count.
func (p *Printer) PrintHistory(history []domain.Snapshot) {
	if len(history) == 0 {
		fmt.Fprintln(p.w, "No configurations recorded.")
		return
	}

	shown := history
	if len(history) > fullHistoryLimit {
		shown = append(history[:historyEdge:historyEdge], history[len(history)-historyEdge:]...)
		fmt.Fprintln(p.w)
		p.rule("=")
		fmt.Fprintln(p.w, p.accent(fmt.Sprintf("Showing %d of %d configurations", len(shown), len(history))))
		p.rule("=")
		fmt.Fprintln(p.w)
	}

	for i, snap := range shown {
		fmt.Fprintln(p.w, FormatSnapshot(snap))
		if i < len(shown)-1 {
			fmt.Fprintln(p.w, strings.Repeat("-", 50))
		}
	}

	fmt.Fprintln(p.w)
	p.rule("=")
	fmt.Fprintf(p.w, "Total steps: %d\n", history[len(history)-1].Step)
}

// PrintSummary prints the outcome of one run.
func (p *Printer) PrintSummary(o domain.Outcome) {
	n := len(o.Input)
	accepted := "no"
	if o.Accepted {
		accepted = "yes"
	}

	fmt.Fprintln(p.w)
	p.rule("=")
	fmt.Fprintln(p.w, p.accent("RUN SUMMARY"))
	p.rule("=")
	fmt.Fprintf(p.w, "Input (n):     '%s' (%d in unary)\n", o.Input, n)
	fmt.Fprintf(p.w, "Total steps:   %d\n", o.Steps)
	fmt.Fprintf(p.w, "Final state:   %s\n", o.State)
	fmt.Fprintf(p.w, "Accepted:      %s\n", p.status(o.Accepted, accepted))
	fmt.Fprintf(p.w, "Result:        '%s' (F(%d) = %d)\n", o.CleanResult, n, o.Value)
	p.rule("=")
	fmt.Fprintln(p.w)
}

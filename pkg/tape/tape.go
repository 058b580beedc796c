// Package tape implements the unbounded, two-way, sparse tape of a Turing machine.
package tape

import (
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape stores only non-blank cells; an absent position reads as blank.
type Tape struct {
	blank domain.Symbol
	cells map[int]domain.Symbol
}

// New creates a tape seeded with input, written left to right from position 0.
func New(input string, blank domain.Symbol) *Tape {
	t := &Tape{
		blank: blank,
		cells: make(map[int]domain.Symbol, len(input)),
	}
	pos := 0
	for _, r := range input {
		t.Write(pos, domain.Symbol(r))
		pos++
	}
	return t
}

// Blank returns the blank symbol of the tape.
func (t *Tape) Blank() domain.Symbol {
	return t.blank
}

// Read returns the symbol at pos, or blank if nothing is stored there.
func (t *Tape) Read(pos int) domain.Symbol {
	if sym, ok := t.cells[pos]; ok {
		return sym
	}
	return t.blank
}

// Write stores sym at pos. Writing blank removes the cell.
func (t *Tape) Write(pos int, sym domain.Symbol) {
	if sym == t.blank {
		delete(t.cells, pos)
		return
	}
	t.cells[pos] = sym
}

// Len returns the number of stored (non-blank) cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Bounds returns the smallest and largest occupied positions.
// An empty tape reports (0, 0), which is not an occupied cell.
func (t *Tape) Bounds() (int, int) {
	if len(t.cells) == 0 {
		return 0, 0
	}
	first := true
	var lo, hi int
	for pos := range t.cells {
		if first {
			lo, hi = pos, pos
			first = false
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return lo, hi
}

// Render returns the contiguous text of [min-margin, max+margin] and the
// absolute position of its first character. An empty tape renders
// 2*margin+1 blanks starting at -margin.
func (t *Tape) Render(margin int) (string, int) {
	margin = max(margin, 0)
	if len(t.cells) == 0 {
		return strings.Repeat(t.blank.String(), 2*margin+1), -margin
	}

	lo, hi := t.Bounds()
	start, end := lo-margin, hi+margin

	var sb strings.Builder
	sb.Grow(end - start + 1)
	for pos := start; pos <= end; pos++ {
		sb.WriteRune(rune(t.Read(pos)))
	}
	return sb.String(), start
}

// String renders the occupied span with blanks trimmed, or the blank symbol
// itself when the tape is empty.
func (t *Tape) String() string {
	content, _ := t.Render(0)
	trimmed := strings.Trim(content, t.blank.String())
	if trimmed == "" {
		return t.blank.String()
	}
	return trimmed
}

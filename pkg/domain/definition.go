package domain

import (
	"slices"
	"sort"
)

// Rule is the right-hand side of a transition: what to do after reading a symbol.
type Rule struct {
	Next  string    `json:"next"`
	Write Symbol    `json:"write"`
	Move  Direction `json:"move"`
}

// Transition is a flattened (state, symbol) -> Rule entry of the table.
type Transition struct {
	From string
	Read Symbol
	Rule
}

// Definition describes a deterministic single-tape Turing machine.
// Loaders are responsible for validating it; the interpreter trusts it.
type Definition struct {
	Name        string
	Description string

	States    []string
	Initial   string
	Accepting []string
	Rejecting []string

	Alphabet []Symbol
	Blank    Symbol

	// Rules is the transition table keyed by state, then by the symbol under the head.
	Rules map[string]map[Symbol]Rule

	// Presentation metadata (optional).
	Legend            map[Symbol]string
	StateDescriptions map[string]string
}

// Lookup returns the rule for (state, symbol), if any.
func (d *Definition) Lookup(state string, sym Symbol) (Rule, bool) {
	bySymbol, ok := d.Rules[state]
	if !ok {
		return Rule{}, false
	}
	rule, ok := bySymbol[sym]
	return rule, ok
}

// HasState reports whether state is declared.
func (d *Definition) HasState(state string) bool {
	return slices.Contains(d.States, state)
}

// IsAccepting reports whether state belongs to the accepting set.
func (d *Definition) IsAccepting(state string) bool {
	return slices.Contains(d.Accepting, state)
}

// IsRejecting reports whether state belongs to the rejecting set.
func (d *Definition) IsRejecting(state string) bool {
	return slices.Contains(d.Rejecting, state)
}

// HasSymbol reports whether sym belongs to the tape alphabet.
func (d *Definition) HasSymbol(sym Symbol) bool {
	return slices.Contains(d.Alphabet, sym)
}

// TransitionCount returns the number of (state, symbol) entries in the table.
func (d *Definition) TransitionCount() int {
	total := 0
	for _, bySymbol := range d.Rules {
		total += len(bySymbol)
	}
	return total
}

// Transitions flattens the table in a stable order: declared state order,
// then alphabet order. States or symbols missing from the declarations sort last.
func (d *Definition) Transitions() []Transition {
	stateRank := rankOf(d.States)
	symbolRank := make(map[Symbol]int, len(d.Alphabet))
	for i, s := range d.Alphabet {
		symbolRank[s] = i
	}

	out := make([]Transition, 0, d.TransitionCount())
	for from, bySymbol := range d.Rules {
		for read, rule := range bySymbol {
			out = append(out, Transition{From: from, Read: read, Rule: rule})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(stateRank, out[i].From), rank(stateRank, out[j].From)
		if ri != rj {
			return ri < rj
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		si, ok := symbolRank[out[i].Read]
		if !ok {
			si = len(symbolRank)
		}
		sj, ok := symbolRank[out[j].Read]
		if !ok {
			sj = len(symbolRank)
		}
		if si != sj {
			return si < sj
		}
		return out[i].Read < out[j].Read
	})
	return out
}

func rankOf(values []string) map[string]int {
	m := make(map[string]int, len(values))
	for i, v := range values {
		if _, seen := m[v]; !seen {
			m[v] = i
		}
	}
	return m
}

func rank(m map[string]int, key string) int {
	if r, ok := m[key]; ok {
		return r
	}
	return len(m)
}

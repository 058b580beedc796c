package definition

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/schema"
)

// Validate checks the internal consistency of a definition: every state and
// symbol referenced by the initial state, the halting sets and the rules must
// be declared. All problems are returned together.
func Validate(def *domain.Definition) error {
	var errs []error

	if len(def.States) == 0 {
		errs = append(errs, errors.New("states: at least one state is required"))
	}
	for i, s := range def.States {
		if slices.Index(def.States, s) != i {
			errs = append(errs, fmt.Errorf("states: %q declared twice", s))
		}
	}

	if !def.HasState(def.Initial) {
		errs = append(errs, fmt.Errorf("initial_state %q: %w", def.Initial, domain.ErrUnknownState))
	}
	for _, s := range def.Accepting {
		if !def.HasState(s) {
			errs = append(errs, fmt.Errorf("accepting_states %q: %w", s, domain.ErrUnknownState))
		}
	}
	for _, s := range def.Rejecting {
		if !def.HasState(s) {
			errs = append(errs, fmt.Errorf("rejecting_states %q: %w", s, domain.ErrUnknownState))
		}
		if def.IsAccepting(s) {
			errs = append(errs, fmt.Errorf("state %q is both accepting and rejecting", s))
		}
	}

	for i, sym := range def.Alphabet {
		if slices.Index(def.Alphabet, sym) != i {
			errs = append(errs, fmt.Errorf("tape_alphabet: %q declared twice", sym))
		}
	}
	if !def.HasSymbol(def.Blank) {
		errs = append(errs, fmt.Errorf("blank_symbol %q: %w (not in tape_alphabet)", def.Blank, domain.ErrUnknownSymbol))
	}

	for _, tr := range def.Transitions() {
		at := fmt.Sprintf("transitions.%s.%s", tr.From, tr.Read)
		if !def.HasState(tr.From) {
			errs = append(errs, fmt.Errorf("%s: source state: %w", at, domain.ErrUnknownState))
		}
		if !def.HasSymbol(tr.Read) {
			errs = append(errs, fmt.Errorf("%s: read symbol: %w", at, domain.ErrUnknownSymbol))
		}
		if !def.HasState(tr.Next) {
			errs = append(errs, fmt.Errorf("%s: next state %q: %w", at, tr.Next, domain.ErrUnknownState))
		}
		if !def.HasSymbol(tr.Write) {
			errs = append(errs, fmt.Errorf("%s: write symbol %q: %w", at, tr.Write, domain.ErrUnknownSymbol))
		}
		if tr.Move < domain.Left || tr.Move > domain.Right {
			errs = append(errs, fmt.Errorf("%s: move %d: %w", at, tr.Move, domain.ErrInvalidDirection))
		}
	}

	return schema.Join(errs...)
}

package definition

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/schema"
)

// Compile turns a decoded Document into a validated Definition.
func Compile(doc *Document) (*domain.Definition, error) {
	var errs []error
	symbol := func(key, raw string) domain.Symbol {
		sym, err := domain.ParseSymbol(raw)
		if err != nil {
			errs = append(errs, &schema.ValidationError{Key: key, Reason: err.Error(), Value: raw})
		}
		return sym
	}

	def := &domain.Definition{
		Name:        doc.Name,
		Description: doc.Description,
		States:      slices.Clone(doc.States),
		Initial:     doc.InitialState,
		Accepting:   slices.Clone(doc.AcceptingStates),
		Rejecting:   slices.Clone(doc.RejectingStates),
		Rules:       make(map[string]map[domain.Symbol]domain.Rule, len(doc.Transitions)),
	}

	for i, raw := range doc.TapeAlphabet {
		def.Alphabet = append(def.Alphabet, symbol(fmt.Sprintf("tape_alphabet[%d]", i), raw))
	}
	def.Blank = symbol("blank_symbol", doc.BlankSymbol)

	for _, state := range slices.Sorted(maps.Keys(doc.Transitions)) {
		bySymbol := make(map[domain.Symbol]domain.Rule, len(doc.Transitions[state]))
		for _, rawRead := range slices.Sorted(maps.Keys(doc.Transitions[state])) {
			key := fmt.Sprintf("transitions.%s.%s", state, rawRead)
			read := symbol(key, rawRead)
			triple := doc.Transitions[state][rawRead]
			if len(triple) != 3 {
				errs = append(errs, &schema.ValidationError{
					Key:    key,
					Reason: fmt.Sprintf("expected [next, write, move], got %d elements", len(triple)),
					Value:  triple,
				})
				continue
			}
			move, err := domain.ParseDirection(triple[2])
			if err != nil {
				errs = append(errs, &schema.ValidationError{Key: key, Reason: err.Error(), Value: triple[2]})
			}
			bySymbol[read] = domain.Rule{
				Next:  triple[0],
				Write: symbol(key, triple[1]),
				Move:  move,
			}
		}
		def.Rules[state] = bySymbol
	}

	if len(doc.SymbolLegend) > 0 {
		def.Legend = make(map[domain.Symbol]string, len(doc.SymbolLegend))
		for _, raw := range slices.Sorted(maps.Keys(doc.SymbolLegend)) {
			def.Legend[symbol("symbol_legend."+raw, raw)] = doc.SymbolLegend[raw]
		}
	}
	if len(doc.StateDescriptions) > 0 {
		def.StateDescriptions = maps.Clone(doc.StateDescriptions)
	}

	if err := schema.Join(errs...); err != nil {
		return nil, err
	}
	if err := Validate(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Encode is the inverse of Compile.
func Encode(def *domain.Definition) *Document {
	doc := &Document{
		Name:            def.Name,
		Description:     def.Description,
		States:          slices.Clone(def.States),
		InitialState:    def.Initial,
		AcceptingStates: slices.Clone(def.Accepting),
		RejectingStates: slices.Clone(def.Rejecting),
		BlankSymbol:     def.Blank.String(),
		Transitions:     make(map[string]map[string][]string, len(def.Rules)),
	}
	if doc.AcceptingStates == nil {
		doc.AcceptingStates = []string{}
	}
	for _, sym := range def.Alphabet {
		doc.TapeAlphabet = append(doc.TapeAlphabet, sym.String())
	}
	for _, tr := range def.Transitions() {
		if doc.Transitions[tr.From] == nil {
			doc.Transitions[tr.From] = make(map[string][]string)
		}
		doc.Transitions[tr.From][tr.Read.String()] = []string{tr.Next, tr.Write.String(), tr.Move.String()}
	}
	if len(def.Legend) > 0 {
		doc.SymbolLegend = make(map[string]string, len(def.Legend))
		for sym, text := range def.Legend {
			doc.SymbolLegend[sym.String()] = text
		}
	}
	if len(def.StateDescriptions) > 0 {
		doc.StateDescriptions = maps.Clone(def.StateDescriptions)
	}
	return doc
}

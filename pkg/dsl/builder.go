package dsl

import (
	"fmt"
	"slices"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
)

// Builder manages the machine construction.
type Builder struct {
	name        string
	description string
	blank       domain.Symbol
	symbols     []domain.Symbol
	legend      map[domain.Symbol]string
	initial     string
	order       []string
	states      map[string]*StateBuilder
}

// New creates a new machine builder with the default blank symbol.
func New(name string) *Builder {
	return &Builder{
		name:   name,
		blank:  domain.DefaultBlank,
		states: make(map[string]*StateBuilder),
	}
}

// Describe sets the machine description.
func (b *Builder) Describe(text string) *Builder {
	b.description = text
	return b
}

// Blank overrides the blank symbol.
func (b *Builder) Blank(sym domain.Symbol) *Builder {
	b.blank = sym
	return b
}

// Symbols declares alphabet symbols that no rule mentions.
func (b *Builder) Symbols(syms ...domain.Symbol) *Builder {
	b.symbols = append(b.symbols, syms...)
	return b
}

// Legend documents the meaning of a symbol.
func (b *Builder) Legend(sym domain.Symbol, meaning string) *Builder {
	if b.legend == nil {
		b.legend = make(map[domain.Symbol]string)
	}
	b.legend[sym] = meaning
	return b
}

// Add declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(state string) *StateBuilder {
	if sb, ok := b.states[state]; ok {
		return sb
	}
	sb := &StateBuilder{name: state, builder: b}
	b.states[state] = sb
	b.order = append(b.order, state)
	return sb
}

// Build assembles and validates the definition.
func (b *Builder) Build() (*domain.Definition, error) {
	def := &domain.Definition{
		Name:        b.name,
		Description: b.description,
		States:      slices.Clone(b.order),
		Initial:     b.initial,
		Blank:       b.blank,
		Rules:       make(map[string]map[domain.Symbol]domain.Rule),
		Legend:      b.legend,
	}
	if def.Initial == "" && len(b.order) > 0 {
		def.Initial = b.order[0]
	}

	addSymbol := func(sym domain.Symbol) {
		if !slices.Contains(def.Alphabet, sym) {
			def.Alphabet = append(def.Alphabet, sym)
		}
	}
	addSymbol(b.blank)
	for _, sym := range b.symbols {
		addSymbol(sym)
	}

	for _, name := range b.order {
		sb := b.states[name]
		switch {
		case sb.accepting:
			def.Accepting = append(def.Accepting, name)
		case sb.rejecting:
			def.Rejecting = append(def.Rejecting, name)
		}
		if sb.description != "" {
			if def.StateDescriptions == nil {
				def.StateDescriptions = make(map[string]string)
			}
			def.StateDescriptions[name] = sb.description
		}
		for _, r := range sb.rules {
			addSymbol(r.read)
			addSymbol(r.Write)
			if def.Rules[name] == nil {
				def.Rules[name] = make(map[domain.Symbol]domain.Rule)
			}
			if _, dup := def.Rules[name][r.read]; dup {
				return nil, fmt.Errorf("state %s: two rules for symbol %q", name, r.read)
			}
			def.Rules[name][r.read] = r.Rule
		}
	}

	if err := definition.Validate(def); err != nil {
		return nil, fmt.Errorf("machine %s: %w", b.name, err)
	}
	return def, nil
}

// Loader builds the definition and serves it from a memory loader under
// "<name>.json".
func (b *Builder) Loader() (*memory.Loader, error) {
	def, err := b.Build()
	if err != nil {
		return nil, err
	}
	loader, err := memory.NewFromDefinitions(def)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return loader, nil
}

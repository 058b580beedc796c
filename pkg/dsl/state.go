package dsl

import "github.com/aretw0/turing/pkg/domain"

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name        string
	description string
	accepting   bool
	rejecting   bool
	rules       []rule
	builder     *Builder
}

type rule struct {
	read domain.Symbol
	domain.Rule
}

// On adds the transition taken when the head reads sym in this state.
func (s *StateBuilder) On(read domain.Symbol, next string, write domain.Symbol, move domain.Direction) *StateBuilder {
	s.rules = append(s.rules, rule{
		read: read,
		Rule: domain.Rule{Next: next, Write: write, Move: move},
	})
	return s
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accepting = true
	s.rejecting = false
	return s
}

// Reject marks the state as rejecting.
func (s *StateBuilder) Reject() *StateBuilder {
	s.rejecting = true
	s.accepting = false
	return s
}

// Initial makes this the start state.
func (s *StateBuilder) Initial() *StateBuilder {
	s.builder.initial = s.name
	return s
}

// Describe attaches a human-readable description used by diagrams.
func (s *StateBuilder) Describe(text string) *StateBuilder {
	s.description = text
	return s
}

package definition

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Document is the on-disk shape of a machine definition.
// Transitions map state -> read symbol -> [next, write, move].
type Document struct {
	Name              string                         `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Description       string                         `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	States            []string                       `json:"states" yaml:"states" mapstructure:"states"`
	InitialState      string                         `json:"initial_state" yaml:"initial_state" mapstructure:"initial_state"`
	AcceptingStates   []string                       `json:"accepting_states" yaml:"accepting_states" mapstructure:"accepting_states"`
	RejectingStates   []string                       `json:"rejecting_states,omitempty" yaml:"rejecting_states,omitempty" mapstructure:"rejecting_states"`
	TapeAlphabet      []string                       `json:"tape_alphabet" yaml:"tape_alphabet" mapstructure:"tape_alphabet"`
	BlankSymbol       string                         `json:"blank_symbol" yaml:"blank_symbol" mapstructure:"blank_symbol"`
	Transitions       map[string]map[string][]string `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
	SymbolLegend      map[string]string              `json:"symbol_legend,omitempty" yaml:"symbol_legend,omitempty" mapstructure:"symbol_legend"`
	StateDescriptions map[string]string              `json:"state_descriptions,omitempty" yaml:"state_descriptions,omitempty" mapstructure:"state_descriptions"`
}

// Format is the serialization of a definition document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported definition format %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

package memory

import (
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/turing/pkg/definition"
	"github.com/aretw0/turing/pkg/domain"
)

// Loader implements ports.DefinitionLoader using an in-memory map.
type Loader struct {
	docs map[string][]byte
}

// NewLoader creates a Loader from raw documents keyed by name ("busy.yaml").
func NewLoader(docs map[string]string) *Loader {
	l := &Loader{docs: make(map[string][]byte, len(docs))}
	for name, content := range docs {
		l.docs[name] = []byte(content)
	}
	return l
}

// NewFromDefinitions serializes definitions to JSON under "<name>.json".
// This keeps tests free of hand-written documents.
func NewFromDefinitions(defs ...*domain.Definition) (*Loader, error) {
	l := &Loader{docs: make(map[string][]byte, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("definition missing name")
		}
		data, err := definition.Marshal(def, definition.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal definition %s: %w", def.Name, err)
		}
		l.docs[def.Name+".json"] = data
	}
	return l, nil
}

// GetDefinition returns the raw document stored under name.
func (l *Loader) GetDefinition(name string) ([]byte, error) {
	content, ok := l.docs[name]
	if !ok {
		return nil, fmt.Errorf("definition not found: %s", name)
	}
	return content, nil
}

// ListDefinitions returns all names in sorted order.
func (l *Loader) ListDefinitions() ([]string, error) {
	return slices.Sorted(maps.Keys(l.docs)), nil
}

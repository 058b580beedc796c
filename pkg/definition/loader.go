package definition

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a definition file, choosing the decoder by extension.
func Load(path string) (*domain.Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine definition: %w", err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// FromLoader fetches a named definition from a loader.
func FromLoader(loader ports.DefinitionLoader, name string) (*domain.Definition, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	data, err := loader.GetDefinition(name)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// Parse decodes and validates a definition document.
func Parse(data []byte, format Format) (*domain.Definition, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON definition: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML definition: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
	if raw == nil {
		return nil, fmt.Errorf("empty machine definition")
	}
	return FromMap(raw)
}

// FromMap validates an already decoded document.
func FromMap(raw map[string]any) (*domain.Definition, error) {
	raw = normalize(raw).(map[string]any)
	if err := schema.Validate(documentSchema, raw); err != nil {
		return nil, err
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode machine definition: %w", err)
	}
	return Compile(&doc)
}

// Marshal serializes a definition in the given format.
func Marshal(def *domain.Definition, format Format) ([]byte, error) {
	doc := Encode(def)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported definition format %q", format)
	}
}

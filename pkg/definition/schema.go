package definition

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/schema"
)

var documentSchema = schema.Schema{
	"name":               schema.Optional(schema.String()),
	"description":        schema.Optional(schema.String()),
	"states":             schema.Slice(schema.String()),
	"initial_state":      schema.String(),
	"accepting_states":   schema.Slice(schema.String()),
	"rejecting_states":   schema.Optional(schema.Slice(schema.String())),
	"tape_alphabet":      schema.Slice(symbolType),
	"blank_symbol":       symbolType,
	"transitions":        schema.Map(schema.Map(ruleType)),
	"symbol_legend":      schema.Optional(schema.Map(schema.String())),
	"state_descriptions": schema.Optional(schema.Map(schema.String())),
}

// symbolType accepts one-character strings. Bare digits are allowed too,
// since YAML decodes an unquoted 1 as an integer.
var symbolType = schema.Custom("symbol", func(v any) error {
	s, ok := scalarString(v)
	if !ok {
		return fmt.Errorf("expected a one-character string, got %T", v)
	}
	if utf8.RuneCountInString(s) != 1 {
		return fmt.Errorf("expected a one-character string, got %q", s)
	}
	return nil
})

var ruleType = schema.Custom("[next, write, move]", func(v any) error {
	list, ok := v.([]any)
	if !ok {
		return fmt.Errorf("expected [next, write, move], got %T", v)
	}
	if len(list) != 3 {
		return fmt.Errorf("expected [next, write, move], got %d elements", len(list))
	}
	if _, ok := list[0].(string); !ok {
		return fmt.Errorf("next state: expected string, got %T", list[0])
	}
	if err := symbolType.Validate(list[1]); err != nil {
		return fmt.Errorf("write symbol: %w", err)
	}
	if _, ok := list[2].(string); !ok {
		return fmt.Errorf("move: expected string, got %T", list[2])
	}
	return nil
})

func scalarString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10), true
		}
	}
	return "", false
}

// normalize rewrites YAML's map[any]any (produced when a mapping has
// non-string keys such as an unquoted 1) into map[string]any.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalize(val)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}
		return x
	default:
		return v
	}
}

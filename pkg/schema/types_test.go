package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinTypes(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		value   any
		wantErr bool
	}{
		{"string ok", String(), "q0", false},
		{"string bad", String(), 3, true},
		{"int ok", Int(), 3, false},
		{"int from json", Int(), float64(12), false},
		{"int fractional", Int(), 1.5, true},
		{"int bad", Int(), "3", true},
		{"slice ok", Slice(String()), []any{"a", "b"}, false},
		{"slice typed", Slice(String()), []string{"a"}, false},
		{"slice element", Slice(String()), []any{"a", 2}, true},
		{"slice not list", Slice(String()), "a", true},
		{"map ok", Map(String()), map[string]any{"a": "b"}, false},
		{"map nested", Map(Map(Int())), map[string]any{"q": map[string]any{"1": 2}}, false},
		{"map value", Map(Int()), map[string]any{"a": "b"}, true},
		{"map not mapping", Map(Int()), []any{}, true},
		{"map int keys", Map(Int()), map[int]int{1: 1}, true},
		{"optional present", Optional(Int()), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "[string]", Slice(String()).Name())
	assert.Equal(t, "{string: [string]}", Map(Slice(String())).Name())
	assert.Equal(t, "int?", Optional(Int()).Name())
}

func TestCustomType(t *testing.T) {
	even := Custom("even", func(v any) error {
		i, ok := v.(int)
		if !ok || i%2 != 0 {
			return errors.New("not even")
		}
		return nil
	})

	assert.Equal(t, "even", even.Name())
	assert.NoError(t, even.Validate(4))
	assert.EqualError(t, even.Validate(3), "not even")
}

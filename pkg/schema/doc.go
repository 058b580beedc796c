// Package schema validates loosely typed documents (decoded JSON or YAML)
// before they are bound to Go structs.
//
// Schemas map field names to types. Every listed field is required unless
// wrapped in Optional:
//
//	s := schema.Schema{
//	    "states":        schema.Slice(schema.String()),
//	    "initial_state": schema.String(),
//	    "name":          schema.Optional(schema.String()),
//	}
//
//	if err := schema.Validate(s, data); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        fmt.Println(e)
//	    }
//	}
//
// Custom validators cover domain-specific values:
//
//	symbol := schema.Custom("symbol", func(v any) error {
//	    s, ok := v.(string)
//	    if !ok || utf8.RuneCountInString(s) != 1 {
//	        return fmt.Errorf("expected a single character")
//	    }
//	    return nil
//	})
//
// The package depends on the standard library only.
package schema

package ports

// DefinitionLoader defines how machine definitions are retrieved.
// Names carry their extension ("fibonacci.json") so callers can pick a decoder.
type DefinitionLoader interface {
	// GetDefinition returns the raw document stored under name.
	GetDefinition(name string) ([]byte, error)

	// ListDefinitions returns the names of all available definitions, sorted.
	ListDefinitions() ([]string, error)
}

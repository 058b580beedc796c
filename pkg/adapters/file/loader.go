package file

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Loader implements ports.DefinitionLoader over a filesystem.
// It serves os.DirFS directories and the embedded machines.FS alike.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader rooted at fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// GetDefinition reads the named document.
func (l *Loader) GetDefinition(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("definition not found: %s: %w", name, err)
	}
	return data, nil
}

// ListDefinitions returns the JSON and YAML documents at the root, sorted.
func (l *Loader) ListDefinitions() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

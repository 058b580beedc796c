package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/aretw0/turing/pkg/domain"
)

// Save writes <base>.md (Markdown report with Mermaid) and <base>.dot into
// dir, creating it if needed, and returns both paths.
func Save(def *domain.Definition, dir string, now time.Time) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	base := BaseName(def)
	mdPath := filepath.Join(dir, base+".md")
	dotPath := filepath.Join(dir, base+".dot")

	markdown := GenerateMarkdown(def, GenerateMermaid(def, nil), now)
	if err := os.WriteFile(mdPath, []byte(markdown), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write markdown diagram: %w", err)
	}
	if err := os.WriteFile(dotPath, []byte(GenerateDOT(def)), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write dot diagram: %w", err)
	}
	return mdPath, dotPath, nil
}

// BaseName derives a file name from the machine name: "Fibonacci (unary)"
// becomes "fibonacci_unary_diagram".
func BaseName(def *domain.Definition) string {
	var sb strings.Builder
	underscore := false
	for _, r := range strings.ToLower(def.Name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && sb.Len() > 0 {
			sb.WriteByte('_')
			underscore = true
		}
	}
	slug := strings.TrimSuffix(sb.String(), "_")
	if slug == "" {
		slug = "turing_machine"
	}
	return slug + "_diagram"
}

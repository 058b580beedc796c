package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// maxMermaidLabels is the largest label group drawn in full on one edge.
const maxMermaidLabels = 3

// Overlay highlights a run on the diagram.
type Overlay struct {
	Visited []string
	Current string
}

// OverlayFromHistory builds an overlay from a machine's snapshots.
func OverlayFromHistory(history []domain.Snapshot) *Overlay {
	if len(history) == 0 {
		return nil
	}
	o := &Overlay{Current: history[len(history)-1].State}
	for _, snap := range history {
		if !slices.Contains(o.Visited, snap.State) {
			o.Visited = append(o.Visited, snap.State)
		}
	}
	return o
}

// GenerateMermaid renders def as a Mermaid stateDiagram-v2 (without code
// fences). Rules between the same pair of states share one edge; groups
// larger than three show the first label and a count.
func GenerateMermaid(def *domain.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	fmt.Fprintf(&sb, "    [*] --> %s\n", sanitizeMermaidID(def.Initial))
	for _, state := range def.Accepting {
		fmt.Fprintf(&sb, "    %s --> [*]\n", sanitizeMermaidID(state))
	}

	for _, e := range groupEdges(def) {
		label := strings.Join(e.labels, `\n`)
		if len(e.labels) > maxMermaidLabels {
			label = fmt.Sprintf(`%s\n... (+%d)`, e.labels[0], len(e.labels)-1)
		}
		fmt.Fprintf(&sb, "    %s --> %s: %s\n", sanitizeMermaidID(e.from), sanitizeMermaidID(e.to), label)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")
		for _, state := range overlay.Visited {
			if state == overlay.Current {
				continue
			}
			fmt.Fprintf(&sb, "    class %s visited\n", sanitizeMermaidID(state))
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current\n", sanitizeMermaidID(overlay.Current))
		}
	}
	return sb.String()
}

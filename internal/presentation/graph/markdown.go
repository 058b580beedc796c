package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/turing/pkg/domain"
)

// GenerateMarkdown builds a self-contained report: statistics, the Mermaid
// diagram, the symbol legend and one line per state.
func GenerateMarkdown(def *domain.Definition, mermaid string, now time.Time) string {
	name := def.Name
	if name == "" {
		name = "Unnamed machine"
	}

	var sb strings.Builder
	sb.WriteString("# Transition Diagram\n\n")
	fmt.Fprintf(&sb, "## Turing Machine: %s\n\n", name)
	if def.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", def.Description)
	}
	fmt.Fprintf(&sb, "> **Generated:** %s\n\n", now.Format(time.DateTime))

	sb.WriteString("## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&sb, "| States | %d |\n", len(def.States))
	fmt.Fprintf(&sb, "| Transitions | %d |\n", def.TransitionCount())
	fmt.Fprintf(&sb, "| Initial state | `%s` |\n", def.Initial)
	fmt.Fprintf(&sb, "| Accepting states | %s |\n", codeList(def.Accepting))
	if len(def.Rejecting) > 0 {
		fmt.Fprintf(&sb, "| Rejecting states | %s |\n", codeList(def.Rejecting))
	}
	symbols := make([]string, len(def.Alphabet))
	for i, s := range def.Alphabet {
		symbols[i] = s.String()
	}
	fmt.Fprintf(&sb, "| Tape alphabet | %s |\n\n", codeList(symbols))

	sb.WriteString("## Diagram\n\n```mermaid\n")
	sb.WriteString(strings.TrimRight(mermaid, "\n"))
	sb.WriteString("\n```\n\n")

	sb.WriteString("## Symbol Legend\n\n")
	sb.WriteString("| Symbol | Meaning |\n|--------|---------|\n")
	fmt.Fprintf(&sb, "| %s | Blank (empty cell) |\n", blankGlyph)
	for _, sym := range def.Alphabet {
		meaning, ok := def.Legend[sym]
		if !ok || sym == def.Blank {
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", tableCell(sym.String()), meaning)
	}

	sb.WriteString("\n## States\n\n")
	sb.WriteString("| State | Description |\n|-------|-------------|\n")
	for _, state := range def.States {
		desc, ok := def.StateDescriptions[state]
		if !ok {
			desc = "Auxiliary state"
		}
		fmt.Fprintf(&sb, "| `%s` | %s |\n", state, desc)
	}
	return sb.String()
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "`"
	}
	return strings.Join(quoted, ", ")
}

// tableCell escapes the one character that breaks a Markdown table row.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

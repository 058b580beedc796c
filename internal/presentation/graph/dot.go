package graph

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// maxDOTLabels is the largest label group drawn in full on one edge.
const maxDOTLabels = 4

var plainDOTID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// GenerateDOT renders def as a Graphviz digraph laid out left to right.
// Accepting states are double circles, rejecting states double octagons.
func GenerateDOT(def *domain.Definition) string {
	var sb strings.Builder
	sb.WriteString("digraph TuringMachine {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    size=\"14,10\";\n")
	sb.WriteString("    node [shape=circle, fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("    edge [fontname=\"Helvetica\", fontsize=9];\n\n")

	sb.WriteString("    start [shape=point, width=0];\n")
	fmt.Fprintf(&sb, "    start -> %s;\n\n", dotID(def.Initial))

	writeShape := func(shape string, states []string) {
		if len(states) == 0 {
			return
		}
		ids := make([]string, len(states))
		for i, s := range states {
			ids[i] = dotID(s)
		}
		fmt.Fprintf(&sb, "    node [shape=%s]; %s;\n", shape, strings.Join(ids, " "))
	}
	writeShape("doublecircle", def.Accepting)
	writeShape("doubleoctagon", def.Rejecting)
	sb.WriteString("    node [shape=circle];\n\n")

	edges := groupEdges(def)
	slices.SortFunc(edges, func(a, b edge) int {
		return cmp.Or(cmp.Compare(a.from, b.from), cmp.Compare(a.to, b.to))
	})
	for _, e := range edges {
		labels := e.labels
		if len(labels) > maxDOTLabels {
			labels = append(slices.Clone(labels[:3]), fmt.Sprintf("... (+%d more)", len(e.labels)-3))
		}
		fmt.Fprintf(&sb, "    %s -> %s [label=%s];\n", dotID(e.from), dotID(e.to), dotLabel(labels))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotID(id string) string {
	if plainDOTID.MatchString(id) {
		return id
	}
	return strconv.Quote(id)
}

// dotLabel joins lines with DOT's \n escape inside one quoted string.
func dotLabel(lines []string) string {
	escaped := make([]string, len(lines))
	for i, l := range lines {
		escaped[i] = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(l)
	}
	return `"` + strings.Join(escaped, `\n`) + `"`
}

package graph

import (
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// blankGlyph replaces the blank symbol in diagram labels.
const blankGlyph = "β"

// edge is every rule between one pair of states, in table order.
type edge struct {
	from, to string
	labels   []string
}

// groupEdges collects "read/write,move" labels per (from, to) pair, keeping
// the order in which pairs first appear in def.Transitions.
func groupEdges(def *domain.Definition) []edge {
	index := make(map[[2]string]int)
	var edges []edge
	for _, tr := range def.Transitions() {
		key := [2]string{tr.From, tr.Next}
		i, ok := index[key]
		if !ok {
			i = len(edges)
			index[key] = i
			edges = append(edges, edge{from: tr.From, to: tr.Next})
		}
		edges[i].labels = append(edges[i].labels, ruleLabel(def, tr))
	}
	return edges
}

func ruleLabel(def *domain.Definition, tr domain.Transition) string {
	return symbolLabel(def, tr.Read) + "/" + symbolLabel(def, tr.Write) + "," + tr.Move.String()
}

func symbolLabel(def *domain.Definition, sym domain.Symbol) string {
	if sym == def.Blank {
		return blankGlyph
	}
	return sym.String()
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
}

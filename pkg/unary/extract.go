package unary

import (
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Extractor pulls the final numeric term out of a tape laid out as
// delimiter-separated unary terms (term;term;...;term).
//
// Without any delimiter it falls back to concatenating every digit on the
// tape. On malformed tapes the fallback can return a plausible but wrong
// value; callers that need certainty should check the layout themselves.
type Extractor struct {
	Delimiter rune
	Digit     rune
}

// Fibonacci matches the layout written by the bundled Fibonacci machine.
var Fibonacci = Extractor{Delimiter: ';', Digit: Digit}

// Extract returns the last all-digit term of raw after trimming blanks.
func (e Extractor) Extract(raw string, blank domain.Symbol) string {
	raw = strings.Trim(raw, blank.String())

	if strings.ContainsRune(raw, e.Delimiter) {
		terms := strings.Split(raw, string(e.Delimiter))
		for i := len(terms) - 1; i >= 0; i-- {
			if e.isTerm(terms[i]) {
				return terms[i]
			}
		}
	}

	var sb strings.Builder
	for _, r := range raw {
		if r == e.Digit {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (e Extractor) isTerm(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != e.Digit {
			return false
		}
	}
	return true
}

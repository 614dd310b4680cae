package nquads

import (
	"regexp"
	"strings"

	"github.com/networkedplanet/quince/term"
)

// Wildcard marks a pattern position as "match anything of the
// position's shape" (any IRI for S/P/G, any IRI-or-literal for O).
const Wildcard = "*"

// CompilePattern builds a regex matching a whole canonical NQuad line
// against the given positions, each of which is either a concrete
// term or nil, the wildcard (callers map the Wildcard token to nil
// before calling). It is the implementation of spec.md §4.7.
func CompilePattern(s, p, o, g term.Term) *regexp.Regexp {
	parts := []string{
		iriOrWildcard(s),
		iriOrWildcard(p),
		objectOrWildcard(o),
		iriOrWildcard(g),
	}
	expr := "^" + strings.Join(parts, `\s+`) + `\s+\.\n?$`
	return regexp.MustCompile(expr)
}

func iriOrWildcard(t term.Term) string {
	if t == nil {
		return "(?:" + irisFrag + ")"
	}
	return regexp.QuoteMeta(t.N3())
}

func objectOrWildcard(t term.Term) string {
	if t == nil {
		return "(?:" + uriOrLiteralFrag + ")"
	}
	return regexp.QuoteMeta(t.N3())
}

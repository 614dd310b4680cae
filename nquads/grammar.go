// Package nquads implements the canonical NQuad line grammar, a
// streaming parser, pluggable serializers and quad-pattern
// compilation, grounded on the regex-first approach cayleygraph/cayley
// takes in its quad/nquads package (IRI/literal fragments composed
// into a line grammar) and on rdflib's NTriplesParser token-at-a-time
// reading style that the original Python quince parser subclassed.
package nquads

import "regexp"

const (
	// irisFrag matches a bracketed absolute IRI, e.g. <http://ex/s>.
	irisFrag = `<[^>]*>`
	// literalFrag matches a quoted literal with optional datatype or
	// language tag, mirroring spec.md §4.7's literal regex.
	literalFrag = `"(?:[^"\\]|\\.)*"(?:\^\^<[^>]*>)?(?:@\S*)?`
	// uriOrLiteralFrag matches either an IRI or a literal, used for
	// object-position wildcards.
	uriOrLiteralFrag = irisFrag + `|` + literalFrag
)

var (
	// IRIPattern matches a single bracketed IRI.
	IRIPattern = regexp.MustCompile(`^(?:` + irisFrag + `)$`)
	// LiteralPattern matches a single quoted literal.
	LiteralPattern = regexp.MustCompile(`^(?:` + literalFrag + `)$`)
	// QuadLinePattern matches a whole canonical NQuad line: four terms
	// (S P O G) separated by whitespace and terminated by " .".
	QuadLinePattern = regexp.MustCompile(
		`^(?P<s>` + irisFrag + `)\s+` +
			`(?P<p>` + irisFrag + `)\s+` +
			`(?P<o>` + uriOrLiteralFrag + `)\s+` +
			`(?P<g>` + irisFrag + `)\s+\.\n?$`)
)

package quince

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/nquads"
	"github.com/networkedplanet/quince/term"
)

var (
	safeCurie   = regexp.MustCompile(`^\[([A-Za-z][A-Za-z0-9_.-]*):(.*)\]$`)
	absoluteIRI = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:[^\s]*$`)
)

// ParseTerm resolves a single CLI position per spec.md §4.6: a safe
// CURIE (`[prefix:local]`), an absolute IRI, or — when allowLiteral is
// true (object/graph-less positions only reject it) — a quoted
// literal. raw == nquads.Wildcard yields a nil Term, the internal
// "match anything" sentinel used by CompilePattern.
func (s *Store) ParseTerm(raw string, allowLiteral bool) (term.Term, error) {
	if raw == nquads.Wildcard {
		return nil, nil
	}
	if m := safeCurie.FindStringSubmatch(raw); m != nil {
		prefix, local := m[1], m[2]
		base, err := s.ExpandPrefix(prefix)
		if err != nil {
			return nil, &quinceerr.ArgumentError{Msg: fmt.Sprintf("unknown namespace prefix %q in %q", prefix, raw)}
		}
		return term.IRI(base + local), nil
	}
	if absoluteIRI.MatchString(raw) {
		return term.IRI(raw), nil
	}
	if allowLiteral && nquads.LiteralPattern.MatchString(raw) {
		return parseLiteralLiteral(raw)
	}
	return nil, &quinceerr.ArgumentError{Msg: fmt.Sprintf("%q is not a safe CURIE, an absolute IRI, or a quoted literal", raw)}
}

func parseLiteralLiteral(raw string) (term.Term, error) {
	m := nquads.LiteralPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, &quinceerr.ArgumentError{Msg: fmt.Sprintf("%q is not a valid literal", raw)}
	}
	body := strings.TrimPrefix(raw, `"`)
	end := strings.LastIndex(body, `"`)
	lex, trailer := body[:end], body[end+1:]

	unescaped, err := term.UnescapeLexical(lex)
	if err != nil {
		return nil, &quinceerr.ArgumentError{Msg: err.Error()}
	}

	lit := term.Literal{Lexical: unescaped}
	switch {
	case strings.HasPrefix(trailer, "^^<"):
		lit.Datatype = term.IRI(strings.TrimSuffix(strings.TrimPrefix(trailer, "^^<"), ">"))
	case strings.HasPrefix(trailer, "@"):
		lit.Lang = strings.TrimPrefix(trailer, "@")
	}
	return lit, nil
}

// ParseQuadArgs parses the four positional S, P, O, G arguments for
// assert/retract, accumulating every per-position failure into a
// single quinceerr.MultiError instead of stopping at the first one, so
// the user sees every problem in one pass. graphRaw == "" resolves to
// the default graph rather than an error.
func (s *Store) ParseQuadArgs(subjRaw, predRaw, objRaw, graphRaw string, allowSubjWildcard bool) (subj, pred, obj, graph term.Term, err error) {
	var errs []error

	subj, e := s.ParseTerm(subjRaw, false)
	if e != nil {
		errs = append(errs, e)
	} else if subj == nil && !allowSubjWildcard {
		errs = append(errs, &quinceerr.ArgumentError{Msg: "subject cannot be a wildcard here"})
	}

	pred, e = s.ParseTerm(predRaw, false)
	if e != nil {
		errs = append(errs, e)
	}

	obj, e = s.ParseTerm(objRaw, true)
	if e != nil {
		errs = append(errs, e)
	}

	if graphRaw == "" {
		graph = term.IRI(term.DefaultGraphIRI)
	} else {
		graph, e = s.ParseTerm(graphRaw, false)
		if e != nil {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, nil, nil, nil, &quinceerr.MultiError{Errors: errs}
	}
	return subj, pred, obj, graph, nil
}

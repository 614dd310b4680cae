package nquads

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/networkedplanet/quince/term"
)

var (
	wspace    = regexp.MustCompile(`^[ \t]*`)
	tailSpace = regexp.MustCompile(`^[ \t]*\.[ \t]*$`)
	iriTok    = regexp.MustCompile(`^<([^>]*)>`)
	bnodeTok  = regexp.MustCompile(`^_:([A-Za-z0-9_:.-]+)`)
	litTok    = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"(?:\^\^<([^>]*)>)?(?:@(\S*))?`)
)

// ParseError reports a malformed NTriples/NQuads line, carrying the
// offending line verbatim for diagnostics, per spec.md §4.8.
type ParseError struct {
	Line string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nquads: invalid line (%s): %q", e.Msg, e.Line)
}

// Sink receives parsed triples/quads. Quad is called for every line
// parsed in ModeNQuads; g is term.IRI(term.DefaultGraphIRI) when the
// line had no explicit context. Triple is called for plain N-Triples input (no
// context position at all).
type Sink interface {
	Quad(s, p, o, g term.Term) error
	Triple(s, p, o term.Term) error
}

// Mode selects whether the parser expects a trailing context
// (NQuads) or not (NTriples).
type Mode int

const (
	// ModeNQuads expects subject, predicate, object, context.
	ModeNQuads Mode = iota
	// ModeNTriples expects subject, predicate, object only.
	ModeNTriples
)

// Parser is a streaming, line-oriented N-Triples/N-Quads parser.
type Parser struct {
	sink Sink
	mode Mode
}

// NewParser builds a Parser in the given mode, emitting to sink.
func NewParser(sink Sink, mode Mode) *Parser {
	return &Parser{sink: sink, mode: mode}
}

// Parse reads every line from r, emitting each non-empty, non-comment
// line to the sink. The whole read stops at the first malformed line.
func (p *Parser) Parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := p.parseLine(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (p *Parser) parseLine(line string) error {
	rest := line
	rest = eat(rest, wspace)

	s, rest, err := readTerm(rest, line)
	if err != nil {
		return err
	}
	rest = eat(rest, wspace)

	pr, rest, err := readTerm(rest, line)
	if err != nil {
		return err
	}
	rest = eat(rest, wspace)

	o, rest, err := readTerm(rest, line)
	if err != nil {
		return err
	}
	rest = eat(rest, wspace)

	if p.mode == ModeNTriples {
		if !tailSpace.MatchString(rest) {
			return &ParseError{Line: line, Msg: "trailing garbage"}
		}
		return p.sink.Triple(s, pr, o)
	}

	var g term.Term = term.IRI(term.DefaultGraphIRI)
	if !tailSpace.MatchString(rest) {
		ctx, remainder, err := readTerm(rest, line)
		if err != nil {
			return err
		}
		g = ctx
		rest = eat(remainder, wspace)
	}
	if !tailSpace.MatchString(rest) {
		return &ParseError{Line: line, Msg: "trailing garbage"}
	}
	return p.sink.Quad(s, pr, o, g)
}

func eat(s string, re *regexp.Regexp) string {
	m := re.FindString(s)
	return s[len(m):]
}

// readTerm reads the next IRI, blank node or literal token off s,
// returning the term and the unconsumed remainder.
func readTerm(s, fullLine string) (term.Term, string, error) {
	if m := iriTok.FindStringSubmatch(s); m != nil {
		return term.IRI(m[1]), s[len(m[0]):], nil
	}
	if m := litTok.FindStringSubmatch(s); m != nil {
		lex, err := term.UnescapeLexical(m[1])
		if err != nil {
			return nil, "", &ParseError{Line: fullLine, Msg: err.Error()}
		}
		lit := term.Literal{Lexical: lex}
		if m[2] != "" {
			lit.Datatype = term.IRI(m[2])
		} else if m[3] != "" {
			lit.Lang = m[3]
		}
		return lit, s[len(m[0]):], nil
	}
	if m := bnodeTok.FindStringSubmatch(s); m != nil {
		return term.BlankNode(m[1]), s[len(m[0]):], nil
	}
	return nil, "", &ParseError{Line: fullLine, Msg: "expected IRI, blank node or literal"}
}

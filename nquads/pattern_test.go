package nquads

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkedplanet/quince/term"
)

func TestCompilePatternAllConcrete(t *testing.T) {
	pat := CompilePattern(
		term.IRI("http://ex/s"), term.IRI("http://ex/p"),
		term.IRI("http://ex/o"), term.IRI("http://ex/g"),
	)
	line := `<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .` + "\n"
	assert.True(t, pat.MatchString(line))
	assert.False(t, pat.MatchString(`<http://ex/s> <http://ex/p> <http://ex/other> <http://ex/g> .`+"\n"))
}

func TestCompilePatternWildcardSubject(t *testing.T) {
	pat := CompilePattern(nil, term.IRI("http://ex/p"), term.IRI("http://ex/o"), term.IRI("http://ex/g"))
	assert.True(t, pat.MatchString(`<http://anything> <http://ex/p> <http://ex/o> <http://ex/g> .`+"\n"))
	assert.False(t, pat.MatchString(`<http://anything> <http://ex/other-p> <http://ex/o> <http://ex/g> .`+"\n"))
}

func TestCompilePatternWildcardObjectMatchesIRIOrLiteral(t *testing.T) {
	pat := CompilePattern(term.IRI("http://ex/s"), term.IRI("http://ex/p"), nil, term.IRI("http://ex/g"))
	assert.True(t, pat.MatchString(`<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .`+"\n"))
	assert.True(t, pat.MatchString(`<http://ex/s> <http://ex/p> "lit" <http://ex/g> .`+"\n"))
}

// TestCompilePatternWildcardObjectDoesNotLeakAcrossOtherPositions guards
// against the alternation in uriOrLiteralFrag escaping its position: an
// unparenthesized `a|b` spliced into a larger concatenation binds across
// the whole expression, not just the object slot, so a wildcard object
// must not let a mismatched subject or graph still match.
func TestCompilePatternWildcardObjectDoesNotLeakAcrossOtherPositions(t *testing.T) {
	pat := CompilePattern(term.IRI("http://ex/s"), term.IRI("http://ex/p"), nil, term.IRI("http://ex/g"))
	assert.False(t, pat.MatchString(`<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/different-graph> .`+"\n"))
	assert.False(t, pat.MatchString(`<http://ex/different-subject> <http://ex/p> <http://ex/o> <http://ex/g> .`+"\n"))
}

func TestCompilePatternAllWildcard(t *testing.T) {
	pat := CompilePattern(nil, nil, nil, nil)
	assert.True(t, pat.MatchString(`<http://ex/s> <http://ex/p> "lit"@en <http://ex/g> .`+"\n"))
}

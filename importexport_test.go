package quince

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/term"
)

func TestImportParsesNQuadsFile(t *testing.T) {
	s := newTestStore(t)
	src := filepath.Join(t.TempDir(), "data.nq")
	require.NoError(t, os.WriteFile(src, []byte(
		`<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .`+"\n",
	), 0o644))

	sink, err := s.Import([]string{src}, nil)
	require.NoError(t, err)
	assert.Empty(t, sink.Failures)

	matches, err := s.Exists(term.IRI("http://ex/s"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), term.IRI("http://ex/g"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestImportUnknownExtensionReturnsNoParserError(t *testing.T) {
	s := newTestStore(t)
	src := filepath.Join(t.TempDir(), "data.unknown")
	require.NoError(t, os.WriteFile(src, []byte("nonsense"), 0o644))

	_, err := s.Import([]string{src}, nil)
	var npe *quinceerr.NoParserError
	assert.ErrorAs(t, err, &npe)
}

func TestImportGraphOverrideForcesEveryQuadIntoOneGraph(t *testing.T) {
	s := newTestStore(t)
	src := filepath.Join(t.TempDir(), "data.nt")
	require.NoError(t, os.WriteFile(src, []byte(
		`<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n",
	), 0o644))

	override := term.IRI("http://ex/forced")
	_, err := s.Import([]string{src}, override)
	require.NoError(t, err)

	matches, err := s.Exists(term.IRI("http://ex/s"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), override)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExportNQuadsRoundTripsThroughReimport(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), term.IRI("http://ex/g")))
	require.NoError(t, s.Flush())

	out := filepath.Join(t.TempDir(), "out.nq")
	require.NoError(t, s.Export(out, ""))

	s2 := newTestStore(t)
	_, err := s2.Import([]string{out}, nil)
	require.NoError(t, err)

	matches, err := s2.Exists(term.IRI("http://ex/s"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), term.IRI("http://ex/g"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExportNTDropsGraphButPreservesTriples(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), term.IRI("http://ex/g")))
	require.NoError(t, s.Flush())

	out := filepath.Join(t.TempDir(), "out.nt")
	require.NoError(t, s.Export(out, "nt"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n", string(data))
}

func TestExportUnknownExtensionReturnsError(t *testing.T) {
	s := newTestStore(t)
	err := s.Export(filepath.Join(t.TempDir(), "out.unknown"), "")
	assert.Error(t, err)
}

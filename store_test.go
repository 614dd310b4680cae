package quince

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkedplanet/quince/internal/pathhash"
	"github.com/networkedplanet/quince/term"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Init(dir)
	require.NoError(t, err)
	return s
}

func TestAssertWritesCanonicalLineToShard(t *testing.T) {
	s := newTestStore(t)
	subj := term.IRI("http://ex/s")
	require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), term.IRI(term.DefaultGraphIRI)))
	require.NoError(t, s.Flush())

	path := pathhash.SubjectPath(s.Repo().QuincePath(), subj.N3())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"<http://ex/s> <http://ex/p> <http://ex/o> <"+term.DefaultGraphIRI+"> .\n",
		string(data),
	)
}

func TestAssertIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	subj := term.IRI("http://ex/s")
	g := term.IRI(term.DefaultGraphIRI)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), g))
	}
	require.NoError(t, s.Flush())

	path := pathhash.SubjectPath(s.Repo().QuincePath(), subj.N3())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, countLines(string(data)))
}

func TestTwoQuadsSameSubjectStaySorted(t *testing.T) {
	s := newTestStore(t)
	subj := term.IRI("http://ex/s2")
	g := term.IRI(term.DefaultGraphIRI)
	require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p1"), term.IRI("http://ex/o2"), g))
	require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p1"), term.IRI("http://ex/o1"), g))
	require.NoError(t, s.Flush())

	path := pathhash.SubjectPath(s.Repo().QuincePath(), subj.N3())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitKeepLines(string(data))
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "o1")
	assert.Contains(t, lines[1], "o2")
}

func TestRetractRemovesMatchingLines(t *testing.T) {
	s := newTestStore(t)
	subj := term.IRI("http://ex/s")
	g := term.IRI(term.DefaultGraphIRI)
	require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), g))
	require.NoError(t, s.Flush())

	removed, err := s.RetractQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), g)
	require.NoError(t, err)
	assert.Len(t, removed, 1)
	require.NoError(t, s.Flush())

	path := pathhash.SubjectPath(s.Repo().QuincePath(), subj.N3())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRetractNonMatchLeavesFileByteIdentical(t *testing.T) {
	s := newTestStore(t)
	subj := term.IRI("http://ex/s")
	g := term.IRI(term.DefaultGraphIRI)
	require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), g))
	require.NoError(t, s.Flush())

	path := pathhash.SubjectPath(s.Repo().QuincePath(), subj.N3())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	removed, err := s.RetractQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/nomatch"), g)
	require.NoError(t, err)
	assert.Empty(t, removed)
	require.NoError(t, s.Flush())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRetractWildcardSubjectScansEveryShard(t *testing.T) {
	s := newTestStore(t)
	g := term.IRI(term.DefaultGraphIRI)
	pred := term.IRI("http://ex/p")
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s1"), pred, term.IRI("http://ex/o"), g))
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s2"), pred, term.IRI("http://ex/o"), g))
	require.NoError(t, s.Flush())

	removed, err := s.RetractQuad(nil, pred, term.IRI("http://ex/o"), g)
	require.NoError(t, err)
	assert.Len(t, removed, 2)
}

func TestExistsFindsAssertedQuad(t *testing.T) {
	s := newTestStore(t)
	subj := term.IRI("http://ex/s")
	g := term.IRI(term.DefaultGraphIRI)
	require.NoError(t, s.AssertQuad(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), g))
	require.NoError(t, s.Flush())

	matches, err := s.Exists(subj, term.IRI("http://ex/p"), term.IRI("http://ex/o"), g)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	none, err := s.Exists(subj, term.IRI("http://ex/p"), term.IRI("http://ex/nope"), g)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAllQuadsFiltersByGraph(t *testing.T) {
	s := newTestStore(t)
	g1 := term.IRI("http://ex/g1")
	g2 := term.IRI("http://ex/g2")
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s1"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), g1))
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s2"), term.IRI("http://ex/p"), term.IRI("http://ex/o"), g2))
	require.NoError(t, s.Flush())

	all, err := s.AllQuads()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyG1, err := s.AllQuads(g1)
	require.NoError(t, err)
	assert.Len(t, onlyG1, 1)
	assert.Contains(t, onlyG1[0], "s1")
}

func TestSortAllIsFixedPoint(t *testing.T) {
	s := newTestStore(t)
	g := term.IRI(term.DefaultGraphIRI)
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s"), term.IRI("http://ex/p1"), term.IRI("http://ex/o2"), g))
	require.NoError(t, s.AssertQuad(term.IRI("http://ex/s"), term.IRI("http://ex/p1"), term.IRI("http://ex/o1"), g))
	require.NoError(t, s.Flush())

	require.NoError(t, s.SortAll())
	path := pathhash.SubjectPath(s.Repo().QuincePath(), term.IRI("http://ex/s").N3())
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.SortAll())
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNamespaceAddRemoveExpand(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddNamespace("foaf", "http://xmlns.com/foaf/0.1/"))

	iri, err := s.ExpandPrefix("foaf")
	require.NoError(t, err)
	assert.Equal(t, "http://xmlns.com/foaf/0.1/", iri)

	err = s.AddNamespace("foaf", "http://other/")
	assert.Error(t, err)

	require.NoError(t, s.RemoveNamespace("foaf"))
	_, err = s.ExpandPrefix("foaf")
	assert.Error(t, err)
}

func TestRemoteAddRemoveList(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddRemote("origin", "http://ex/sparql"))
	assert.Equal(t, map[string]string{"origin": "http://ex/sparql"}, s.Remotes())

	err := s.AddRemote("origin", "http://other/")
	assert.Error(t, err)

	require.NoError(t, s.RemoveRemote("origin"))
	err = s.RemoveRemote("origin")
	assert.Error(t, err)
}

func countLines(s string) int { return len(splitKeepLines(s)) }

func splitKeepLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	return out
}

func TestInitCreatesQuinceDirAndPostMergeHook(t *testing.T) {
	dir := t.TempDir()
	s, err := Init(dir)
	require.NoError(t, err)
	assert.DirExists(t, s.Repo().QuincePath())

	hook := filepath.Join(dir, ".git", "hooks", "post-merge")
	assert.FileExists(t, hook)
	data, err := os.ReadFile(hook)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quince sort")
}

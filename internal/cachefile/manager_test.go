package cachefile

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLineThenFlushWritesToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aa", "shard.nqo")
	m := NewManager(10)
	require.NoError(t, m.AddLine(path, "b\n"))
	require.NoError(t, m.AddLine(path, "a\n"))
	require.NoError(t, m.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestEvictionFlushesWriteBehind(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.nqo")
	pathB := filepath.Join(dir, "b.nqo")
	pathC := filepath.Join(dir, "c.nqo")

	m := NewManager(2)
	require.NoError(t, m.AddLine(pathA, "a\n"))
	require.NoError(t, m.AddLine(pathB, "b\n"))
	// Capacity 2: adding a third distinct path evicts the LRU entry (a),
	// which must already be on disk even before an explicit Flush.
	require.NoError(t, m.AddLine(pathC, "c\n"))

	data, err := os.ReadFile(pathA)
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(data))
}

func TestRemoveLinesMatchingReturnsRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard.nqo")
	m := NewManager(10)
	require.NoError(t, m.AddLine(path, "a1\n"))
	require.NoError(t, m.AddLine(path, "a2\n"))
	require.NoError(t, m.AddLine(path, "b1\n"))

	removed, err := m.RemoveLinesMatching(path, regexp.MustCompile(`^a`))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a1\n", "a2\n"}, removed)

	lines, err := m.IterLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"b1\n"}, lines)
}

func TestTouchLoadsWithoutMutating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard.nqo")
	require.NoError(t, os.WriteFile(path, []byte("b\na\n"), 0o644))

	m := NewManager(10)
	require.NoError(t, m.Touch(path))
	require.NoError(t, m.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestRemoveLineNoOpWhenAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shard.nqo")
	m := NewManager(10)
	require.NoError(t, m.RemoveLine(path, "nope\n"))
	lines, err := m.IterLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// Package cachefile provides a CachingFileManager: a pool of
// fileentry.FileEntry objects bound by an LRU cache with write-behind
// flush on eviction.
package cachefile

import (
	"regexp"

	"github.com/networkedplanet/quince/internal/fileentry"
	"github.com/networkedplanet/quince/internal/lru"
)

// Manager provides a line-based interface for reading and modifying
// text files while using an LRU cache to minimize disk access. File
// updates are only persisted to disk when Flush is called, or when a
// FileEntry is evicted from the cache.
type Manager struct {
	cache *lru.Cache[string, *fileentry.FileEntry]
	// sticky records the first I/O error seen flushing an evicted
	// entry, since the eviction callback itself cannot propagate one.
	sticky error
}

// NewManager builds a Manager with the given LRU capacity.
func NewManager(capacity int) *Manager {
	m := &Manager{}
	m.cache = lru.New[string, *fileentry.FileEntry](capacity, func(_ string, fe *fileentry.FileEntry) {
		if err := fe.Flush(); err != nil && m.sticky == nil {
			m.sticky = err
		}
	})
	return m
}

// AddLine inserts line into the file at path, mutating only the
// cached representation.
func (m *Manager) AddLine(path, line string) error {
	fe, err := m.entry(path)
	if err != nil {
		return err
	}
	fe.Insert(line)
	return m.checkSticky()
}

// RemoveLine removes line from the file at path if present. It is a
// no-op if the file or the line does not exist.
func (m *Manager) RemoveLine(path, line string) error {
	fe, err := m.entry(path)
	if err != nil {
		return err
	}
	if fe.Contains(line) {
		_ = fe.Remove(line)
	}
	return m.checkSticky()
}

// RemoveLinesMatching removes every line in the file at path matched
// by re, returning the removed lines.
func (m *Manager) RemoveLinesMatching(path string, re *regexp.Regexp) ([]string, error) {
	fe, err := m.entry(path)
	if err != nil {
		return nil, err
	}
	removed := fe.RemoveMatching(re)
	return removed, m.checkSticky()
}

// IterLines returns the current in-memory lines for path.
func (m *Manager) IterLines(path string) ([]string, error) {
	fe, err := m.entry(path)
	if err != nil {
		return nil, err
	}
	return fe.Lines(), nil
}

// Touch loads path into the cache without mutating it. Used by the
// sort pass: loading a file through FileEntry sorts it in memory, and
// a subsequent Flush rewrites it canonically.
func (m *Manager) Touch(path string) error {
	_, err := m.entry(path)
	return err
}

func (m *Manager) entry(path string) (*fileentry.FileEntry, error) {
	if fe, ok := m.cache.Get(path); ok {
		return fe, nil
	}
	fe, err := fileentry.Load(path)
	if err != nil {
		return nil, err
	}
	m.cache.Set(path, fe)
	return fe, nil
}

func (m *Manager) checkSticky() error {
	if m.sticky != nil {
		err := m.sticky
		m.sticky = nil
		return err
	}
	return nil
}

// Flush writes every cached entry to disk. Order is irrelevant.
func (m *Manager) Flush() error {
	for _, fe := range m.cache.Items() {
		if err := fe.Flush(); err != nil {
			return err
		}
	}
	return m.checkSticky()
}

// Package fileentry binds a sortedset.SortedSet to a path on disk: it
// loads lines from the file on construction and rewrites the whole
// file on flush.
package fileentry

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"

	"github.com/networkedplanet/quince/internal/sortedset"
)

// FileEntry is a SortedSet of lines backed by a file.
type FileEntry struct {
	Path string
	set  *sortedset.SortedSet
}

// Load reads path into a FileEntry. A missing file yields an empty
// set; it is created lazily on the next Flush.
func Load(path string) (*FileEntry, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	return &FileEntry{Path: path, set: sortedset.New(lines)}, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text()+"\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Len returns the number of lines currently held.
func (fe *FileEntry) Len() int { return fe.set.Len() }

// Contains reports whether line is present.
func (fe *FileEntry) Contains(line string) bool { return fe.set.Contains(line) }

// Insert adds line if absent.
func (fe *FileEntry) Insert(line string) { fe.set.Insert(line) }

// Remove deletes line, returning an error if it is not present.
func (fe *FileEntry) Remove(line string) error { return fe.set.Remove(line) }

// RemoveMatching removes every line matched by re, returning the
// removed lines in their original order.
func (fe *FileEntry) RemoveMatching(re *regexp.Regexp) []string {
	return fe.set.RemoveMatching(re)
}

// Lines returns the current lines in ascending order.
func (fe *FileEntry) Lines() []string { return fe.set.Items() }

// Flush creates any missing parent directories and overwrites the
// file with the current contents.
func (fe *FileEntry) Flush() error {
	if err := os.MkdirAll(filepath.Dir(fe.Path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(fe.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range fe.set.Items() {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
	}
	return w.Flush()
}

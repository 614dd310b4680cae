package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// unifiedFileDiff renders a minimal unified diff between oldText and
// newText for a single file: a `diff --git` style header, a single
// `@@` hunk marker, then one line per line of content, prefixed with
// '-' (deleted), '+' (inserted) or ' ' (context).
//
// The line-level diff itself is computed with go-git's own line-diff
// dependency, github.com/sergi/go-diff, using its line-mode shortcut
// (DiffLinesToChars / DiffCharsToLines) — the same technique go-git
// uses internally to diff large texts a line at a time rather than
// rune at a time.
func unifiedFileDiff(path, oldText, newText string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var b2 strings.Builder
	b2.WriteString("diff --quince a/" + path + " b/" + path + "\n")
	b2.WriteString("@@ -1 +1 @@\n")
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitKeepEmpty(d.Text) {
			if line == "" {
				continue
			}
			b2.WriteString(prefix)
			b2.WriteString(line)
		}
	}
	return b2.String()
}

// splitKeepEmpty splits s into lines, keeping each trailing newline
// attached to its line (unlike strings.Split on "\n", which would
// strip it).
func splitKeepEmpty(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

package diff

import (
	"strings"

	"github.com/networkedplanet/quince/nquads"
)

// changeLine is a single +/- line pulled out of a unified diff, with
// its sign stripped.
type changeLine struct {
	inserted bool
	text     string
}

// filterUnifiedDiff implements spec.md §4.11's line filter: skip
// header lines until a hunk header (`@@`) is seen, then every
// subsequent line beginning with `+` or `-` is a change. Lines must
// still parse as a canonical NQuad line (at offset 1, past the sign)
// to be considered real changes — this is what lets the filter share
// its grammar with the parser and the pattern matcher (spec.md's
// design note on regex reuse across the core).
func filterUnifiedDiff(patchText string) []changeLine {
	var changes []changeLine
	inHunk := false
	for _, line := range strings.SplitAfter(patchText, "\n") {
		if line == "" {
			continue
		}
		if !inHunk {
			if strings.HasPrefix(line, "@@") {
				inHunk = true
			}
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			body := line[1:]
			if !nquads.QuadLinePattern.MatchString(body) {
				continue
			}
			changes = append(changes, changeLine{inserted: line[0] == '+', text: body})
		}
	}
	return changes
}

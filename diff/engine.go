// Package diff turns a Git unified diff of the .quince/ subtree into
// an RDF change set: a list of inserted and deleted canonical NQuad
// lines, optionally grouped and rendered as a SPARQL Update.
//
// Grounded on the original Python's quince/core/qdiff.py plus its test
// file quince/tests/qdiff_tests.py, which (unlike qdiff.py's own
// unfinished `print(diff_index)` stub) spells out the expected
// insertions/deletions/SPARQL shape in full.
package diff

import (
	"sort"
	"strings"

	"github.com/networkedplanet/quince/internal/gitrepo"
	"github.com/networkedplanet/quince/nquads"
	"github.com/networkedplanet/quince/term"
)

// Result is the {insertions, deletions} change set of spec.md §4.11.
type Result struct {
	Insertions []string
	Deletions  []string
}

// String renders deletions, a "||" separator, then insertions — the
// nquad_diff output shape.
func (r *Result) String() string {
	var b strings.Builder
	for _, d := range r.Deletions {
		b.WriteString(d)
		b.WriteByte('\n')
	}
	b.WriteString("||\n")
	for _, i := range r.Insertions {
		b.WriteString(i)
		b.WriteByte('\n')
	}
	return b.String()
}

// Options filters a diff down to a subject and/or a set of graphs.
type Options struct {
	Subject term.Term  // nil: no subject filter
	Graphs  []term.IRI // empty: no graph filter
}

// Generate resolves refs per spec.md §4.11's commit-mode rules (0, 1
// or 2 refs) and produces the {insertions, deletions} change set for
// everything under .quince/.
func Generate(repo *gitrepo.Repo, refs []string, opts Options) (*Result, error) {
	oldPaths, newPaths, content, err := resolveSides(repo, refs)
	if err != nil {
		return nil, err
	}

	paths := unionPaths(oldPaths, newPaths)
	sort.Strings(paths)

	result := &Result{}
	for _, path := range paths {
		oldText, newText, err := content(path)
		if err != nil {
			return nil, err
		}
		if oldText == newText {
			continue
		}
		patch := unifiedFileDiff(path, oldText, newText)
		for _, ch := range filterUnifiedDiff(patch) {
			if !passesFilter(ch.text, opts) {
				continue
			}
			line := strings.TrimRight(ch.text, "\n")
			if ch.inserted {
				result.Insertions = append(result.Insertions, line)
			} else {
				result.Deletions = append(result.Deletions, line)
			}
		}
	}
	return result, nil
}

// resolveSides returns the set of .quince paths on each side of the
// comparison and a content(path) accessor comparing the two sides.
func resolveSides(repo *gitrepo.Repo, refs []string) (oldPaths, newPaths []string, content func(string) (string, string, error), err error) {
	switch len(refs) {
	case 0:
		head, herr := repo.HeadCommit()
		if herr != nil {
			return nil, nil, nil, herr
		}
		oldPaths, err = gitrepo.ListTreePaths(head, gitrepo.QuinceDir+"/")
		if err != nil {
			return nil, nil, nil, err
		}
		newPaths, err = repo.WorkingTreePaths(gitrepo.QuinceDir)
		if err != nil {
			return nil, nil, nil, err
		}
		content = func(path string) (string, string, error) {
			o, _, e := gitrepo.BlobContent(head, path)
			if e != nil {
				return "", "", e
			}
			n, _, e := repo.WorkingFileContent(path)
			return o, n, e
		}
	case 1:
		a, aerr := repo.ResolveCommit(refs[0])
		if aerr != nil {
			return nil, nil, nil, aerr
		}
		oldPaths, err = gitrepo.ListTreePaths(a, gitrepo.QuinceDir+"/")
		if err != nil {
			return nil, nil, nil, err
		}
		newPaths, err = repo.WorkingTreePaths(gitrepo.QuinceDir)
		if err != nil {
			return nil, nil, nil, err
		}
		content = func(path string) (string, string, error) {
			o, _, e := gitrepo.BlobContent(a, path)
			if e != nil {
				return "", "", e
			}
			n, _, e := repo.WorkingFileContent(path)
			return o, n, e
		}
	default:
		a, aerr := repo.ResolveCommit(refs[0])
		if aerr != nil {
			return nil, nil, nil, aerr
		}
		bCommit, berr := repo.ResolveCommit(refs[1])
		if berr != nil {
			return nil, nil, nil, berr
		}
		oldPaths, err = gitrepo.ListTreePaths(a, gitrepo.QuinceDir+"/")
		if err != nil {
			return nil, nil, nil, err
		}
		newPaths, err = gitrepo.ListTreePaths(bCommit, gitrepo.QuinceDir+"/")
		if err != nil {
			return nil, nil, nil, err
		}
		content = func(path string) (string, string, error) {
			o, _, e := gitrepo.BlobContent(a, path)
			if e != nil {
				return "", "", e
			}
			n, _, e := gitrepo.BlobContent(bCommit, path)
			return o, n, e
		}
	}
	return oldPaths, newPaths, content, nil
}

func unionPaths(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, p := range append(append([]string(nil), a...), b...) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func passesFilter(line string, opts Options) bool {
	if opts.Subject == nil && len(opts.Graphs) == 0 {
		return true
	}
	m := nquads.QuadLinePattern.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	sIdx := nquads.QuadLinePattern.SubexpIndex("s")
	gIdx := nquads.QuadLinePattern.SubexpIndex("g")
	if opts.Subject != nil && m[sIdx] != opts.Subject.N3() {
		return false
	}
	if len(opts.Graphs) > 0 {
		match := false
		for _, g := range opts.Graphs {
			if m[gIdx] == g.N3() {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	return true
}

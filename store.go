// Package quince implements the content-addressed RDF quad store: the
// public API of the original Python QuinceStore, wired here over
// go-git (internal/gitrepo), the write-behind file cache
// (internal/cachefile) and the sharded path layout (internal/pathhash).
package quince

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/networkedplanet/quince/config"
	"github.com/networkedplanet/quince/internal/cachefile"
	"github.com/networkedplanet/quince/internal/gitrepo"
	"github.com/networkedplanet/quince/internal/pathhash"
	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/nquads"
	"github.com/networkedplanet/quince/term"
)

// log is the package-level logger for conditions worth surfacing but
// not worth turning into an error return, e.g. a sort pass that
// touched nothing. Mirrors the module-level logger pattern rclone and
// gitp4transfer both use ahead of any per-call context.
var log = logrus.New()

// DefaultCacheCapacity is the LRU entry count of the file cache of
// every Store built by Open/Init; neither takes a capacity argument.
const DefaultCacheCapacity = 256

// Store is the root handle: a working tree's .quince directory, its
// Git repository, its config, and the file cache sitting over it.
type Store struct {
	repo  *gitrepo.Repo
	cache *cachefile.Manager
	cfg   *config.Config
}

// Open discovers an existing repository (and its .quince store)
// starting from dir.
func Open(dir string) (*Store, error) {
	repo, err := gitrepo.Discover(dir)
	if err != nil {
		return nil, err
	}
	return newStore(repo)
}

// Init creates a new repository (or adopts an existing one) rooted at
// dir, with an empty .quince store and its post-merge hook.
func Init(dir string) (*Store, error) {
	repo, err := gitrepo.Init(dir)
	if err != nil {
		return nil, err
	}
	return newStore(repo)
}

func newStore(repo *gitrepo.Repo) (*Store, error) {
	cfgPath := filepath.Join(repo.QuincePath(), "config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return &Store{
		repo:  repo,
		cache: cachefile.NewManager(DefaultCacheCapacity),
		cfg:   cfg,
	}, nil
}

// Root returns the working tree root.
func (s *Store) Root() string { return s.repo.Root() }

// Repo exposes the underlying Git repository handle, for callers
// (such as the diff engine) that need direct commit/working-tree
// access beyond the quad-store API.
func (s *Store) Repo() *gitrepo.Repo { return s.repo }

func (s *Store) shardPath(subject term.Term) string {
	return pathhash.SubjectPath(s.repo.QuincePath(), subject.N3())
}

func skolemize(t term.Term) term.Term {
	if bn, ok := t.(term.BlankNode); ok {
		return bn.Skolemize()
	}
	return t
}

// AssertQuad skolemizes S/P/O and inserts the resulting NQuad line
// into the subject's shard file. Idempotent.
func (s *Store) AssertQuad(subj, pred, obj, graph term.Term) error {
	subj, pred, obj, graph = skolemize(subj), skolemize(pred), skolemize(obj), skolemize(graph)
	line := subj.N3() + " " + pred.N3() + " " + obj.N3() + " " + graph.N3() + " .\n"
	return s.cache.AddLine(s.shardPath(subj), line)
}

// RetractQuad removes every stored line matching the given pattern
// (nil position = wildcard). When subject is concrete, only its own
// shard is searched; when subject is itself a wildcard, every shard
// under root is scanned — spec.md's redesigned behavior, see
// DESIGN.md's "Open question decisions".
func (s *Store) RetractQuad(subj, pred, obj, graph term.Term) ([]string, error) {
	pat := nquads.CompilePattern(subj, pred, obj, graph)
	if subj != nil {
		return s.cache.RemoveLinesMatching(s.shardPath(subj), pat)
	}
	shards, err := s.shardPaths()
	if err != nil {
		return nil, err
	}
	var removed []string
	for _, path := range shards {
		r, err := s.cache.RemoveLinesMatching(path, pat)
		if err != nil {
			return nil, err
		}
		removed = append(removed, r...)
	}
	return removed, nil
}

// Exists returns every stored line matching the given pattern.
func (s *Store) Exists(subj, pred, obj, graph term.Term) ([]string, error) {
	pat := nquads.CompilePattern(subj, pred, obj, graph)
	if subj != nil {
		lines, err := s.cache.IterLines(s.shardPath(subj))
		if err != nil {
			return nil, err
		}
		return filterLines(lines, pat), nil
	}
	shards, err := s.shardPaths()
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, path := range shards {
		lines, err := s.cache.IterLines(path)
		if err != nil {
			return nil, err
		}
		matches = append(matches, filterLines(lines, pat)...)
	}
	return matches, nil
}

func filterLines(lines []string, pat *regexp.Regexp) []string {
	var out []string
	for _, l := range lines {
		if pat.MatchString(l) {
			out = append(out, l)
		}
	}
	return out
}

// AllQuads walks every .nqo file under root and returns every line,
// optionally restricted to the given graphs. Unlike Exists/Retract, it
// reads the filesystem directly rather than going through the cache.
func (s *Store) AllQuads(graphs ...term.IRI) ([]string, error) {
	var graphPattern *regexp.Regexp
	if len(graphs) > 0 {
		alts := make([]string, len(graphs))
		for i, g := range graphs {
			alts[i] = regexp.QuoteMeta(g.N3())
		}
		expr := "(?:" + alts[0]
		for _, a := range alts[1:] {
			expr += "|" + a
		}
		expr += ")"
		graphPattern = regexp.MustCompile(`^<[^>]*>\s+<[^>]*>\s+(?:<[^>]*>|"(?:[^"\\]|\\.)*"(?:\^\^<[^>]*>)?(?:@\S*)?)\s+` + expr + `\s+\.\n?$`)
	}

	var lines []string
	err := filepath.WalkDir(s.repo.QuincePath(), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != pathhash.NQOutExt {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, line := range splitLines(string(data)) {
			if graphPattern == nil || graphPattern.MatchString(line) {
				lines = append(lines, line)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func (s *Store) shardPaths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.repo.QuincePath(), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == pathhash.NQOutExt {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

// Flush writes every pending cached change to disk and stages the
// .quince/ changes for commit.
func (s *Store) Flush() error {
	if err := s.cache.Flush(); err != nil {
		return err
	}
	return s.repo.AddQuinceDir()
}

// AddNamespace registers a prefix -> IRI mapping and writes the
// config through immediately.
func (s *Store) AddNamespace(prefix, iri string) error {
	if err := s.cfg.AddNamespace(prefix, iri); err != nil {
		return err
	}
	return s.cfg.Save()
}

// RemoveNamespace unregisters a prefix and writes the config through
// immediately.
func (s *Store) RemoveNamespace(prefix string) error {
	if err := s.cfg.RemoveNamespace(prefix); err != nil {
		return err
	}
	return s.cfg.Save()
}

// ExpandPrefix resolves a registered namespace prefix, returning
// quinceerr.NoSuchNamespaceError if it is unbound.
func (s *Store) ExpandPrefix(prefix string) (string, error) {
	iri, ok := s.cfg.ExpandPrefix(prefix)
	if !ok {
		return "", &quinceerr.NoSuchNamespaceError{Prefix: prefix}
	}
	return iri, nil
}

// Namespaces lists every registered prefix -> IRI mapping.
func (s *Store) Namespaces() map[string]string { return s.cfg.Namespaces() }

// AddRemote registers a named remote endpoint, written through
// immediately.
func (s *Store) AddRemote(name, endpoint string) error {
	if err := s.cfg.AddRemote(name, endpoint); err != nil {
		return err
	}
	return s.cfg.Save()
}

// RemoveRemote unregisters a named remote, written through
// immediately.
func (s *Store) RemoveRemote(name string) error {
	if err := s.cfg.RemoveRemote(name); err != nil {
		return err
	}
	return s.cfg.Save()
}

// Remotes lists every configured remote name -> endpoint mapping.
func (s *Store) Remotes() map[string]string { return s.cfg.Remotes() }

// SortAll touches every .nqo file under root, normalizing it to
// canonical sorted-set order on the next Flush.
func (s *Store) SortAll() error {
	shards, err := s.shardPaths()
	if err != nil {
		return err
	}
	for _, path := range shards {
		if err := s.cache.Touch(path); err != nil {
			return err
		}
	}
	return s.Flush()
}

// SortModified touches every .nqo file changed since `since` (HEAD if
// empty) in the working tree, restricted to .quince/.
func (s *Store) SortModified(since string) error {
	var refs []string
	if since != "" {
		refs = []string{since}
	}
	changed, err := s.changedQuincePaths(refs)
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		log.Warn("quince: sort found nothing modified")
	}
	for _, rel := range changed {
		if err := s.cache.Touch(filepath.Join(s.repo.Root(), rel)); err != nil {
			return err
		}
	}
	return s.Flush()
}

func (s *Store) changedQuincePaths(refs []string) ([]string, error) {
	var oldPaths []string
	var oldContent func(string) (string, bool, error)
	var err error
	if len(refs) == 0 {
		hc, herr := s.repo.HeadCommit()
		if herr != nil {
			return nil, herr
		}
		oldPaths, err = gitrepo.ListTreePaths(hc, gitrepo.QuinceDir+"/")
		oldContent = func(p string) (string, bool, error) { return gitrepo.BlobContent(hc, p) }
	} else {
		c, cerr := s.repo.ResolveCommit(refs[0])
		if cerr != nil {
			return nil, cerr
		}
		oldPaths, err = gitrepo.ListTreePaths(c, gitrepo.QuinceDir+"/")
		oldContent = func(p string) (string, bool, error) { return gitrepo.BlobContent(c, p) }
	}
	if err != nil {
		return nil, err
	}
	newPaths, err := s.repo.WorkingTreePaths(gitrepo.QuinceDir)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(newPaths))
	for _, p := range newPaths {
		present[p] = true
	}
	seen := make(map[string]bool)
	var changed []string
	for _, p := range append(append([]string(nil), oldPaths...), newPaths...) {
		if seen[p] {
			continue
		}
		seen[p] = true
		if !present[p] || filepath.Ext(p) != pathhash.NQOutExt {
			continue
		}
		before, _, err := oldContent(p)
		if err != nil {
			return nil, err
		}
		after, _, err := s.repo.WorkingFileContent(p)
		if err != nil {
			return nil, err
		}
		if before != after {
			changed = append(changed, p)
		}
	}
	return changed, nil
}

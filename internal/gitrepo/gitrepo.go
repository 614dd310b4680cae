// Package gitrepo wraps the go-git library for the handful of
// operations quince needs against a Git working tree: discovering the
// repository root, initializing one, resolving commits, reading blob
// and working-tree file content, and staging the files a mutating
// operation touched. It is the "external collaborator" spec.md §1
// calls out — quince never speaks Git's wire protocol or object
// format itself.
package gitrepo

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// QuinceDir is the name of the quince store directory inside a
// working tree.
const QuinceDir = ".quince"

// PostMergeHook is the relative path, inside .git, of the hook quince
// installs at init time.
const PostMergeHook = "hooks/post-merge"

// Repo is a thin handle on a discovered or newly initialized
// repository.
type Repo struct {
	git  *git.Repository
	root string
}

// Discover walks up from dir until a .git directory is found, opening
// the repository there. It returns git.ErrRepositoryNotExists if none
// is found.
func Discover(dir string) (*Repo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &Repo{git: repo, root: wt.Filesystem.Root()}, nil
}

// Init creates a Git repository at dir (if one does not already
// exist), the .quince directory with an empty config file, and the
// post-merge hook that keeps merged quad files sorted.
func Init(dir string) (*Repo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	repo, err := git.PlainInit(abs, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(abs)
	}
	if err != nil {
		return nil, err
	}

	qdir := filepath.Join(abs, QuinceDir)
	if err := os.MkdirAll(qdir, 0o755); err != nil {
		return nil, err
	}
	configPath := filepath.Join(qdir, "config")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.WriteFile(configPath, nil, 0o644); err != nil {
			return nil, err
		}
	}
	if err := installPostMergeHook(abs); err != nil {
		return nil, err
	}
	return &Repo{git: repo, root: abs}, nil
}

func installPostMergeHook(repoRoot string) error {
	hookPath := filepath.Join(repoRoot, ".git", PostMergeHook)
	const snippet = "#!/bin/sh\nquince sort -s \"HEAD^\"\n"
	if existing, err := os.ReadFile(hookPath); err == nil {
		if strings.Contains(string(existing), "quince sort") {
			return nil
		}
		return os.WriteFile(hookPath, append(existing, []byte("\n"+snippet)...), 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(hookPath, []byte(snippet), 0o755)
}

// Root returns the absolute path of the working tree root.
func (r *Repo) Root() string { return r.root }

// QuincePath returns the absolute path of the .quince directory.
func (r *Repo) QuincePath() string { return filepath.Join(r.root, QuinceDir) }

// AddQuinceDir stages every untracked or modified path under
// .quince/, so the working tree is ready to commit after a mutating
// operation. Mirrors the original Python's git_add_files() call.
func (r *Repo) AddQuinceDir() error {
	wt, err := r.git.Worktree()
	if err != nil {
		return err
	}
	status, err := wt.Status()
	if err != nil {
		return err
	}
	for path, fileStatus := range status {
		if !strings.HasPrefix(path, QuinceDir+"/") {
			continue
		}
		if fileStatus.Worktree == git.Unmodified {
			continue
		}
		if _, err := wt.Add(path); err != nil {
			return err
		}
	}
	return nil
}

// HeadCommit returns the commit HEAD points at.
func (r *Repo) HeadCommit() (*object.Commit, error) {
	head, err := r.git.Head()
	if err != nil {
		return nil, err
	}
	return r.git.CommitObject(head.Hash())
}

// ResolveCommit resolves a revision expression (a hash, branch name,
// or an expression like "HEAD^") to a commit.
func (r *Repo) ResolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.git.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, err
	}
	return r.git.CommitObject(*hash)
}

// BlobContent returns the content of path as stored in commit, and
// whether the path existed in that commit at all.
func BlobContent(commit *object.Commit, path string) (string, bool, error) {
	file, err := commit.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	contents, err := file.Contents()
	if err != nil {
		return "", false, err
	}
	return contents, true, nil
}

// WorkingFileContent reads path (relative to the repository root)
// from the filesystem, reporting whether it exists.
func (r *Repo) WorkingFileContent(relPath string) (string, bool, error) {
	f, err := os.Open(filepath.Join(r.root, relPath))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// ListTreePaths returns every blob path under prefix in commit's tree.
func ListTreePaths(commit *object.Commit, prefix string) ([]string, error) {
	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	var paths []string
	walker := object.NewTreeWalker(tree, true, nil)
	defer walker.Close()
	for {
		name, entry, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if entry.Mode.IsFile() && strings.HasPrefix(name, prefix) {
			paths = append(paths, name)
		}
	}
	return paths, nil
}

// WorkingTreePaths walks the filesystem under prefix (relative to the
// repository root), returning every regular file's relative path.
func (r *Repo) WorkingTreePaths(prefix string) ([]string, error) {
	root := filepath.Join(r.root, prefix)
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

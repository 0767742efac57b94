package gitservice

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Repo is an opened repository plus the directory the command was started from.
// Paths handed to Repo methods are relative to that directory.
type Repo struct {
	*git.Repository

	root string // worktree root
	dir  string // absolute working directory of the caller
}

// Open finds the repository enclosing dir, walking up parent directories.
// It is the gl precondition check: a directory outside any worktree fails with ErrorNotAGitRepo.
func Open(dir string) (*Repo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("could not resolve directory %s: %w", dir, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrorNotAGitRepo
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have nothing to diff against
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, ErrorNotAGitRepo
		}
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	r := &Repo{
		Repository: repo,
		root:       wt.Filesystem.Root(),
		dir:        abs,
	}
	slog.Debug("opened repository", slog.String("root", r.root), slog.String("dir", r.dir))

	return r, nil
}

// Root returns the absolute path of the worktree root.
func (r *Repo) Root() string {
	return r.root
}

// repoPath maps a caller path to its slash-separated, repo-relative form.
// ok is false when the path falls outside the worktree.
func (r *Repo) repoPath(path string) (abs string, rel string, ok bool) {
	abs = path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.dir, path)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs, "", false
	}

	return abs, filepath.ToSlash(rel), true
}

// callerPath is the inverse of repoPath: a repo-relative path expressed relative to the caller's directory.
func (r *Repo) callerPath(rel string) string {
	abs := filepath.Join(r.root, filepath.FromSlash(rel))

	p, err := filepath.Rel(r.dir, abs)
	if err != nil {
		return abs
	}

	return p
}

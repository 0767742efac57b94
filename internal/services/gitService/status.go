package gitservice

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-git/go-git/v5"
)

// FileState is the kind of uncommitted change recorded for a tracked file
type FileState string

const (
	StateModified FileState = "modified"
	StateAdded    FileState = "added"
	StateDeleted  FileState = "deleted"
	StateRenamed  FileState = "renamed"
)

// Modification is one tracked file with uncommitted changes.
type Modification struct {
	Path     string // Relative to the directory the repo was opened from
	RepoPath string // Relative to the worktree root, slash separated
	Status   FileState
	Tracked  bool
}

// TrackedModified lists tracked files whose working version differs from the last commit,
// sorted by repo path. Untracked and ignored files are never included.
func (r *Repo) TrackedModified() ([]Modification, error) {
	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("could not get worktree status: %w", err)
	}

	var mods []Modification
	for repoPath, fileStatus := range status {
		state, ok := classifyStatus(fileStatus)
		if !ok {
			continue
		}

		mods = append(mods, Modification{
			Path:     r.callerPath(repoPath),
			RepoPath: repoPath,
			Status:   state,
			Tracked:  true,
		})
	}

	sort.Slice(mods, func(i, j int) bool {
		return mods[i].RepoPath < mods[j].RepoPath
	})

	slog.Debug("tracked files with modifications", slog.Int("count", len(mods)))

	return mods, nil
}

// classifyStatus folds go-git's staging/worktree pair into a single state.
// gl has no staging area, so a change in either column counts.
func classifyStatus(fs *git.FileStatus) (FileState, bool) {
	if fs.Worktree == git.Untracked || fs.Staging == git.Untracked {
		return "", false
	}
	if fs.Worktree == git.Unmodified && fs.Staging == git.Unmodified {
		return "", false
	}

	switch {
	case fs.Worktree == git.Deleted || fs.Staging == git.Deleted:
		return StateDeleted, true
	case fs.Staging == git.Added:
		return StateAdded, true
	case fs.Staging == git.Renamed:
		return StateRenamed, true
	default:
		return StateModified, true
	}
}

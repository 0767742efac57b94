package gitservice

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	gitindex "github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/binary"
	"github.com/pmezard/go-difflib/difflib"
)

// DiffContextLines is the number of unchanged lines shown around each hunk
const DiffContextLines = 3

// Diff compares the working version of path with its last committed version.
// Per-file conditions (missing, untracked) are reported through the DiffResult;
// the error is reserved for failures reading the repository or the file itself.
func (r *Repo) Diff(path string) (DiffResult, error) {
	abs, rel, ok := r.repoPath(path)
	if !ok {
		return DiffFileNotFound{}, nil
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DiffFileNotFound{}, nil
		}
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}
	if info.IsDir() {
		return DiffFileNotFound{}, nil
	}

	committed, err := r.committedFile(rel)
	if err != nil {
		return nil, err
	}

	if committed == nil {
		indexed, err := r.inIndex(rel)
		if err != nil {
			return nil, err
		}
		if !indexed {
			return DiffFileUntracked{}, nil
		}
	}

	working, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	patch, err := renderFilePatch(rel, committed, working)
	if err != nil {
		return nil, fmt.Errorf("could not diff %s: %w", path, err)
	}

	slog.Debug("diffed file", slog.String("path", rel), slog.Int("bytes", len(patch)))

	return DiffSuccess{Patch: patch}, nil
}

// committedFile returns the file as recorded in HEAD, or nil if HEAD does not have it
// (including a repository without commits).
func (r *Repo) committedFile(rel string) (*object.File, error) {
	ref, err := r.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := r.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("could not load commit %s: %w", ref.Hash(), err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("could not load tree of %s: %w", ref.Hash(), err)
	}

	f, err := tree.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return f, nil
}

// inIndex reports whether rel has an index entry, i.e. it was tracked but never committed.
func (r *Repo) inIndex(rel string) (bool, error) {
	idx, err := r.Storer.Index()
	if err != nil {
		return false, fmt.Errorf("could not read index: %w", err)
	}

	if _, err := idx.Entry(rel); err != nil {
		if errors.Is(err, gitindex.ErrEntryNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// renderFilePatch renders a unified diff from the committed file (nil meaning empty) to the working bytes.
func renderFilePatch(rel string, committed *object.File, working []byte) ([]byte, error) {
	fromFile := "a/" + rel
	toFile := "b/" + rel

	isBinary, err := binary.IsBinary(bytes.NewReader(working))
	if err != nil {
		return nil, err
	}
	if !isBinary && committed != nil {
		isBinary, err = committed.IsBinary()
		if err != nil {
			return nil, err
		}
	}
	if isBinary {
		return []byte(fmt.Sprintf("Binary files %s and %s differ\n", fromFile, toFile)), nil
	}

	var fromLines []string
	if committed != nil {
		content, err := committed.Contents()
		if err != nil {
			return nil, err
		}
		fromLines = splitLines(content)
	}

	ud := difflib.UnifiedDiff{
		A:        fromLines,
		B:        splitLines(string(working)),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  DiffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}

// noNewlineMarker follows a last line that has no trailing newline, as git prints it
const noNewlineMarker = "\\ No newline at end of file\n"

// splitLines splits s after each newline. Unlike difflib.SplitLines it does not
// invent an empty trailing line. A last line without a newline keeps the marker
// attached, so it differs from the same line with a newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}
	lines[last] += "\n" + noNewlineMarker

	return lines
}

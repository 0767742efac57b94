package diffService

import (
	"fmt"
	"io"
	"log/slog"

	gitservice "github.com/redjax/gl/internal/services/gitService"
	"github.com/redjax/gl/internal/utils/pprint"
)

const (
	nothingToDiffMsg = "Nothing to diff (there are no tracked files with modifications)."

	legendMinus = "lines starting with '-' are lines that are not in the working version but that are present in the last committed version of the file"
	legendPlus  = "lines starting with '+' are lines that are in the working version but not in the last committed version of the file"
)

// DiffProvider diffs one file against its last committed version
type DiffProvider interface {
	Diff(path string) (gitservice.DiffResult, error)
}

// Outcome is the result of a whole diff run
type Outcome int

const (
	Success Outcome = iota
	ErrorsFound
)

// Err maps the outcome to the error the command returns.
func (o Outcome) Err() error {
	if o == ErrorsFound {
		return ErrErrorsFound
	}
	return nil
}

// Runner resolves the files to diff and presents each one in turn.
type Runner struct {
	Status  StatusProvider
	Differ  DiffProvider
	Pager   Pager
	Printer *pprint.Printer
	// TmpDir is where diff artifacts are created, "" for the OS default
	TmpDir string
}

// Run diffs files, or every tracked file with modifications when files is empty.
// A missing or untracked file is reported and skipped; the returned Outcome records that it happened.
// A non-nil error aborts the run and comes with the zero Outcome, which callers ignore.
func (r *Runner) Run(files []string) (Outcome, error) {
	paths, err := ResolveFiles(r.Status, files)
	if err != nil {
		return Success, err
	}

	if len(paths) == 0 {
		r.Printer.Msg(nothingToDiffMsg)
		return Success, nil
	}

	outcome := Success
	for _, fp := range paths {
		res, err := r.Differ.Diff(fp)
		if err != nil {
			return Success, err
		}

		fileOutcome, err := r.present(fp, res)
		if err != nil {
			return Success, err
		}
		if fileOutcome == ErrorsFound {
			outcome = ErrorsFound
		}
	}

	return outcome, nil
}

func (r *Runner) present(fp string, res gitservice.DiffResult) (Outcome, error) {
	slog.Debug("diff result", slog.String("file", fp), slog.String("result", fmt.Sprintf("%T", res)))

	switch res := res.(type) {
	case gitservice.DiffFileNotFound:
		r.Printer.Err(fmt.Sprintf("Can't diff a non-existent file: %s", fp))
		return ErrorsFound, nil

	case gitservice.DiffFileUntracked:
		r.Printer.Err(fmt.Sprintf(
			"You tried to diff untracked file %s. It's probably a mistake. If "+
				"you really care about changes in this file you should start "+
				"tracking changes to it with gl track %s", fp, fp))
		return ErrorsFound, nil

	case gitservice.DiffSuccess:
		return Success, r.show(fp, res.Patch)

	default:
		return Success, fmt.Errorf("%w %#v for file %s", ErrUnrecognizedResult, res, fp)
	}
}

// show writes the annotated patch to a temporary file and pages it.
func (r *Runner) show(fp string, patch []byte) error {
	fill := func(w io.Writer) error {
		p := r.Printer.To(w)
		p.Msg(fmt.Sprintf("Diff of file %s with its last committed version", fp))
		p.Exp(legendMinus)
		p.Exp(legendPlus)
		p.Blank()
		if err := p.WriteErr(); err != nil {
			return err
		}

		_, err := w.Write(patch)
		return err
	}

	return WithArtifact(r.TmpDir, fill, func(path string) {
		// Paging is best effort, a failing pager does not fail the diff
		if err := r.Pager.Page(path); err != nil {
			slog.Debug("pager exited with error", slog.String("file", fp), slog.Any("error", err))
		}
	})
}

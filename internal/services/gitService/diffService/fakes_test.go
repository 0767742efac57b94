package diffService

import (
	"errors"
	"os"

	gitservice "github.com/redjax/gl/internal/services/gitService"
)

type fakeStatus struct {
	mods  []gitservice.Modification
	err   error
	calls int
}

func (f *fakeStatus) TrackedModified() ([]gitservice.Modification, error) {
	f.calls++
	return f.mods, f.err
}

type fakeDiffer struct {
	results map[string]gitservice.DiffResult
	errs    map[string]error
	calls   []string
}

func (f *fakeDiffer) Diff(path string) (gitservice.DiffResult, error) {
	f.calls = append(f.calls, path)
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	res, ok := f.results[path]
	if !ok {
		return nil, errors.New("unexpected Diff call for " + path)
	}
	return res, nil
}

// paged records what the pager saw while the artifact still existed
type paged struct {
	path    string
	content string
}

type fakePager struct {
	pages []paged
	err   error
}

func (f *fakePager) Page(path string) error {
	content, _ := os.ReadFile(path)
	f.pages = append(f.pages, paged{path: path, content: string(content)})
	return f.err
}

// unknownResult satisfies gitservice.DiffResult without being one of the known kinds
type unknownResult struct {
	gitservice.DiffSuccess
}

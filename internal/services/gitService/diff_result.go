package gitservice

// DiffResult is the outcome of diffing one file against its last committed version.
// The set of implementations is closed: DiffSuccess, DiffFileNotFound and DiffFileUntracked.
type DiffResult interface {
	diffResult()
}

// DiffSuccess carries the raw unified diff of a tracked file.
type DiffSuccess struct {
	Patch []byte
}

// DiffFileNotFound means the path does not name a file in the worktree.
type DiffFileNotFound struct{}

// DiffFileUntracked means the file exists but is not tracked.
type DiffFileUntracked struct{}

func (DiffSuccess) diffResult()       {}
func (DiffFileNotFound) diffResult()  {}
func (DiffFileUntracked) diffResult() {}

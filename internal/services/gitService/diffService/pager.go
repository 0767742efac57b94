package diffService

import (
	"os"
	"os/exec"
)

// Pager shows a file to the user and blocks until they are done with it
type Pager interface {
	Page(path string) error
}

// LessPager pages files with less(1) attached to the terminal
type LessPager struct{}

// execCommand allows swapping the pager binary in tests
var execCommand = func(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd
}

func (LessPager) Page(path string) error {
	return execCommand("less", path).Run()
}

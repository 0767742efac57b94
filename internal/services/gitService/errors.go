package gitservice

import (
	"errors"
)

// ErrorNotAGitRepo is returned when path is not inside a git working tree
var ErrorNotAGitRepo = errors.New("not a gl repository (or any of the parent directories)")

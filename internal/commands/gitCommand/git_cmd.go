package gitcommand

import (
	gitservice "github.com/redjax/gl/internal/services/gitService"
	"github.com/redjax/gl/internal/utils/spinner"
	"github.com/spf13/cobra"
)

// AddCommands attaches the repository commands to the root command.
func AddCommands(root *cobra.Command) {
	root.AddCommand(NewGitDiffCommand())
	root.AddCommand(NewGitStatusCommand())
}

// scanningStatus shows a spinner while go-git walks the worktree
type scanningStatus struct {
	repo *gitservice.Repo
}

func (s scanningStatus) TrackedModified() ([]gitservice.Modification, error) {
	stop := spinner.StartSpinner("Scanning working tree")
	defer stop()

	return s.repo.TrackedModified()
}

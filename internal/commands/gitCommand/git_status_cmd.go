package gitcommand

import (
	"os"

	"github.com/redjax/gl/internal/config"
	gitservice "github.com/redjax/gl/internal/services/gitService"
	"github.com/redjax/gl/internal/services/gitService/statusService"
	"github.com/redjax/gl/internal/utils/pprint"
	"github.com/spf13/cobra"
)

func NewGitStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List tracked files with modifications",
		Long: `List the tracked files whose working version differs from the last commit.
These are the files 'gl diff' shows when run without arguments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := gitservice.Open(".")
			if err != nil {
				return err
			}

			printer := pprint.NewStd(config.Current.Color)
			return statusService.RunGitStatus(scanningStatus{repo: repo}, printer, os.Stdout)
		},
	}

	return cmd
}

package gitcommand

import (
	"fmt"
	"log/slog"

	"github.com/redjax/gl/internal/config"
	gitservice "github.com/redjax/gl/internal/services/gitService"
	"github.com/redjax/gl/internal/services/gitService/diffService"
	"github.com/redjax/gl/internal/utils"
	"github.com/redjax/gl/internal/utils/path"
	"github.com/redjax/gl/internal/utils/pprint"
	"github.com/spf13/cobra"
)

func NewGitDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [files...]",
		Short: "Show changes in files",
		Long: `Show the changes in each file with respect to its last committed version.

With no files, every tracked file with modifications is diffed.
Each diff is opened in less; quit it to move on to the next file.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args, config.Current)
		},
	}

	return cmd
}

func runDiff(files []string, cfg config.Config) error {
	repo, err := gitservice.Open(".")
	if err != nil {
		return err
	}

	tmpDir, err := artifactDir(cfg)
	if err != nil {
		return err
	}

	if !utils.IsCommandAvailable("less") {
		slog.Warn("less not found in PATH, diffs cannot be paged")
	}

	runner := &diffService.Runner{
		Status:  scanningStatus{repo: repo},
		Differ:  repo,
		Pager:   diffService.LessPager{},
		Printer: pprint.NewStd(cfg.Color),
		TmpDir:  tmpDir,
	}

	outcome, err := runner.Run(files)
	if err != nil {
		return err
	}

	return outcome.Err()
}

// artifactDir returns the configured diff.tmpdir with ~ expanded, or "" for the OS default.
func artifactDir(cfg config.Config) (string, error) {
	if cfg.Diff.TmpDir == "" {
		return "", nil
	}

	dir, err := path.ExpandPath(cfg.Diff.TmpDir)
	if err != nil {
		return "", fmt.Errorf("invalid diff.tmpdir: %w", err)
	}

	return dir, nil
}

// The root command for the CLI.
// This root 'composes' the gl subcommands and provides global config flags like --debug.
package cmd

import (
	"errors"
	"log/slog"

	gitcommand "github.com/redjax/gl/internal/commands/gitCommand"
	"github.com/redjax/gl/internal/config"
	"github.com/redjax/gl/internal/constants"
	gitservice "github.com/redjax/gl/internal/services/gitService"
	"github.com/redjax/gl/internal/services/gitService/diffService"
	"github.com/redjax/gl/internal/utils/logging"
	"github.com/redjax/gl/internal/utils/pprint"
	"github.com/redjax/gl/internal/version"
	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
	// Styled output, config key "color"
	color bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	Use:   "gl",
	Short: "A simple version control front-end on top of git",
	Long:  `gl wraps a git repository with a smaller set of commands, e.g. 'gl diff' to page through your changes.`,
	// Errors are printed by Execute, which also picks the exit code
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	return exitCode(err, pprint.NewStd(config.Current.Color))
}

func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML or .env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&color, "color", true, "Use colors in messages")

	gitcommand.AddCommands(rootCmd)
	rootCmd.AddCommand(version.NewSelfCommand())
}

// Load configuration for CLI app
func initConfig(cmd *cobra.Command) error {
	if err := config.LoadConfig(cmd.Flags(), cfgFile); err != nil {
		return err
	}

	cfg := config.Current
	logging.Setup(cfg.Log.Format, cfg.Debug)
	slog.Debug("configuration loaded",
		slog.String("file", cfgFile),
		slog.Bool("color", cfg.Color),
		slog.String("diff.tmpdir", cfg.Diff.TmpDir),
	)

	return nil
}

// exitCode maps the error a command returned to a gl exit code, reporting it unless
// the command already reported everything itself.
func exitCode(err error, p *pprint.Printer) int {
	switch {
	case err == nil:
		return constants.SUCCESS
	case errors.Is(err, diffService.ErrErrorsFound):
		return constants.ERRORS_FOUND
	case errors.Is(err, gitservice.ErrorNotAGitRepo):
		p.Err(err.Error())
		return constants.NOT_IN_GL_REPO
	default:
		p.Err(err.Error())
		return constants.INTERNAL_ERROR
	}
}

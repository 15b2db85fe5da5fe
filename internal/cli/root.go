// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"postgen-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the postgen command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "postgen",
		Short: "Set up a freshly generated Python project",
		Long: TitleStyle.Render("postgen") + SubtitleStyle.Render(" - set up a freshly generated Python project") + `

postgen runs once, right after the project template has been rendered.
It stamps the Python version, installs the license, initializes git,
writes the pixi dependencies, installs the git hooks, makes the first
commit and configures the remote.

Answers are read from postgen.cue in the project directory, POSTGEN_*
environment variables and flags.

` + SubtitleStyle.Render("Examples:") + `
  postgen pre --package-name my_pkg       Validate answers before generation
  postgen post                            Set up the project in the current directory
  postgen post --dir ../my_pkg --skip-env Set up another directory without direnv
  postgen deps numpy matplotlib@>=3.7.2   Preview a dependency block
  postgen config show                     Show the effective answers`,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is <dir>/postgen.cue)")
	rootCmd.PersistentFlags().StringVarP(&app.flags.dir, "dir", "C", ".", "project directory")

	rootCmd.AddCommand(newPostCommand(app))
	rootCmd.AddCommand(newPreCommand(app))
	rootCmd.AddCommand(newDepsCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newIssuesCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the status of the failed command.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

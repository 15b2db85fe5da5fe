// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"io"
	"os"

	"postgen-cli/internal/config"
	"postgen-cli/internal/deps"
	"postgen-cli/internal/issue"
	"postgen-cli/internal/pipeline"
	"postgen-cli/internal/project"
	"postgen-cli/internal/toolexec"
	"postgen-cli/pkg/types"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type (
	// App wires CLI services and shared dependencies.
	App struct {
		Config config.Provider
		Runner toolexec.Runner
		stdout io.Writer
		stderr io.Writer
		flags  rootFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Runner toolexec.Runner
		Stdout io.Writer
		Stderr io.Writer
	}

	rootFlags struct {
		verbose    bool
		configPath string
		dir        string
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		Runner: deps.Runner,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		flags:  rootFlags{dir: "."},
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Runner == nil {
		app.Runner = toolexec.NewExecRunner()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// projectDir returns the absolute project directory.
func (a *App) projectDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return types.FilesystemPath(a.flags.dir).Resolve(wd), nil
}

// loadOptions builds the config inputs for cmd.
func (a *App) loadOptions(cmd *cobra.Command, dir string) config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		ProjectDir:     dir,
		Flags:          cmd.Flags(),
	}
}

// projectFs returns a filesystem rooted at dir.
func (a *App) projectFs(dir string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), dir)
}

// notesStyle picks a colored glamour style only when stdout is a terminal.
func (a *App) notesStyle() string {
	if f, ok := a.stdout.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return pipeline.AutoStyle
		}
	}
	return pipeline.PlainStyle
}

// fail renders err with its issue help and returns the ExitError for cobra.
func (a *App) fail(cmd *cobra.Command, err error) error {
	issueID, styled := classifyError(err, a.flags.verbose)
	renderServiceError(a.stderr, newServiceError(err, issueID, styled))

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: exitCodeFor(err), Err: err}
}

// exitCodeFor returns ExitUsage for bad template inputs rejected before any
// step ran, and ExitFailure for everything else.
func exitCodeFor(err error) types.ExitCode {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if ae.Operation == config.ValidateOperation {
			return types.ExitUsage
		}
		return types.ExitFailure
	}

	for _, target := range []error{
		project.ErrInvalidModuleName,
		project.ErrInvalidPrivacy,
		project.ErrInvalidProtocol,
		project.ErrInvalidProjectURL,
		deps.ErrInvalidDependency,
	} {
		if errors.Is(err, target) {
			return types.ExitUsage
		}
	}
	return types.ExitFailure
}

// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"postgen-cli/internal/project"

	"github.com/spf13/cobra"
)

func newPreCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pre",
		Short: "Validate the template answers before generation",
		Long: `Validate the template answers before the project is generated.

The package name must be a valid Python module name: a letter followed by
at least one letter, digit or underscore. github_setup and protocol are
checked against their allowed values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPre(cmd, app)
		},
	}

	addConfigFlags(cmd.Flags(), "package_name", "github_setup", "protocol")
	return cmd
}

func runPre(cmd *cobra.Command, app *App) error {
	dir, err := app.projectDir()
	if err != nil {
		return app.fail(cmd, err)
	}

	cfg, err := app.Config.Load(cmd.Context(), app.loadOptions(cmd, dir))
	if err != nil {
		return app.fail(cmd, err)
	}

	// Load only checks a name that was given; pre requires one.
	if err := project.ValidateModuleName(cfg.PackageName); err != nil {
		return app.fail(cmd, err)
	}

	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓"), "package_name="+cfg.PackageName+" is a valid Python module name")
	return nil
}

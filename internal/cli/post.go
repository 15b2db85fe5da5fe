// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"postgen-cli/internal/pipeline"
	"postgen-cli/internal/report"
	"postgen-cli/internal/toolexec"

	"github.com/spf13/cobra"
)

func newPostCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Set up the generated project",
		Long: `Set up the generated project in --dir.

Steps, in order: stamp the Python version, install the license, remove the
license catalog, git init, write the dependencies and run pixi update,
direnv allow, install the pre-commit hooks, make the initial commit and
configure the remote. The first failing step stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPost(cmd, app)
		},
	}

	addConfigFlags(cmd.Flags(),
		"author_name",
		"license",
		"pixi_dependencies",
		"pixi_test_dependencies",
		"github_setup",
		"project_url",
		"protocol",
		"remote",
		"python_version",
		"skip_env",
		"skip_hooks",
	)
	return cmd
}

func runPost(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()

	dir, err := app.projectDir()
	if err != nil {
		return app.fail(cmd, err)
	}

	cfg, err := app.Config.Load(ctx, app.loadOptions(cmd, dir))
	if err != nil {
		return app.fail(cmd, err)
	}

	logger := report.New(app.stderr, app.flags.verbose)
	inv := toolexec.NewInvoker(app.Runner, logger,
		toolexec.WithDir(dir),
		toolexec.WithOutput(app.stdout, app.stderr),
	)

	p := pipeline.New(cfg, app.projectFs(dir), inv, logger,
		pipeline.WithOutput(app.stdout),
		pipeline.WithNotesStyle(app.notesStyle()),
	)
	if err := p.Run(ctx); err != nil {
		return app.fail(cmd, err)
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"postgen-cli/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect postgen configuration",
		Long: `Inspect postgen configuration.

Configuration is read from postgen.cue in the project directory (or the
file given with --config), then POSTGEN_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var asCUE bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app, asCUE)
		},
	}
	showCmd.Flags().BoolVar(&asCUE, "cue", false, "print the configuration as a postgen.cue file")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the CUE schema of postgen.cue",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.Schema())
			return nil
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, asCUE bool) error {
	dir, err := app.projectDir()
	if err != nil {
		return app.fail(cmd, err)
	}

	opts := app.loadOptions(cmd, dir)
	cfg, path, err := config.LoadWithPath(cmd.Context(), opts)
	if err != nil {
		return app.fail(cmd, err)
	}

	if asCUE {
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
		return nil
	}

	w := app.stdout
	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)
	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	values := map[string]string{
		"package_name":           cfg.PackageName,
		"author_name":            cfg.AuthorName,
		"github_username":        cfg.GithubUsername,
		"license":                cfg.License,
		"pixi_dependencies":      cfg.Dependencies,
		"pixi_test_dependencies": cfg.TestDependencies,
		"github_setup":           cfg.GithubSetup,
		"project_url":            cfg.ProjectURL,
		"protocol":               cfg.Protocol.String(),
		"remote":                 cfg.Remote,
		"python_version":         cfg.PythonVersion,
		"min_python_minor":       fmt.Sprint(cfg.MinPythonMinor),
		"stamp_files":            strings.Join(cfg.StampFiles, ", "),
		"license_dir":            cfg.LicenseDir.String(),
		"license_file":           cfg.LicenseFile.String(),
		"manifest_file":          cfg.ManifestFile.String(),
		"skip_env":               fmt.Sprint(cfg.SkipEnv),
		"skip_hooks":             fmt.Sprint(cfg.SkipHooks),
	}
	for _, key := range config.Keys() {
		value := values[key]
		if value == "" {
			value = SubtitleStyle.Render("(unset)")
		} else {
			value = SuccessStyle.Render(value)
		}
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render(key), value)
	}
	return nil
}

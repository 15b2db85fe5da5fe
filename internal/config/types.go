// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"

	"postgen-cli/internal/license"
	"postgen-cli/internal/manifest"
	"postgen-cli/internal/project"
	"postgen-cli/internal/stamp"
	"postgen-cli/pkg/types"
)

// Config holds the answers of the template plus the knobs of the setup run.
type Config struct {
	// PackageName is the Python module name; also the name of the hosted repository.
	PackageName string `json:"package_name" mapstructure:"package_name"`
	// AuthorName replaces {author_name} in the license.
	AuthorName string `json:"author_name" mapstructure:"author_name"`
	// GithubUsername is used in the operator notes.
	GithubUsername string `json:"github_username" mapstructure:"github_username"`
	// License names a catalog entry, or "None".
	License string `json:"license" mapstructure:"license"`
	// Dependencies is the space-separated runtime dependency list.
	Dependencies string `json:"pixi_dependencies" mapstructure:"pixi_dependencies"`
	// TestDependencies is the space-separated test/dev dependency list.
	TestDependencies string `json:"pixi_test_dependencies" mapstructure:"pixi_test_dependencies"`
	// GithubSetup is "None" or a repository privacy level.
	GithubSetup string `json:"github_setup" mapstructure:"github_setup"`
	// ProjectURL is the web URL of the project, used for the git remote.
	ProjectURL string `json:"project_url" mapstructure:"project_url"`
	// Protocol is "git" or "https".
	Protocol project.Protocol `json:"protocol" mapstructure:"protocol"`
	// Remote is the name of the git remote.
	Remote string `json:"remote" mapstructure:"remote"`
	// PythonVersion pins the version to stamp; empty means ask the interpreter.
	PythonVersion string `json:"python_version" mapstructure:"python_version"`
	// MinPythonMinor is the lowest Python 3 minor version that does not warn.
	MinPythonMinor int `json:"min_python_minor" mapstructure:"min_python_minor"`
	// StampFiles lists the files (or doublestar patterns) carrying {python_version}.
	StampFiles []string `json:"stamp_files" mapstructure:"stamp_files"`
	// LicenseDir is the license catalog directory.
	LicenseDir types.FilesystemPath `json:"license_dir" mapstructure:"license_dir"`
	// LicenseFile is the destination of the installed license.
	LicenseFile types.FilesystemPath `json:"license_file" mapstructure:"license_file"`
	// ManifestFile receives the dependency blocks.
	ManifestFile types.FilesystemPath `json:"manifest_file" mapstructure:"manifest_file"`
	// SkipEnv skips the direnv step.
	SkipEnv bool `json:"skip_env" mapstructure:"skip_env"`
	// SkipHooks skips the pre-commit step.
	SkipHooks bool `json:"skip_hooks" mapstructure:"skip_hooks"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		License:        project.None,
		GithubSetup:    project.None,
		Protocol:       project.ProtocolGit,
		Remote:         "origin",
		MinPythonMinor: stamp.DefaultMinMinor,
		StampFiles:     append([]string(nil), stamp.DefaultFiles...),
		LicenseDir:     license.DefaultCatalogDir,
		LicenseFile:    license.DefaultDestination,
		ManifestFile:   manifest.DefaultPath,
	}
}

// HostingEnabled reports whether a repository should be created on the hosting service.
func (c *Config) HostingEnabled() bool {
	return c.GithubSetup != "" && c.GithubSetup != project.None
}

// Privacy returns the hosting privacy level.
func (c *Config) Privacy() project.Privacy {
	return project.Privacy(c.GithubSetup)
}

// Validate checks the inputs every run depends on. Checks that only matter to
// one step (dependency tokens, license name) are left to that step.
func (c *Config) Validate() error {
	var errs []error
	if c.PackageName != "" {
		errs = append(errs, project.ValidateModuleName(c.PackageName))
	}
	if c.HostingEnabled() {
		errs = append(errs, c.Privacy().Validate())
	}
	errs = append(errs, c.Protocol.Validate())
	for _, p := range []types.FilesystemPath{c.LicenseDir, c.LicenseFile, c.ManifestFile} {
		errs = append(errs, p.Validate())
	}
	return errors.Join(errs...)
}

// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"postgen-cli/internal/config"

	"github.com/spf13/pflag"
)

// configFlagUsage documents the config keys that can be overridden on the
// command line. Boolean keys are registered as boolean flags.
var configFlagUsage = map[string]string{
	"package_name":           "Python module name",
	"author_name":            "author written into the license",
	"license":                "license to install, or None",
	"pixi_dependencies":      "space-separated runtime dependencies (name or name@constraint)",
	"pixi_test_dependencies": "space-separated test dependencies",
	"github_setup":           "None, private, internal or public",
	"project_url":            "web URL of the project",
	"protocol":               "remote protocol: git or https",
	"remote":                 "name of the git remote",
	"python_version":         "Python version to stamp instead of asking the interpreter",
	"skip_env":               "skip allowing the direnv environment",
	"skip_hooks":             "skip installing the pre-commit hooks",
}

var boolKeys = map[string]bool{
	"skip_env":   true,
	"skip_hooks": true,
}

// addConfigFlags registers one flag per key. Flag defaults are zero values;
// config.Load only honors flags the user actually set.
func addConfigFlags(flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		name := config.FlagName(key)
		if boolKeys[key] {
			flags.Bool(name, false, configFlagUsage[key])
			continue
		}
		flags.String(name, "", configFlagUsage[key])
	}
}

// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"postgen-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "postgen"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "postgen"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes the environment variables read by Load.
	EnvPrefix = "POSTGEN"
	// ValidateOperation is the operation of the ActionableError returned when
	// loaded values fail Config.Validate.
	ValidateOperation = "validate configuration"

	// maxFileSize bounds the config file; rendered template answers are tiny.
	maxFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// keys lists every configuration key. Flags are bound under the same name
// with underscores replaced by dashes.
var keys = []string{
	"package_name",
	"author_name",
	"github_username",
	"license",
	"pixi_dependencies",
	"pixi_test_dependencies",
	"github_setup",
	"project_url",
	"protocol",
	"remote",
	"python_version",
	"min_python_minor",
	"stamp_files",
	"license_dir",
	"license_file",
	"manifest_file",
	"skip_env",
	"skip_hooks",
}

// Keys returns the configuration keys in display order.
func Keys() []string {
	return append([]string(nil), keys...)
}

// FlagName returns the command-line flag bound to key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// loadWithOptions performs option-driven config loading without touching
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	resolvedPath := ""
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Omit --config to read " + ConfigFileName + "." + ConfigFileExt + " from the project directory").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		candidate := filepath.Join(opts.ProjectDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(candidate) {
			resolvedPath = candidate
		}
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values match the schema shown by 'postgen config schema'").
				Wrap(err).
				BuildError()
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, "", err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation(ValidateOperation).
			WithResource(resolvedPath).
			WithSuggestion("github_setup must be None, private, internal or public").
			WithSuggestion("protocol must be git or https").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("package_name", d.PackageName)
	v.SetDefault("author_name", d.AuthorName)
	v.SetDefault("github_username", d.GithubUsername)
	v.SetDefault("license", d.License)
	v.SetDefault("pixi_dependencies", d.Dependencies)
	v.SetDefault("pixi_test_dependencies", d.TestDependencies)
	v.SetDefault("github_setup", d.GithubSetup)
	v.SetDefault("project_url", d.ProjectURL)
	v.SetDefault("protocol", string(d.Protocol))
	v.SetDefault("remote", d.Remote)
	v.SetDefault("python_version", d.PythonVersion)
	v.SetDefault("min_python_minor", d.MinPythonMinor)
	v.SetDefault("stamp_files", d.StampFiles)
	v.SetDefault("license_dir", string(d.LicenseDir))
	v.SetDefault("license_file", string(d.LicenseFile))
	v.SetDefault("manifest_file", string(d.ManifestFile))
	v.SetDefault("skip_env", d.SkipEnv)
	v.SetDefault("skip_hooks", d.SkipHooks)
}

// bindFlags binds every flag named after a config key. Only flags the user
// actually set take precedence over the file and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range keys {
		f := flags.Lookup(FlagName(key))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
		}
	}
	return nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxFileSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// Schema returns the embedded CUE schema.
func Schema() string {
	return configSchema
}

// GenerateCUE renders cfg as a postgen.cue file.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// postgen configuration\n")
	sb.WriteString("// Rendered by the project template; edit and re-run 'postgen post' if setup failed.\n\n")

	fmt.Fprintf(&sb, "package_name: %q\n", cfg.PackageName)
	fmt.Fprintf(&sb, "author_name: %q\n", cfg.AuthorName)
	fmt.Fprintf(&sb, "github_username: %q\n", cfg.GithubUsername)
	fmt.Fprintf(&sb, "license: %q\n", cfg.License)
	fmt.Fprintf(&sb, "pixi_dependencies: %q\n", cfg.Dependencies)
	fmt.Fprintf(&sb, "pixi_test_dependencies: %q\n", cfg.TestDependencies)
	fmt.Fprintf(&sb, "github_setup: %q\n", cfg.GithubSetup)
	fmt.Fprintf(&sb, "project_url: %q\n", cfg.ProjectURL)
	fmt.Fprintf(&sb, "protocol: %q\n", cfg.Protocol)
	fmt.Fprintf(&sb, "remote: %q\n", cfg.Remote)
	if cfg.PythonVersion != "" {
		fmt.Fprintf(&sb, "python_version: %q\n", cfg.PythonVersion)
	}
	fmt.Fprintf(&sb, "min_python_minor: %d\n", cfg.MinPythonMinor)

	sb.WriteString("stamp_files: [\n")
	for _, f := range cfg.StampFiles {
		fmt.Fprintf(&sb, "\t%q,\n", f)
	}
	sb.WriteString("]\n")

	fmt.Fprintf(&sb, "license_dir: %q\n", cfg.LicenseDir)
	fmt.Fprintf(&sb, "license_file: %q\n", cfg.LicenseFile)
	fmt.Fprintf(&sb, "manifest_file: %q\n", cfg.ManifestFile)
	fmt.Fprintf(&sb, "skip_env: %v\n", cfg.SkipEnv)
	fmt.Fprintf(&sb, "skip_hooks: %v\n", cfg.SkipHooks)

	return sb.String()
}

// SPDX-License-Identifier: MPL-2.0

// Package manifest splices compiled dependency blocks into the project manifest.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"postgen-cli/internal/deps"
	"postgen-cli/internal/report"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	// DefaultPath is the manifest location relative to the project root.
	DefaultPath = "pyproject.toml"

	// RuntimePlaceholder marks where runtime dependencies go.
	RuntimePlaceholder = "{pixi_dependencies}"
	// DevPlaceholder marks where test/dev dependencies go.
	DevPlaceholder = "{pixi_test_dependencies}"
)

// ErrInvalidManifest is the sentinel error wrapped by ManifestError.
var ErrInvalidManifest = errors.New("invalid manifest")

type (
	// ManifestError is returned when the spliced manifest is not valid TOML.
	// The manifest on disk is left unchanged.
	ManifestError struct {
		Path   string
		Line   int
		Column int
		Err    error
	}

	// Splicer writes dependency blocks into a manifest file.
	Splicer struct {
		fs       afero.Fs
		path     string
		reporter report.Reporter
	}
)

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: spliced manifest is not valid TOML: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: spliced manifest is not valid TOML: %v", e.Path, e.Err)
}

// Unwrap returns both ErrInvalidManifest and the decoder error.
func (e *ManifestError) Unwrap() []error { return []error{ErrInvalidManifest, e.Err} }

// NewSplicer creates a Splicer for the manifest at path (DefaultPath when empty).
func NewSplicer(fsys afero.Fs, path string, reporter report.Reporter) *Splicer {
	if path == "" {
		path = DefaultPath
	}
	if reporter == nil {
		reporter = report.Discard()
	}
	return &Splicer{fs: fsys, path: path, reporter: reporter}
}

// Path returns the manifest path.
func (s *Splicer) Path() string { return s.path }

// Splice compiles the runtime and dev dependency lists and replaces the two
// placeholder lines with the results. Both lists are compiled before the file
// is read, so a malformed token leaves the manifest untouched.
func (s *Splicer) Splice(runtimeDeps, devDeps string) error {
	runtimeBlock, err := deps.Compile(runtimeDeps)
	if err != nil {
		return err
	}
	devBlock, err := deps.Compile(devDeps)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return err
	}

	contents := replaceLine(string(data), RuntimePlaceholder, runtimeBlock)
	contents = replaceLine(contents, DevPlaceholder, devBlock)

	if err := validate(s.path, contents); err != nil {
		return err
	}

	info, err := s.fs.Stat(s.path)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(contents), info.Mode().Perm()); err != nil {
		return err
	}

	s.reporter.Debug("wrote dependencies", "path", s.path,
		"dependencies", strings.Count(runtimeBlock, "\n"),
		"test_dependencies", strings.Count(devBlock, "\n"))
	return nil
}

// replaceLine substitutes the placeholder together with its trailing newline,
// so an empty block leaves no blank line behind. A placeholder on the last
// line without a newline is substituted bare.
func replaceLine(contents, placeholder, block string) string {
	if strings.Contains(contents, placeholder+"\n") {
		return strings.Replace(contents, placeholder+"\n", block, 1)
	}
	return strings.Replace(contents, placeholder, block, 1)
}

func validate(path, contents string) error {
	var doc map[string]any
	err := toml.Unmarshal([]byte(contents), &doc)
	if err == nil {
		return nil
	}

	merr := &ManifestError{Path: path, Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		merr.Line, merr.Column = derr.Position()
	}
	return merr
}

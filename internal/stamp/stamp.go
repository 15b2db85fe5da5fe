// SPDX-License-Identifier: MPL-2.0

// Package stamp writes the resolved Python version into generated files.
package stamp

import (
	"path/filepath"
	"strconv"
	"strings"

	"postgen-cli/internal/report"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// Placeholder is replaced with the "major.minor" version.
	Placeholder = "{python_version}"

	// DefaultMinMinor is the lowest Python 3 minor version that does not warn.
	DefaultMinMinor = 12
)

// DefaultFiles are the generated files carrying the version placeholder.
var DefaultFiles = []string{
	".github/workflows/test.yml",
	"pyproject.toml",
}

type (
	// Stamper substitutes Placeholder in a fixed list of files.
	Stamper struct {
		fs       afero.Fs
		files    []string
		minMinor int
		reporter report.Reporter
	}

	// Option configures a Stamper.
	Option func(*Stamper)
)

// WithFiles replaces DefaultFiles. Entries with glob metacharacters are
// expanded with doublestar syntax (e.g. ".github/workflows/*.yml").
func WithFiles(files ...string) Option {
	return func(s *Stamper) { s.files = files }
}

// WithMinMinor sets the minimum Python 3 minor version.
func WithMinMinor(minor int) Option {
	return func(s *Stamper) { s.minMinor = minor }
}

// WithReporter sets the logger.
func WithReporter(r report.Reporter) Option {
	return func(s *Stamper) { s.reporter = r }
}

// NewStamper creates a Stamper operating on fsys.
func NewStamper(fsys afero.Fs, opts ...Option) *Stamper {
	s := &Stamper{
		fs:       fsys,
		files:    DefaultFiles,
		minMinor: DefaultMinMinor,
		reporter: report.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stamp replaces every Placeholder with v in each configured file. A version
// older than the minimum only logs a warning. Files without the placeholder
// are left untouched; missing files and I/O errors are returned as is.
func (s *Stamper) Stamp(v Version) error {
	s.reporter.Info("setting python version", "python_version", v.String())
	if v.Major < 3 || (v.Major == 3 && v.Minor < s.minMinor) {
		s.reporter.Warn("python version should be upgraded to the latest available python version",
			"python_version", v.String(), "minimum", "3."+strconv.Itoa(s.minMinor))
	}

	paths, err := s.expand()
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := s.stampFile(path, v.String()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stamper) expand() ([]string, error) {
	var paths []string
	for _, pattern := range s.files {
		if !hasMeta(pattern) {
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.Glob(afero.NewIOFS(s.fs), filepath.ToSlash(pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

func (s *Stamper) stampFile(path, version string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return err
	}

	contents := string(data)
	if !strings.Contains(contents, Placeholder) {
		s.reporter.Debug("no version placeholder", "path", path)
		return nil
	}
	contents = strings.ReplaceAll(contents, Placeholder, version)

	if err := afero.WriteFile(s.fs, path, []byte(contents), info.Mode().Perm()); err != nil {
		return err
	}

	if ext := filepath.Ext(path); ext == ".yml" || ext == ".yaml" {
		var doc any
		if err := yaml.Unmarshal([]byte(contents), &doc); err != nil {
			s.reporter.Warn("stamped file is not valid YAML", "path", path, "error", err)
		}
	}
	return nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{`)
}

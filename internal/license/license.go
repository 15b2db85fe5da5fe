// SPDX-License-Identifier: MPL-2.0

// Package license installs a license text from the template's license catalog.
//
// The catalog is a directory of plain-text templates named by lower-case SPDX-like
// identifiers (mit, apache-2.0, bsd-3-clause, ...). The chosen template is copied to
// LICENSE with its {year} and {author_name} placeholders filled in. The catalog is
// generation-time scaffolding and is removed afterwards whether or not a license
// was installed.
package license

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"postgen-cli/internal/report"

	"github.com/spf13/afero"
)

const (
	// DefaultCatalogDir is the catalog location relative to the project root.
	DefaultCatalogDir = "licenses"
	// DefaultDestination is where the chosen license is written.
	DefaultDestination = "LICENSE"

	// None is the template value meaning "no license".
	None = "None"

	yearPlaceholder   = "{year}"
	authorPlaceholder = "{author_name}"
)

// ErrNotFound is the sentinel error wrapped by NotFoundError.
var ErrNotFound = errors.New("license not found")

type (
	// NotFoundError is returned when the requested license is not in the catalog.
	NotFoundError struct {
		Name      string
		Available []string
	}

	// Installer copies catalog entries into place.
	Installer struct {
		fs         afero.Fs
		catalogDir string
		dest       string
		author     string
		now        func() time.Time
		reporter   report.Reporter
	}

	// Option configures an Installer.
	Option func(*Installer)
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("license=%q is not available yet; select from: %s", e.Name, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrNotFound so callers can use errors.Is for programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// WithCatalogDir overrides DefaultCatalogDir.
func WithCatalogDir(dir string) Option {
	return func(i *Installer) { i.catalogDir = dir }
}

// WithDestination overrides DefaultDestination.
func WithDestination(path string) Option {
	return func(i *Installer) { i.dest = path }
}

// WithClock sets the time source used for {year}.
func WithClock(now func() time.Time) Option {
	return func(i *Installer) { i.now = now }
}

// WithReporter sets the logger.
func WithReporter(r report.Reporter) Option {
	return func(i *Installer) { i.reporter = r }
}

// NewInstaller creates an Installer operating on fsys. author replaces {author_name}.
func NewInstaller(fsys afero.Fs, author string, opts ...Option) *Installer {
	i := &Installer{
		fs:         fsys,
		catalogDir: DefaultCatalogDir,
		dest:       DefaultDestination,
		author:     author,
		now:        time.Now,
		reporter:   report.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Available lists the catalog entries in lexical order.
func (i *Installer) Available() ([]string, error) {
	entries, err := afero.ReadDir(i.fs, i.catalogDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Install writes the named license to the destination. An empty name or None
// is a no-op that does not touch the filesystem.
func (i *Installer) Install(name string) error {
	if name == "" || name == None {
		i.reporter.Debug("no license set")
		return nil
	}

	name = strings.ToLower(name)
	available, err := i.Available()
	if err != nil {
		return err
	}
	if idx := sort.SearchStrings(available, name); idx == len(available) || available[idx] != name {
		return &NotFoundError{Name: name, Available: available}
	}

	text, err := afero.ReadFile(i.fs, filepath.Join(i.catalogDir, name))
	if err != nil {
		return err
	}

	contents := strings.ReplaceAll(string(text), yearPlaceholder, strconv.Itoa(i.now().Year()))
	contents = strings.ReplaceAll(contents, authorPlaceholder, i.author)

	if err := afero.WriteFile(i.fs, i.dest, []byte(contents), 0o644); err != nil {
		return err
	}

	i.reporter.Debug("set license", "license", name, "path", i.dest)
	return nil
}

// RemoveCatalog deletes the catalog directory and everything in it.
func (i *Installer) RemoveCatalog() error {
	return i.fs.RemoveAll(i.catalogDir)
}

// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"os"
	"testing"

	"postgen-cli/internal/deps"

	"github.com/spf13/afero"
)

const template = `[project]
name = "widget"

[tool.pixi.dependencies]
python = "3.12.*"
{pixi_dependencies}

[tool.pixi.feature.test.dependencies]
pytest = "*"
{pixi_test_dependencies}

[tool.pixi.environments]
dev = ["test"]
`

func newManifestFs(t *testing.T, body string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, DefaultPath, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return fs
}

func read(t *testing.T, fs afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(fs, DefaultPath)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	return string(data)
}

func TestSplice(t *testing.T) {
	t.Parallel()

	fs := newManifestFs(t, template)
	if err := NewSplicer(fs, "", nil).Splice("numpy matplotlib@>=3.7.2", "hypothesis@6.*"); err != nil {
		t.Fatalf("Splice returned error: %v", err)
	}

	want := `[project]
name = "widget"

[tool.pixi.dependencies]
python = "3.12.*"
numpy = "*"
matplotlib = ">=3.7.2"

[tool.pixi.feature.test.dependencies]
pytest = "*"
hypothesis = "6.*"

[tool.pixi.environments]
dev = ["test"]
`
	if got := read(t, fs); got != want {
		t.Errorf("manifest =\n%s\nwant\n%s", got, want)
	}
}

func TestSplice_EmptyListsLeaveNoBlankLines(t *testing.T) {
	t.Parallel()

	fs := newManifestFs(t, template)
	if err := NewSplicer(fs, "", nil).Splice("", "  "); err != nil {
		t.Fatalf("Splice returned error: %v", err)
	}

	want := `[project]
name = "widget"

[tool.pixi.dependencies]
python = "3.12.*"

[tool.pixi.feature.test.dependencies]
pytest = "*"

[tool.pixi.environments]
dev = ["test"]
`
	if got := read(t, fs); got != want {
		t.Errorf("manifest =\n%s\nwant\n%s", got, want)
	}
}

func TestSplice_InvalidTokenWritesNothing(t *testing.T) {
	t.Parallel()

	base := newManifestFs(t, template)
	// Read-only: a write attempt would surface as a different error.
	fs := afero.NewReadOnlyFs(base)

	for _, lists := range [][2]string{
		{"hello@1.2.3@v40", ""},
		{"numpy", "pytest@1@2"},
	} {
		err := NewSplicer(fs, "", nil).Splice(lists[0], lists[1])
		if !errors.Is(err, deps.ErrInvalidDependency) {
			t.Errorf("Splice(%q, %q) error = %v, want ErrInvalidDependency", lists[0], lists[1], err)
		}
	}
	if got := read(t, base); got != template {
		t.Errorf("manifest modified after invalid token")
	}
}

func TestSplice_PlaceholderAbsentIsNoop(t *testing.T) {
	t.Parallel()

	body := "[project]\nname = \"widget\"\n"
	fs := newManifestFs(t, body)
	if err := NewSplicer(fs, "", nil).Splice("numpy", "pytest"); err != nil {
		t.Fatalf("Splice returned error: %v", err)
	}
	if got := read(t, fs); got != body {
		t.Errorf("manifest = %q, want unchanged %q", got, body)
	}
}

func TestSplice_PlaceholderAtEOF(t *testing.T) {
	t.Parallel()

	fs := newManifestFs(t, "[tool.pixi.dependencies]\n{pixi_dependencies}")
	if err := NewSplicer(fs, "", nil).Splice("numpy", ""); err != nil {
		t.Fatalf("Splice returned error: %v", err)
	}
	if got := read(t, fs); got != "[tool.pixi.dependencies]\nnumpy = \"*\"\n" {
		t.Errorf("manifest = %q", got)
	}
}

func TestSplice_InvalidTOML(t *testing.T) {
	t.Parallel()

	// A dependency named like a table header cannot be a bare key.
	body := "[tool.pixi.dependencies]\n{pixi_dependencies}"
	fs := newManifestFs(t, body)

	err := NewSplicer(fs, "", nil).Splice("bad]name", "")
	if !errors.Is(err, ErrInvalidManifest) {
		t.Fatalf("Splice error = %v, want ErrInvalidManifest", err)
	}
	var merr *ManifestError
	if !errors.As(err, &merr) {
		t.Fatalf("error type = %T, want *ManifestError", err)
	}
	if merr.Line != 2 {
		t.Errorf("Line = %d, want 2", merr.Line)
	}
	if got := read(t, fs); got != body {
		t.Errorf("manifest written despite invalid TOML: %q", got)
	}
}

func TestSplice_MissingManifest(t *testing.T) {
	t.Parallel()

	err := NewSplicer(afero.NewMemMapFs(), "", nil).Splice("numpy", "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Splice error = %v, want os.ErrNotExist", err)
	}
}

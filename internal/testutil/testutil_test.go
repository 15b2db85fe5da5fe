// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustWriteFileCreatesParents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := MustWriteFile(t, dir, "licenses/mit", "MIT {year}")

	if want := filepath.Join(dir, "licenses", "mit"); path != want {
		t.Errorf("MustWriteFile() = %q, want %q", path, want)
	}
	if got := MustReadFile(t, path); got != "MIT {year}" {
		t.Errorf("MustReadFile() = %q", got)
	}
}

func TestMustChdirRestores(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	restore := MustChdir(t, dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	resolved, _ := filepath.EvalSymlinks(dir)
	if wd != dir && wd != resolved {
		t.Errorf("working directory = %q, want %q", wd, dir)
	}

	restore()
	if wd, _ := os.Getwd(); wd != orig {
		t.Errorf("working directory after restore = %q, want %q", wd, orig)
	}
}

func TestMustSetenvRestoresUnset(t *testing.T) {
	const key = "POSTGEN_TESTUTIL_SETENV"
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}

	restore := MustSetenv(t, key, "1")
	if got := os.Getenv(key); got != "1" {
		t.Errorf("Getenv(%s) = %q, want 1", key, got)
	}

	restore()
	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after restore", key)
	}
}

// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	var live bytes.Buffer
	result, err := NewExecRunner().Run(context.Background(), "sh", []string{"-c", "echo hello"}, RunOptions{Stdout: &live})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.ExitCode.IsSuccess() {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
	if strings.TrimSpace(result.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want hello", result.Stdout)
	}
	if strings.TrimSpace(live.String()) != "hello" {
		t.Errorf("live stdout = %q, want hello", live.String())
	}
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	result, err := NewExecRunner().Run(context.Background(), "sh", []string{"-c", "echo oops >&2; exit 3"}, RunOptions{})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
	if strings.TrimSpace(result.Stderr) != "oops" {
		t.Errorf("Stderr = %q, want oops", result.Stderr)
	}
}

func TestExecRunner_Dir(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	dir := t.TempDir()
	result, err := NewExecRunner().Run(context.Background(), "sh", []string{"-c", "pwd"}, RunOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(result.Stdout, strings.TrimPrefix(dir, "/private")) {
		t.Errorf("pwd = %q, want %q", result.Stdout, dir)
	}
}

func TestExecRunner_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewExecRunner().Run(context.Background(), "this_program_does_not_exist", nil, RunOptions{})
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestExecRunner_MissingDir(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	dir := filepath.Join(t.TempDir(), "not-here")
	_, err := NewExecRunner().Run(context.Background(), "sh", []string{"-c", "true"}, RunOptions{Dir: dir})
	if err == nil {
		t.Fatal("expected error for missing working directory")
	}
	if IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = true, want false for a missing directory", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap fs.ErrNotExist", err)
	}
}

func TestExecRunner_MissingPathQualifiedProgram(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	_, err := NewExecRunner().Run(context.Background(), filepath.Join(t.TempDir(), "nope"), nil, RunOptions{})
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestCheckProgram_MissingDirIsToolFailure(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	inv := NewInvoker(NewExecRunner(), nil, WithDir(filepath.Join(t.TempDir(), "not-here")))
	err := inv.CheckProgram(context.Background(), "sh", "apt install sh")
	if errors.Is(err, ErrToolMissing) {
		t.Fatalf("error = %v, want a tool failure rather than a missing tool", err)
	}
	if !errors.Is(err, ErrToolFailed) {
		t.Errorf("error = %v, want ErrToolFailed", err)
	}
}

func TestCheckProgram_RealMissingExecutable(t *testing.T) {
	t.Parallel()

	inv := NewInvoker(NewExecRunner(), nil)
	err := inv.CheckProgram(context.Background(), "this_program_does_not_exist", "nothing")
	if !errors.Is(err, ErrToolMissing) {
		t.Fatalf("error = %v, want ErrToolMissing", err)
	}
	want := "this_program_does_not_exist is not installed; install with `nothing`"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestQuoteForLog(t *testing.T) {
	t.Parallel()

	got := quoteForLog([]string{"git", "commit", "-m", "Setup"})
	if got != "git commit -m Setup" {
		t.Errorf("quoteForLog = %q", got)
	}
	got = quoteForLog([]string{"gh", "repo", "create", "it's"})
	if !strings.HasPrefix(got, "gh repo create ") || strings.HasSuffix(got, " it's") {
		t.Errorf("quoteForLog did not quote apostrophe: %q", got)
	}
}

// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"

	"postgen-cli/pkg/types"
)

type (
	// Result holds the outcome of a process that ran to completion.
	Result struct {
		ExitCode types.ExitCode
		Stdout   string
		Stderr   string
	}

	// RunOptions configures a single process execution.
	RunOptions struct {
		// Dir is the working directory (optional).
		Dir string
		// Env is overlaid on the inherited environment (optional).
		Env map[string]string
		// Stdout and Stderr receive a live copy of the output when non-nil.
		// Output is always captured into Result as well.
		Stdout io.Writer
		Stderr io.Writer
	}

	// Runner executes a program with an explicit argument list.
	Runner interface {
		// Run returns a Result with ExitCode set whenever the process exits,
		// including non-zero exits. An error is returned only when the process
		// could not be run (executable not found, permission denied, ctx canceled).
		Run(ctx context.Context, name string, args []string, opts RunOptions) (Result, error)
	}

	// ExecRunner is the production Runner backed by os/exec.
	ExecRunner struct{}
)

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args and captures its output.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOptions) (Result, error) {
	if opts.Dir != "" {
		// A missing working directory must not read as a missing executable.
		if _, err := os.Stat(opts.Dir); err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				pathErr.Op = "chdir"
			}
			return Result{}, err
		}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, opts.Stdout)
	cmd.Stderr = tee(&stderr, opts.Stderr)

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := types.ExitCode(exitErr.ExitCode())
		if code.Validate() != nil {
			// Killed by a signal: ExitCode() reports -1.
			code = 1
		}
		result.ExitCode = code
		return result, nil
	}

	return result, err
}

// IsNotFound reports whether err means the executable does not exist. A
// working directory that does not exist ("chdir" errors) is not a match.
func IsNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && pathErr.Op != "chdir" && errors.Is(pathErr.Err, fs.ErrNotExist)
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

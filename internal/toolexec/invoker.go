// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"postgen-cli/internal/report"

	"mvdan.cc/sh/v3/syntax"
)

type (
	// Invoker runs whitespace-separated command lines through a Runner.
	Invoker struct {
		runner   Runner
		reporter report.Reporter
		dir      string
		stdout   io.Writer
		stderr   io.Writer
	}

	// Option configures an Invoker.
	Option func(*Invoker)

	// CallOption configures a single Run call.
	CallOption func(*callConfig)

	callConfig struct {
		failFast bool
		capture  bool
		quiet    bool
	}
)

// WithDir sets the working directory for every command.
func WithDir(dir string) Option {
	return func(i *Invoker) { i.dir = dir }
}

// WithOutput sets where streamed command output goes (default os.Stdout/os.Stderr).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(i *Invoker) {
		i.stdout = stdout
		i.stderr = stderr
	}
}

// WithFailFast controls whether a non-zero exit is returned as a ToolFailedError
// (the default) or left for the caller to inspect in the Result.
func WithFailFast(failFast bool) CallOption {
	return func(c *callConfig) { c.failFast = failFast }
}

// Capture keeps stdout off the terminal; it is still available in the Result.
func Capture() CallOption {
	return func(c *callConfig) { c.capture = true }
}

// Quiet discards both output streams.
func Quiet() CallOption {
	return func(c *callConfig) { c.quiet = true }
}

// NewInvoker creates an Invoker.
func NewInvoker(runner Runner, reporter report.Reporter, opts ...Option) *Invoker {
	if reporter == nil {
		reporter = report.Discard()
	}
	i := &Invoker{
		runner:   runner,
		reporter: reporter,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Dir returns the working directory commands run in.
func (i *Invoker) Dir() string { return i.dir }

// Run splits commandLine on whitespace and executes it.
func (i *Invoker) Run(ctx context.Context, commandLine string, opts ...CallOption) (Result, error) {
	cfg := callConfig{failFast: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return Result{}, ErrEmptyCommand
	}
	program, args := fields[0], fields[1:]

	i.reporter.Debug("calling", "cmd", quoteForLog(fields))

	runOpts := RunOptions{Dir: i.dir}
	if !cfg.quiet {
		runOpts.Stderr = i.stderr
		if !cfg.capture {
			runOpts.Stdout = i.stdout
		}
	}

	result, err := i.runner.Run(ctx, program, args, runOpts)
	if err != nil {
		if IsNotFound(err) {
			return result, &ToolMissingError{Program: program}
		}
		return result, &ToolFailedError{Program: program, Args: args, ExitCode: 1, Err: err}
	}

	if cfg.failFast && !result.ExitCode.IsSuccess() {
		return result, &ToolFailedError{
			Program:  program,
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   strings.TrimSpace(result.Stderr),
		}
	}
	return result, nil
}

// Output runs commandLine and returns its trimmed stdout.
func (i *Invoker) Output(ctx context.Context, commandLine string, opts ...CallOption) (string, error) {
	result, err := i.Run(ctx, commandLine, append([]CallOption{Capture()}, opts...)...)
	return strings.TrimSpace(result.Stdout), err
}

// CheckProgram invokes program with its output discarded to confirm it is
// installed and usable. installHint is attached to the ToolMissingError.
func (i *Invoker) CheckProgram(ctx context.Context, program, installHint string) error {
	_, err := i.Run(ctx, program, Quiet())
	var missing *ToolMissingError
	if errors.As(err, &missing) {
		missing.InstallHint = installHint
	}
	return err
}

// quoteForLog renders fields as a shell command line an operator can paste.
func quoteForLog(fields []string) string {
	quoted := make([]string, len(fields))
	for n, f := range fields {
		q, err := syntax.Quote(f, syntax.LangBash)
		if err != nil {
			q = f
		}
		quoted[n] = q
	}
	return strings.Join(quoted, " ")
}

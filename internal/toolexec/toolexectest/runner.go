// SPDX-License-Identifier: MPL-2.0

// Package toolexectest provides a scripted toolexec.Runner for tests.
package toolexectest

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	"postgen-cli/internal/toolexec"
	"postgen-cli/pkg/types"
)

type (
	// Call is one recorded invocation.
	Call struct {
		Name string
		Args []string
		Dir  string
	}

	// Response is the scripted outcome for a command line.
	Response struct {
		ExitCode types.ExitCode
		Stdout   string
		Stderr   string
		// Err is returned as the Runner error (an OS-level failure).
		Err error
	}

	// Runner answers commands from a script and records every call.
	// Unscripted commands succeed with empty output.
	Runner struct {
		mu        sync.Mutex
		calls     []Call
		responses map[string]Response
		missing   map[string]bool
	}
)

// String returns the call as a space-joined command line.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// NewRunner creates an empty scripted Runner.
func NewRunner() *Runner {
	return &Runner{
		responses: make(map[string]Response),
		missing:   make(map[string]bool),
	}
}

// On scripts the response for an exact command line.
func (r *Runner) On(commandLine string, resp Response) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[strings.Join(strings.Fields(commandLine), " ")] = resp
	return r
}

// Missing makes every invocation of program fail as "executable not found".
func (r *Runner) Missing(program string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missing[program] = true
	return r
}

// Run implements toolexec.Runner.
func (r *Runner) Run(_ context.Context, name string, args []string, opts toolexec.RunOptions) (toolexec.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	missing := r.missing[name]
	resp := r.responses[call.String()]
	r.mu.Unlock()

	if missing {
		return toolexec.Result{}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}

	write(opts.Stdout, resp.Stdout)
	write(opts.Stderr, resp.Stderr)

	result := toolexec.Result{ExitCode: resp.ExitCode, Stdout: resp.Stdout, Stderr: resp.Stderr}
	return result, resp.Err
}

// Calls returns a copy of the recorded calls.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// CommandLines returns the recorded calls rendered as command lines.
func (r *Runner) CommandLines() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

func write(w io.Writer, s string) {
	if w != nil && s != "" {
		_, _ = io.WriteString(w, s)
	}
}

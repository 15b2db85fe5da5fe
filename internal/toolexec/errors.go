// SPDX-License-Identifier: MPL-2.0

package toolexec

import (
	"errors"
	"fmt"
	"strings"

	"postgen-cli/pkg/types"
)

var (
	// ErrToolMissing is the sentinel error wrapped by ToolMissingError.
	ErrToolMissing = errors.New("tool not installed")

	// ErrToolFailed is the sentinel error wrapped by ToolFailedError.
	ErrToolFailed = errors.New("tool failed")

	// ErrEmptyCommand is returned when a command line has no fields.
	ErrEmptyCommand = errors.New("empty command line")
)

type (
	// ToolMissingError is returned when an executable cannot be found.
	ToolMissingError struct {
		Program string
		// InstallHint tells the operator how to obtain the program (optional).
		InstallHint string
	}

	// ToolFailedError is returned when an executable exits non-zero or the
	// process could not be run for an OS-level reason.
	ToolFailedError struct {
		Program  string
		Args     []string
		ExitCode types.ExitCode
		// Stderr holds the captured standard error, trimmed.
		Stderr string
		// Err is the OS-level failure, if the process did not run to completion.
		Err error
	}
)

// Error implements the error interface.
func (e *ToolMissingError) Error() string {
	if e.InstallHint != "" {
		return fmt.Sprintf("%s is not installed; install with `%s`", e.Program, e.InstallHint)
	}
	return fmt.Sprintf("%s is not installed", e.Program)
}

// Unwrap returns ErrToolMissing so callers can use errors.Is for programmatic detection.
func (e *ToolMissingError) Unwrap() error { return ErrToolMissing }

// CommandLine returns the program and its arguments joined by spaces.
func (e *ToolFailedError) CommandLine() string {
	return strings.Join(append([]string{e.Program}, e.Args...), " ")
}

// Error implements the error interface.
func (e *ToolFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("issue with %s encountered: `%s`: %v", e.Program, e.CommandLine(), e.Err)
	}
	msg := fmt.Sprintf("issue with %s encountered: `%s` exited with status %s", e.Program, e.CommandLine(), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns ErrToolFailed so callers can use errors.Is for programmatic detection.
func (e *ToolFailedError) Unwrap() error { return ErrToolFailed }

// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
)

type (
	// Policy decides what a step failure does to the run.
	Policy int

	// Step is one unit of setup work.
	Step struct {
		// Name identifies the step in logs and errors.
		Name string
		// Target is the state reached once the step has run.
		Target State
		// Policy is Fatal unless stated otherwise.
		Policy Policy
		// Skip, when set and returning true, bypasses Run.
		Skip func() bool
		// Run performs the work.
		Run func(ctx context.Context) error
		// Resource is the file, license or remote the step works on, if any.
		Resource string
		// Suggestions are shown to the operator when the step fails.
		Suggestions []string
	}
)

const (
	// Fatal failures stop the run.
	Fatal Policy = iota
	// BestEffort failures are logged and the run continues.
	BestEffort
)

// String returns "fatal" or "best-effort".
func (p Policy) String() string {
	if p == BestEffort {
		return "best-effort"
	}
	return "fatal"
}

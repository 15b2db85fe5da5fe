// SPDX-License-Identifier: MPL-2.0

package deps

import (
	"errors"
	"fmt"
)

// ErrInvalidDependency is the sentinel error wrapped by InvalidDependencyError.
var ErrInvalidDependency = errors.New("invalid dependency")

// InvalidDependencyError is returned when a dependency token is blank or
// contains more than one '@' separator.
type InvalidDependencyError struct {
	Token string
}

// Error implements the error interface.
func (e *InvalidDependencyError) Error() string {
	if e.Token == "" {
		return "blank dependency"
	}
	return fmt.Sprintf("unable to process dependency %q", e.Token)
}

// Unwrap returns ErrInvalidDependency so callers can use errors.Is for programmatic detection.
func (e *InvalidDependencyError) Unwrap() error { return ErrInvalidDependency }

// SPDX-License-Identifier: MPL-2.0

package stamp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"postgen-cli/internal/toolexec"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid interpreter version")

var numericPrefix = regexp.MustCompile(`^\d+(\.\d+)*`)

// interpreters are probed in order when no version is configured.
var interpreters = []string{"python3", "python"}

type (
	// Version is an interpreter major.minor version.
	Version struct {
		Major int
		Minor int
	}

	// InvalidVersionError is returned when a version string cannot be parsed.
	InvalidVersionError struct {
		Value string
	}
)

// String renders the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("cannot determine major.minor from %q", e.Value)
}

// Unwrap returns ErrInvalidVersion so callers can use errors.Is for programmatic detection.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// ParseVersion accepts "3.12", "3.12.4", "v3.12", "3.13.0rc1" and the output
// of "python --version" ("Python 3.12.4").
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Python"))
	raw = strings.TrimPrefix(raw, "v")

	num := numericPrefix.FindString(raw)
	if num == "" || !strings.Contains(num, ".") {
		return Version{}, &InvalidVersionError{Value: s}
	}

	mm := semver.MajorMinor("v" + num)
	if mm == "" {
		return Version{}, &InvalidVersionError{Value: s}
	}

	majorStr, minorStr, _ := strings.Cut(strings.TrimPrefix(mm, "v"), ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return Version{}, &InvalidVersionError{Value: s}
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return Version{}, &InvalidVersionError{Value: s}
	}
	return Version{Major: major, Minor: minor}, nil
}

// ResolveVersion returns the configured version when set, otherwise the
// version reported by the first interpreter found on PATH.
func ResolveVersion(ctx context.Context, inv *toolexec.Invoker, configured string) (Version, error) {
	if configured != "" {
		return ParseVersion(configured)
	}

	var lastErr error
	for _, name := range interpreters {
		out, err := inv.Output(ctx, name+" --version")
		if err != nil {
			lastErr = err
			continue
		}
		return ParseVersion(out)
	}
	return Version{}, lastErr
}

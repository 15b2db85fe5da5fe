// SPDX-License-Identifier: MPL-2.0

// Package project validates the template inputs that describe the generated
// project: its Python module name, hosting privacy and git remote.
package project

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// None is the literal template value meaning "option not selected".
const None = "None"

var (
	// ErrInvalidModuleName is the sentinel error wrapped by InvalidModuleNameError.
	ErrInvalidModuleName = errors.New("invalid module name")
	// ErrInvalidPrivacy is the sentinel error wrapped by InvalidPrivacyError.
	ErrInvalidPrivacy = errors.New("invalid repository privacy")
	// ErrInvalidProtocol is the sentinel error wrapped by InvalidProtocolError.
	ErrInvalidProtocol = errors.New("invalid remote protocol")
	// ErrInvalidProjectURL is the sentinel error wrapped by InvalidProjectURLError.
	ErrInvalidProjectURL = errors.New("invalid project url")

	modulePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]+$`)
)

type (
	// Privacy is the visibility of a repository created on the hosting service.
	Privacy string

	// Protocol selects how the git remote URL is written.
	Protocol string

	// InvalidModuleNameError is returned when a package name is not a valid
	// Python module name.
	InvalidModuleNameError struct {
		Value string
	}

	// InvalidPrivacyError is returned for a hosting directive outside the allowed set.
	InvalidPrivacyError struct {
		Value Privacy
	}

	// InvalidProtocolError is returned for a remote protocol other than git or https.
	InvalidProtocolError struct {
		Value Protocol
	}

	// InvalidProjectURLError is returned when a project URL has no host or path.
	InvalidProjectURLError struct {
		Value string
	}
)

const (
	// PrivacyPrivate creates a repository visible only to its owner and collaborators.
	PrivacyPrivate Privacy = "private"
	// PrivacyInternal creates a repository visible to members of the enterprise.
	PrivacyInternal Privacy = "internal"
	// PrivacyPublic creates a repository visible to everyone.
	PrivacyPublic Privacy = "public"

	// ProtocolGit writes the remote as git@host:path (SSH).
	ProtocolGit Protocol = "git"
	// ProtocolHTTPS writes the remote as the project URL itself.
	ProtocolHTTPS Protocol = "https"
)

// Privacies lists the accepted hosting privacy levels.
func Privacies() []Privacy {
	return []Privacy{PrivacyPrivate, PrivacyInternal, PrivacyPublic}
}

// ValidateModuleName checks that name is usable as a Python module name.
func ValidateModuleName(name string) error {
	if !modulePattern.MatchString(name) {
		return &InvalidModuleNameError{Value: name}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("module_name=%q is not a valid Python module name", e.Value)
}

// Unwrap returns ErrInvalidModuleName so callers can use errors.Is for programmatic detection.
func (e *InvalidModuleNameError) Unwrap() error { return ErrInvalidModuleName }

// Validate returns an error if p is not one of Privacies.
func (p Privacy) Validate() error {
	if !slices.Contains(Privacies(), p) {
		return &InvalidPrivacyError{Value: p}
	}
	return nil
}

// String returns the privacy level.
func (p Privacy) String() string { return string(p) }

// Error implements the error interface.
func (e *InvalidPrivacyError) Error() string {
	return fmt.Sprintf("privacy=%q not in %v", e.Value, Privacies())
}

// Unwrap returns ErrInvalidPrivacy so callers can use errors.Is for programmatic detection.
func (e *InvalidPrivacyError) Unwrap() error { return ErrInvalidPrivacy }

// Validate returns an error if p is neither git nor https.
func (p Protocol) Validate() error {
	switch p {
	case ProtocolGit, ProtocolHTTPS:
		return nil
	default:
		return &InvalidProtocolError{Value: p}
	}
}

// String returns the protocol name.
func (p Protocol) String() string { return string(p) }

// Error implements the error interface.
func (e *InvalidProtocolError) Error() string {
	return fmt.Sprintf("protocol=%q must be %q or %q", e.Value, ProtocolGit, ProtocolHTTPS)
}

// Unwrap returns ErrInvalidProtocol so callers can use errors.Is for programmatic detection.
func (e *InvalidProtocolError) Unwrap() error { return ErrInvalidProtocol }

// Error implements the error interface.
func (e *InvalidProjectURLError) Error() string {
	return fmt.Sprintf("project_url=%q must look like https://host/owner/name", e.Value)
}

// Unwrap returns ErrInvalidProjectURL so callers can use errors.Is for programmatic detection.
func (e *InvalidProjectURLError) Unwrap() error { return ErrInvalidProjectURL }

// RemoteURL converts a web URL of the project into the URL used for the git
// remote. With ProtocolGit, https://github.com/owner/name becomes
// git@github.com:owner/name; with ProtocolHTTPS the URL is used unchanged.
func RemoteURL(projectURL string, protocol Protocol) (string, error) {
	if err := protocol.Validate(); err != nil {
		return "", err
	}

	u, err := url.Parse(projectURL)
	if err != nil || u.Host == "" || strings.Trim(u.Path, "/") == "" {
		return "", &InvalidProjectURLError{Value: projectURL}
	}

	if protocol == ProtocolHTTPS {
		return projectURL, nil
	}
	return fmt.Sprintf("git@%s:%s", u.Host, strings.TrimPrefix(u.Path, "/")), nil
}

// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the offending value and
// suggestions. The issue catalog holds Markdown remediation guides for the
// failures an operator can fix (missing tools, unknown licenses, malformed
// dependency lists), rendered to the terminal with glamour.
package issue

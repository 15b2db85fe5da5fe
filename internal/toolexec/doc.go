// SPDX-License-Identifier: MPL-2.0

// Package toolexec runs the external tools the setup pipeline depends on
// (git, pixi, direnv, gh) with uniform logging and error translation.
//
// Command lines are split on whitespace only. Quoting and escaping are not
// interpreted, so a single argument cannot contain a space; callers that need
// such arguments must use Runner directly with an argument slice.
package toolexec

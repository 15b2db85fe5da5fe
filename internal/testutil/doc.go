// SPDX-License-Identifier: MPL-2.0

// Package testutil provides Must* helpers for tests that touch the real
// filesystem, the working directory or the environment.
package testutil

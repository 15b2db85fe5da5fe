// SPDX-License-Identifier: MPL-2.0

// Package cli contains the postgen command tree.
//
// App is the composition root: every command receives it and reaches the
// configuration provider, the command runner and the output streams through
// it, so tests can swap each of them.
package cli

// SPDX-License-Identifier: MPL-2.0

// Command postgen sets up a Python project right after it has been generated
// from the project template.
package main

import "postgen-cli/internal/cli"

func main() {
	cli.Execute()
}

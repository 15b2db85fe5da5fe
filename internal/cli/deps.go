// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"postgen-cli/internal/deps"

	"github.com/spf13/cobra"
)

func newDepsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deps <dependency>...",
		Short: "Print the manifest block for a dependency list",
		Long: `Print the manifest block postgen writes for a dependency list.

Each dependency is "name" (any version) or "name@constraint".`,
		Example: `  postgen deps pytest matplotlib@~3.7 black@!=1.2.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := deps.Compile(strings.Join(args, " "))
			if err != nil {
				return app.fail(cmd, err)
			}
			fmt.Fprint(app.stdout, block)
			return nil
		},
	}
}

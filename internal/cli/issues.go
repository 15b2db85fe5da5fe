// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strconv"

	"postgen-cli/internal/issue"

	"github.com/spf13/cobra"
)

func newIssuesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "issues [id]",
		Short: "Show the help text for known failures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := issue.Values()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || issue.Get(issue.Id(n)) == nil {
					return fmt.Errorf("unknown issue %q", args[0])
				}
				entries = []*issue.Issue{issue.Get(issue.Id(n))}
			}

			for _, entry := range entries {
				rendered, err := entry.Render(app.notesStyle())
				if err != nil {
					rendered = entry.Markdown()
				}
				fmt.Fprint(app.stdout, rendered)
			}
			return nil
		},
	}
}

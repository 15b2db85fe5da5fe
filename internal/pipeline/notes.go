// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	// SuccessMessage is printed once every step has run.
	SuccessMessage = "Project successfully initialized"
	// AutoStyle picks a glamour style from the terminal background.
	AutoStyle = "auto"
	// PlainStyle renders notes without colors.
	PlainStyle = "notty"
)

const notesTemplate = `## Next steps

If using GitHub, generate a ` + "`CODECOV_TOKEN`" + ` at
<https://app.codecov.io/gh/%[1]s/%[2]s/settings>

and add it to the repository secrets as ` + "`CODECOV_TOKEN`" + ` at
<https://github.com/%[1]s/%[2]s/settings/secrets/actions>
`

var successStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("42"))

// Notes returns the operator notes as markdown.
func Notes(githubUsername, packageName string) string {
	return fmt.Sprintf(notesTemplate, githubUsername, packageName)
}

// renderNotes renders markdown with the given glamour style, falling back to
// the raw text when rendering fails.
func renderNotes(md, style string) string {
	styleOpt := glamour.WithStandardStyle(style)
	if style == AutoStyle {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func writeSummary(w io.Writer, notes, style string) error {
	if _, err := io.WriteString(w, renderNotes(notes, style)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.TrimSpace(successStyle.Render(SuccessMessage)))
	return err
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	InvalidDependencyId Id = iota + 1
	InvalidModuleNameId
	LicenseNotFoundId
	ToolMissingId
	ToolFailedId
	ManifestInvalidId
	ConfigLoadFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // links to the documentation of the tool involved
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Markdown returns the message with its "See also" section appended.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		sb.WriteString("\n\n## See also:\n")
		for _, link := range i.docLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return sb.String()
}

// Render renders the issue for the terminal with the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	invalidDependencyIssue = &Issue{
		id: InvalidDependencyId,
		mdMsg: `
# Invalid dependency list!

Each dependency must be written as ` + "`name`" + ` or ` + "`name@constraint`" + `,
separated by spaces. A token may contain at most one ` + "`@`" + `.

## Examples:
~~~
numpy matplotlib@>=3.7.2 more-itertools@10.*
~~~

## Things you can try:
- Remove the extra ` + "`@`" + ` from the token named above
- Preview the generated block:
~~~
$ postgen deps "numpy matplotlib@>=3.7.2"
~~~`,
	}

	invalidModuleNameIssue = &Issue{
		id: InvalidModuleNameId,
		mdMsg: `
# Invalid package name!

The package name becomes a Python module, so it must start with a letter and
contain only letters, digits and underscores (at least two characters).

## Things you can try:
- Replace spaces and hyphens with underscores: ` + "`my_package`",
	}

	licenseNotFoundIssue = &Issue{
		id: LicenseNotFoundId,
		mdMsg: `
# License not available!

The requested license is not in the template's ` + "`licenses/`" + ` catalog.

## Things you can try:
- Choose one of the licenses listed in the error above
- Choose ` + "`None`" + ` to generate the project without a license`,
	}

	toolMissingIssue = &Issue{
		id: ToolMissingId,
		mdMsg: `
# Required tool not installed!

Project setup needs git, pixi, direnv and (for repository creation) the GitHub CLI.

## Things you can try:
- Install the tool named above using the suggested command
- Make sure it is on your ` + "`PATH`" + `
- Skip optional steps with ` + "`--skip-env`" + ` or ` + "`--skip-hooks`",
		docLinks: []HttpLink{"https://pixi.sh", "https://direnv.net", "https://cli.github.com"},
	}

	toolFailedIssue = &Issue{
		id: ToolFailedId,
		mdMsg: `
# An external tool failed!

One of the setup commands exited with a non-zero status.

## Things you can try:
- Re-run the command shown above inside the project directory to see its full output
- Run with ` + "`--verbose`" + ` to log every command before it runs`,
	}

	manifestInvalidIssue = &Issue{
		id: ManifestInvalidId,
		mdMsg: `
# The manifest is not valid TOML after inserting dependencies!

The file was left unchanged.

## Things you can try:
- Check the dependency names for characters TOML does not allow in bare keys
- Check the line and column reported above`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Validate the file against the schema shown by ` + "`postgen config show`" + `
- Pass values as flags or ` + "`POSTGEN_*`" + ` environment variables instead`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

postgen could not read or write a file in the generated project.

## Things you can try:
- Check the ownership of the project directory
- Make sure no other process holds the files open`,
	}

	issues = map[Id]*Issue{
		invalidDependencyIssue.Id(): invalidDependencyIssue,
		invalidModuleNameIssue.Id(): invalidModuleNameIssue,
		licenseNotFoundIssue.Id():   licenseNotFoundIssue,
		toolMissingIssue.Id():       toolMissingIssue,
		toolFailedIssue.Id():        toolFailedIssue,
		manifestInvalidIssue.Id():   manifestInvalidIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		permissionDeniedIssue.Id():  permissionDeniedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id - b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}

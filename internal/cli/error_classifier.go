// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"postgen-cli/internal/deps"
	"postgen-cli/internal/issue"
	"postgen-cli/internal/license"
	"postgen-cli/internal/manifest"
	"postgen-cli/internal/project"
	"postgen-cli/internal/toolexec"
)

// classifyError maps a failure to an issue catalog ID (0 when none applies)
// and returns a styled message for CLI rendering.
func classifyError(err error, verbose bool) (issueID issue.Id, styledMsg string) {
	switch {
	case errors.Is(err, deps.ErrInvalidDependency):
		issueID = issue.InvalidDependencyId
	case errors.Is(err, project.ErrInvalidModuleName):
		issueID = issue.InvalidModuleNameId
	case errors.Is(err, license.ErrNotFound):
		issueID = issue.LicenseNotFoundId
	case errors.Is(err, toolexec.ErrToolMissing):
		issueID = issue.ToolMissingId
	case errors.Is(err, manifest.ErrInvalidManifest):
		issueID = issue.ManifestInvalidId
	case errors.Is(err, toolexec.ErrToolFailed):
		issueID = issue.ToolFailedId
	case errors.Is(err, os.ErrPermission):
		issueID = issue.PermissionDeniedId
	default:
		var ae *issue.ActionableError
		if errors.As(err, &ae) && strings.HasSuffix(ae.Operation, "configuration") {
			issueID = issue.ConfigLoadFailedId
		}
	}

	return issueID, fmt.Sprintf("\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
}

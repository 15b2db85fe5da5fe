// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"strings"

	"postgen-cli/internal/project"
	"postgen-cli/internal/toolexec"
)

// setupRemote either adds the project URL as a plain git remote, or creates
// the repository on the hosting service and tracks it.
func (p *Pipeline) setupRemote(ctx context.Context) error {
	if !p.cfg.HostingEnabled() {
		url, err := project.RemoteURL(p.cfg.ProjectURL, p.cfg.Protocol)
		if err != nil {
			return err
		}
		_, err = p.inv.Run(ctx, "git remote add "+p.cfg.Remote+" "+url)
		return err
	}

	privacy := p.cfg.Privacy()
	if err := privacy.Validate(); err != nil {
		return err
	}
	if err := p.inv.CheckProgram(ctx, "gh", ghInstallHint); err != nil {
		return err
	}

	_, err := p.inv.Run(ctx, "gh repo create "+p.cfg.PackageName+
		" --"+privacy.String()+" --remote "+p.cfg.Remote+" --source .")
	switch {
	case err == nil:
	case alreadyExists(err):
		p.reporter.Error("error creating repository, it already exists", "err", err)
	default:
		return err
	}
	return nil
}

// trackRemote points the default branch at the remote. An unset
// init.defaultBranch falls back to master.
func (p *Pipeline) trackRemote(ctx context.Context) error {
	branch, err := p.inv.Output(ctx, "git config --global init.defaultBranch", toolexec.WithFailFast(false))
	if err != nil || branch == "" {
		branch = defaultBranch
	}

	_, err = p.inv.Run(ctx, "git branch --set-upstream-to="+p.cfg.Remote+" "+branch)
	return err
}

// alreadyExists reports whether a hosting or git failure says the repository
// or remote exists already.
func alreadyExists(err error) bool {
	var failed *toolexec.ToolFailedError
	if !errors.As(err, &failed) {
		return false
	}
	return strings.Contains(strings.ToLower(failed.Stderr), "already exists")
}

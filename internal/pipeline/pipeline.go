// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"io"
	"os"
	"time"

	"postgen-cli/internal/config"
	"postgen-cli/internal/issue"
	"postgen-cli/internal/license"
	"postgen-cli/internal/manifest"
	"postgen-cli/internal/report"
	"postgen-cli/internal/stamp"
	"postgen-cli/internal/toolexec"

	"github.com/spf13/afero"
)

const (
	direnvInstallHint = "pixi global install direnv"
	ghInstallHint     = "https://cli.github.com/"
	defaultBranch     = "master"
)

type (
	// Pipeline drives one setup run over a project directory.
	Pipeline struct {
		cfg      *config.Config
		fs       afero.Fs
		inv      *toolexec.Invoker
		reporter report.Reporter
		out      io.Writer
		now      func() time.Time
		style    string
		state    State
	}

	// Option configures a Pipeline.
	Option func(*Pipeline)
)

// WithOutput sets where the operator notes and the success banner go.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// WithClock overrides the clock used for the license year.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithNotesStyle sets the glamour style of the operator notes.
func WithNotesStyle(style string) Option {
	return func(p *Pipeline) { p.style = style }
}

// New creates a Pipeline. fsys must be rooted at the project directory, and
// inv must run commands in that same directory.
func New(cfg *config.Config, fsys afero.Fs, inv *toolexec.Invoker, reporter report.Reporter, opts ...Option) *Pipeline {
	if reporter == nil {
		reporter = report.Discard()
	}
	p := &Pipeline{
		cfg:      cfg,
		fs:       fsys,
		inv:      inv,
		reporter: reporter,
		out:      os.Stdout,
		now:      time.Now,
		style:    AutoStyle,
		state:    Start,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the state reached so far.
func (p *Pipeline) State() State { return p.state }

// Steps returns the setup steps in execution order.
func (p *Pipeline) Steps() []Step {
	installer := license.NewInstaller(p.fs, p.cfg.AuthorName,
		license.WithCatalogDir(p.cfg.LicenseDir.String()),
		license.WithDestination(p.cfg.LicenseFile.String()),
		license.WithClock(p.now),
		license.WithReporter(p.reporter),
	)

	return []Step{
		{
			Name:        "stamp python version",
			Target:      VersionStamped,
			Run:         p.stampVersion,
			Suggestions: []string{"Set python_version so no interpreter is queried"},
		},
		{
			Name:     "install license",
			Target:   LicenseSet,
			Resource: p.cfg.License,
			Run: func(context.Context) error {
				return installer.Install(p.cfg.License)
			},
			Suggestions: []string{"Pick a license that has a file under " + p.cfg.LicenseDir.String() + "/, or None"},
		},
		{
			Name:     "remove license catalog",
			Target:   CatalogRemoved,
			Resource: p.cfg.LicenseDir.String(),
			Run: func(context.Context) error {
				return installer.RemoveCatalog()
			},
		},
		{
			Name:        "initialize repository",
			Target:      RepoInitialized,
			Run:         p.command("git init"),
			Suggestions: []string{"Check that git is installed and on PATH"},
		},
		{
			Name:     "update dependencies",
			Target:   DependenciesUpdated,
			Resource: p.cfg.ManifestFile.String(),
			Run:      p.updateDependencies,
			Suggestions: []string{
				"Use name or name@constraint tokens separated by spaces or commas",
				"Run 'pixi update' in the project to see the solver output",
			},
		},
		{
			Name:        "allow environment",
			Target:      EnvAllowed,
			Skip:        func() bool { return p.cfg.SkipEnv },
			Run:         p.allowEnv,
			Suggestions: []string{"Set skip_env to leave direnv out of the setup"},
		},
		{
			Name:        "install git hooks",
			Target:      HooksInstalled,
			Skip:        func() bool { return p.cfg.SkipHooks },
			Run:         p.command("pixi run -e dev pre-commit install"),
			Suggestions: []string{"Set skip_hooks and install the hooks later"},
		},
		{
			Name:        "initial commit",
			Target:      CommitMade,
			Run:         p.commit,
			Suggestions: []string{"Set user.name and user.email in your git config"},
		},
		{
			Name:     "configure remote",
			Target:   RemoteConfigured,
			Resource: p.cfg.Remote,
			Run:      p.setupRemote,
			Suggestions: []string{
				"Run 'gh auth status' when creating the repository on GitHub",
				"Remove a stale remote with 'git remote remove " + p.cfg.Remote + "'",
			},
		},
		{
			Name:   "track remote",
			Target: RemoteConfigured,
			Policy: BestEffort,
			Skip:   func() bool { return !p.cfg.HostingEnabled() },
			Run:    p.trackRemote,
		},
	}
}

// Run executes every step in order. On a fatal failure the pipeline ends in
// Failed and returns an *issue.ActionableError that names the step as its
// operation and unwraps to the step's error. On success the operator notes
// and the success banner are printed.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, step := range p.Steps() {
		if err := p.runStep(ctx, step); err != nil {
			p.state = Failed
			p.reporter.Error("setup failed", "step", step.Name, "err", err)
			return issue.NewErrorContext().
				WithOperation(step.Name).
				WithResource(step.Resource).
				WithSuggestions(step.Suggestions...).
				Wrap(err).
				BuildError()
		}
	}

	p.state = Done
	return writeSummary(p.out, Notes(p.cfg.GithubUsername, p.cfg.PackageName), p.style)
}

func (p *Pipeline) runStep(ctx context.Context, step Step) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if step.Skip != nil && step.Skip() {
		p.reporter.Info("skipping step", "step", step.Name)
		p.state = step.Target
		return nil
	}

	p.reporter.Debug("running step", "step", step.Name, "policy", step.Policy)
	if err := step.Run(ctx); err != nil {
		if step.Policy == Fatal {
			return err
		}
		p.reporter.Error("step failed, continuing", "step", step.Name, "err", err)
	}
	p.state = step.Target
	return nil
}

func (p *Pipeline) command(commandLine string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := p.inv.Run(ctx, commandLine)
		return err
	}
}

func (p *Pipeline) stampVersion(ctx context.Context) error {
	v, err := stamp.ResolveVersion(ctx, p.inv, p.cfg.PythonVersion)
	if err != nil {
		return err
	}
	return stamp.NewStamper(p.fs,
		stamp.WithFiles(p.cfg.StampFiles...),
		stamp.WithMinMinor(p.cfg.MinPythonMinor),
		stamp.WithReporter(p.reporter),
	).Stamp(v)
}

func (p *Pipeline) updateDependencies(ctx context.Context) error {
	splicer := manifest.NewSplicer(p.fs, p.cfg.ManifestFile.String(), p.reporter)
	if err := splicer.Splice(p.cfg.Dependencies, p.cfg.TestDependencies); err != nil {
		return err
	}
	_, err := p.inv.Run(ctx, "pixi update")
	return err
}

func (p *Pipeline) allowEnv(ctx context.Context) error {
	if err := p.inv.CheckProgram(ctx, "direnv", direnvInstallHint); err != nil {
		return err
	}
	_, err := p.inv.Run(ctx, "direnv allow .")
	return err
}

func (p *Pipeline) commit(ctx context.Context) error {
	if _, err := p.inv.Run(ctx, "git add ."); err != nil {
		return err
	}
	_, err := p.inv.Run(ctx, "git commit -m Setup")
	return err
}

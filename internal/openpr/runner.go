// Package openpr runs one open-pr invocation from repository discovery to browser launch.
package openpr

import (
	"context"
	"fmt"
	"io"

	"github.com/richhaase/open-pr/internal/browser"
	"github.com/richhaase/open-pr/internal/config"
	"github.com/richhaase/open-pr/internal/git"
	"github.com/richhaase/open-pr/internal/github"
	"github.com/richhaase/open-pr/internal/resolver"
	"github.com/richhaase/open-pr/internal/store"
	"github.com/richhaase/open-pr/internal/terminal"
)

// Runner builds the comparison URL for the current branch and opens it.
type Runner struct {
	// Discover finds the repository enclosing a directory. Defaults to git.Discover.
	Discover func(start string) (*git.Repo, error)
	// Store defaults to store.FileStore.
	Store    resolver.Store
	Opener   browser.Opener
	Prompter resolver.Prompter
	Logger   *terminal.Logger
	Out      io.Writer
	Settings config.Resolved
	// Reconfigure prompts for the repository record even when one is saved.
	Reconfigure bool
}

// Run executes the workflow starting from startDir and returns the URL it built.
// The URL is also returned when only the browser launch failed.
func (r *Runner) Run(ctx context.Context, startDir string) (string, error) {
	discover := r.Discover
	if discover == nil {
		discover = git.Discover
	}
	st := r.Store
	if st == nil {
		st = store.FileStore{}
	}

	repo, err := discover(startDir)
	if err != nil {
		return "", err
	}

	res := &resolver.Resolver{
		Store:       st,
		Prompter:    r.Prompter,
		Logger:      r.Logger,
		Out:         r.Out,
		Suggestions: repo.Suggest(git.DefaultRemote),
		Force:       r.Reconfigure,
	}
	result, err := res.Resolve(ctx, store.Path(repo.GitDir))
	if err != nil {
		return "", err
	}
	cfg := result.Config

	head := repo.CurrentBranch()
	if head == git.UnknownBranch {
		r.Logger.Logf(terminal.StyleWarning, "HEAD is not on a branch; using %q as the head branch", head)
	} else if head == cfg.DefaultBranch {
		r.Logger.Logf(terminal.StyleWarning, "Current branch is the base branch %q", head)
	}

	url := github.CompareURL(r.Settings.Host, cfg.Owner, cfg.RepoName, cfg.DefaultBranch, head)
	fmt.Fprintf(r.Out, "Opening PR URL: %s\n", url)

	if !r.Settings.Open {
		return url, nil
	}
	if err := r.Opener.Open(url); err != nil {
		return url, err
	}
	return url, nil
}

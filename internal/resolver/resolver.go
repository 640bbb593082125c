// Package resolver loads the repository record or collects it from the user.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/richhaase/open-pr/internal/domain"
	"github.com/richhaase/open-pr/internal/store"
	"github.com/richhaase/open-pr/internal/terminal"
)

const (
	loadedHint    = "You can tweak this configuration in .git/open_pr.toml"
	collectedHint = "You can tweak this configuration later in .git/open_pr.toml"
)

// Store reads and writes the repository record.
type Store interface {
	Load(path string) (*store.LoadResult, error)
	Save(path string, cfg domain.RepoConfig) error
	Backup(path string) (string, error)
}

// Prompter asks a question and returns one line of input.
// It returns io.EOF when input ends.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Source tells where a resolved record came from.
type Source int

const (
	SourceLoaded Source = iota
	SourceCollected
)

func (s Source) String() string {
	switch s {
	case SourceLoaded:
		return "loaded"
	case SourceCollected:
		return "collected"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Result is the outcome of Resolve.
type Result struct {
	Config domain.RepoConfig
	Source Source
}

// Resolver returns the saved record for a repository, prompting for and
// saving a new one when none is usable.
type Resolver struct {
	Store    Store
	Prompter Prompter
	Logger   *terminal.Logger
	// Out receives the record echo and hints.
	Out io.Writer
	// Suggestions fill in answers left empty. Empty fields have no suggestion.
	Suggestions domain.RepoConfig
	// Force collects a new record even when a valid one is saved.
	// The saved values are offered as suggestions.
	Force bool
}

// field is one prompted value of the record.
type field struct {
	key      string
	label    string
	suggest  func(domain.RepoConfig) string
	validate func(string) error
}

var fields = []field{
	{
		key:      "owner",
		label:    `Enter the owner of the repository (the "org" in github.com/org/reponame)`,
		suggest:  func(c domain.RepoConfig) string { return c.Owner },
		validate: singleSegment,
	},
	{
		key:      "repo_name",
		label:    `Enter the repository name (the "reponame" in github.com/org/reponame)`,
		suggest:  func(c domain.RepoConfig) string { return c.RepoName },
		validate: singleSegment,
	},
	{
		key:      "default_branch",
		label:    "Enter the default branch (usually main or master)",
		suggest:  func(c domain.RepoConfig) string { return c.DefaultBranch },
		validate: required,
	},
}

func required(s string) error {
	if s == "" {
		return errors.New("a value is required")
	}
	return nil
}

func singleSegment(s string) error {
	if err := required(s); err != nil {
		return err
	}
	if strings.ContainsAny(s, "/ \t") {
		return fmt.Errorf("%q must not contain slashes or spaces", s)
	}
	return nil
}

// Resolve returns the record saved at path, or collects and saves a new one
// when the file is missing or malformed. A loaded record is never rewritten.
func (r *Resolver) Resolve(ctx context.Context, path string) (Result, error) {
	suggestions := r.Suggestions

	loaded, err := r.Store.Load(path)
	switch {
	case err == nil && r.Force:
		suggestions = loaded.Config
	case err == nil:
		for _, w := range loaded.Warnings {
			r.Logger.Log(w, terminal.StyleWarning)
		}
		fmt.Fprintln(r.Out, loaded.Config)
		fmt.Fprintln(r.Out, loadedHint)
		return Result{Config: loaded.Config, Source: SourceLoaded}, nil
	case errors.Is(err, domain.ErrConfigNotFound):
	case errors.Is(err, domain.ErrConfigMalformed):
		r.Logger.Logf(terminal.StyleWarning, "Ignoring saved config: %v", err)
		backup, err := r.Store.Backup(path)
		if err != nil {
			return Result{}, fmt.Errorf("failed to back up malformed config: %w", err)
		}
		if backup != "" {
			r.Logger.Logf(terminal.StyleDim, "Previous contents saved to %s", backup)
		}
	default:
		return Result{}, err
	}

	cfg, err := r.collect(ctx, suggestions)
	if err != nil {
		return Result{}, err
	}
	if err := r.Store.Save(path, cfg); err != nil {
		return Result{}, err
	}
	fmt.Fprintln(r.Out, collectedHint)
	return Result{Config: cfg, Source: SourceCollected}, nil
}

// collect prompts for every field in order and builds the record from the answers.
func (r *Resolver) collect(ctx context.Context, suggestions domain.RepoConfig) (domain.RepoConfig, error) {
	answers := make([]string, 0, len(fields))
	for _, f := range fields {
		answer, err := r.ask(ctx, f, f.suggest(suggestions))
		if err != nil {
			return domain.RepoConfig{}, err
		}
		answers = append(answers, answer)
	}
	return domain.NewRepoConfig(answers[0], answers[1], answers[2]), nil
}

// ask repeats the question until it gets a valid answer.
func (r *Resolver) ask(ctx context.Context, f field, suggestion string) (string, error) {
	question := f.label + ":"
	if suggestion != "" {
		question = fmt.Sprintf("%s [%s]:", f.label, suggestion)
	}

	for {
		answer, err := r.Prompter.Ask(ctx, question)
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: no answer for %s", domain.ErrInputClosed, f.key)
		}
		if err != nil {
			return "", err
		}

		answer = strings.TrimSpace(answer)
		if answer == "" {
			answer = suggestion
		}
		if err := f.validate(answer); err != nil {
			r.Logger.Logf(terminal.StyleWarning, "Invalid %s: %v", f.key, err)
			continue
		}
		return answer, nil
	}
}

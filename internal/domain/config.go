package domain

import (
	"fmt"
	"strings"
)

// RepoConfig is the per-repository record persisted between runs.
// It is built once, either from the saved file or from prompt answers, and passed by value.
type RepoConfig struct {
	Owner         string `toml:"owner"`
	RepoName      string `toml:"repo_name"`
	DefaultBranch string `toml:"default_branch"`
}

// NewRepoConfig builds a RepoConfig from raw values, trimming surrounding whitespace.
func NewRepoConfig(owner, repoName, defaultBranch string) RepoConfig {
	return RepoConfig{
		Owner:         strings.TrimSpace(owner),
		RepoName:      strings.TrimSpace(repoName),
		DefaultBranch: strings.TrimSpace(defaultBranch),
	}
}

// Validate reports the first missing or blank field.
func (c RepoConfig) Validate() error {
	switch {
	case strings.TrimSpace(c.Owner) == "":
		return fmt.Errorf("owner is required")
	case strings.TrimSpace(c.RepoName) == "":
		return fmt.Errorf("repo_name is required")
	case strings.TrimSpace(c.DefaultBranch) == "":
		return fmt.Errorf("default_branch is required")
	}
	return nil
}

// String renders the record the way it is echoed back to the user.
func (c RepoConfig) String() string {
	return fmt.Sprintf("Owner: %s\nRepository Name: %s\nDefault Branch: %s",
		c.Owner, c.RepoName, c.DefaultBranch)
}

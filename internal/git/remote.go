package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/ini.v1"

	"github.com/richhaase/open-pr/internal/domain"
	"github.com/richhaase/open-pr/internal/github"
)

// DefaultRemote is the remote used to suggest repository settings.
const DefaultRemote = "origin"

// ErrNoRemote indicates the repository has no remote with the requested name.
var ErrNoRemote = errors.New("remote not configured")

// RemoteURL returns the url of the named remote, read from the repository's config file.
func (r *Repo) RemoteURL(name string) (string, error) {
	cfg, err := ini.Load(filepath.Join(r.GitDir, "config"))
	if err != nil {
		return "", fmt.Errorf("failed to read git config: %w", err)
	}

	sec, err := cfg.GetSection(fmt.Sprintf("remote %q", name))
	if err != nil || !sec.HasKey("url") {
		return "", fmt.Errorf("%w: %s", ErrNoRemote, name)
	}
	return sec.Key("url").String(), nil
}

// RemoteDefaultBranch returns the branch refs/remotes/<name>/HEAD points at,
// as recorded by clone or `git remote set-head`.
func (r *Repo) RemoteDefaultBranch(name string) (string, error) {
	ref, err := r.repo.Reference(plumbing.NewRemoteHEADReferenceName(name), false)
	if err != nil {
		return "", fmt.Errorf("failed to read %s/HEAD: %w", name, err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", fmt.Errorf("%s/HEAD is not a symbolic reference", name)
	}
	branch, ok := strings.CutPrefix(ref.Target().Short(), name+"/")
	if !ok || branch == "" {
		return "", fmt.Errorf("%s/HEAD points outside the remote: %s", name, ref.Target())
	}
	return branch, nil
}

// Suggest derives likely repository settings from the named remote.
// Fields that can't be derived are left empty.
func (r *Repo) Suggest(remote string) domain.RepoConfig {
	var s domain.RepoConfig
	if url, err := r.RemoteURL(remote); err == nil {
		if owner, repo, ok := github.ParseRemoteURL(url); ok {
			s.Owner = owner
			s.RepoName = repo
		}
	}
	if branch, err := r.RemoteDefaultBranch(remote); err == nil {
		s.DefaultBranch = branch
	}
	return s
}

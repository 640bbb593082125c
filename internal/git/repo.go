// Package git discovers the enclosing repository and reads its branch and remote state.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/richhaase/open-pr/internal/domain"
)

// UnknownBranch is reported when HEAD does not name a branch.
const UnknownBranch = "unknown"

// Repo is a discovered repository with a working tree.
type Repo struct {
	// Root is the top-level directory of the working tree.
	Root string
	// GitDir is the metadata directory shared by all worktrees of the repository.
	GitDir string

	repo *gogit.Repository
}

// Discover walks upward from start to the enclosing git working tree.
// Returns an error wrapping domain.ErrNotARepository when there is none.
func Discover(start string) (*Repo, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	r, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotARepository, abs, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrNotARepository, abs, err)
	}
	root := wt.Filesystem.Root()

	gitDir, err := resolveGitDir(root)
	if err != nil {
		return nil, err
	}

	return &Repo{Root: root, GitDir: gitDir, repo: r}, nil
}

// resolveGitDir returns the metadata directory for the working tree at root.
// A linked worktree has a .git file pointing at its private git dir, whose
// commondir file in turn points at the shared one.
func resolveGitDir(root string) (string, error) {
	dotGit := filepath.Join(root, gogit.GitDirName)
	info, err := os.Stat(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", dotGit, err)
	}
	if info.IsDir() {
		return dotGit, nil
	}

	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", dotGit, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	gitDir, ok := strings.CutPrefix(strings.TrimSpace(line), "gitdir:")
	if !ok {
		return "", fmt.Errorf("%s has no gitdir line", dotGit)
	}
	gitDir = absFrom(root, strings.TrimSpace(gitDir))

	common, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if errors.Is(err, os.ErrNotExist) {
		return gitDir, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read commondir: %w", err)
	}
	return absFrom(gitDir, strings.TrimSpace(string(common))), nil
}

func absFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// CurrentBranch returns the short name of the checked-out branch, or UnknownBranch
// when HEAD is detached or unreadable. An unborn branch still reports its name.
func (r *Repo) CurrentBranch() string {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return UnknownBranch
	}
	if ref.Type() != plumbing.SymbolicReference || !ref.Target().IsBranch() {
		return UnknownBranch
	}
	return ref.Target().Short()
}

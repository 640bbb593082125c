// Package store persists the per-repository open-pr record inside the git directory.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/richhaase/open-pr/internal/config"
	"github.com/richhaase/open-pr/internal/domain"
)

// FileName is the name of the record file inside the git directory.
const FileName = "open_pr.toml"

// BackupSuffix is appended to the record path when a malformed file is set aside.
const BackupSuffix = ".bak"

const header = `# open-pr repository settings.
# Edit freely; all three keys are required.
`

// knownKeys are the keys a record file may contain.
var knownKeys = []string{"owner", "repo_name", "default_branch"}

// Path returns the record location for the given git directory.
func Path(gitDir string) string {
	return filepath.Join(gitDir, FileName)
}

// MalformedError reports a record file that exists but can't be used.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes both the underlying cause and domain.ErrConfigMalformed.
func (e *MalformedError) Unwrap() []error {
	return []error{domain.ErrConfigMalformed, e.Err}
}

// LoadResult contains the loaded record and any warnings encountered.
type LoadResult struct {
	Config   domain.RepoConfig
	Warnings []string
}

// Load reads the record at path.
// Returns domain.ErrConfigNotFound if the file doesn't exist, and a *MalformedError
// if it exists but doesn't hold the three required string keys.
func Load(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrConfigNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg domain.RepoConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}

	for _, key := range knownKeys {
		if !md.IsDefined(key) {
			return nil, &MalformedError{Path: path, Err: fmt.Errorf("missing key %q", key)}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}

	var warnings []string
	for _, key := range md.Undecoded() {
		warnings = append(warnings, config.UnknownKeyWarning(key.String(), FileName, knownKeys))
	}
	slices.Sort(warnings)

	return &LoadResult{Config: cfg, Warnings: warnings}, nil
}

// Save writes cfg to path, replacing any existing file.
// The parent directory must already exist.
func Save(path string, cfg domain.RepoConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}
	return nil
}

// Backup copies the file at path to path+BackupSuffix and returns the backup path.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	backup := path + BackupSuffix
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backup, err)
	}
	return backup, nil
}

// FileStore is the file-backed store used at runtime.
type FileStore struct{}

// Load implements resolver.Store.
func (FileStore) Load(path string) (*LoadResult, error) { return Load(path) }

// Save implements resolver.Store.
func (FileStore) Save(path string, cfg domain.RepoConfig) error { return Save(path, cfg) }

// Backup implements resolver.Store.
func (FileStore) Backup(path string) (string, error) { return Backup(path) }

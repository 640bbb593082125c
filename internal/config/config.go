// Package config provides user-level settings for open-pr.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/richhaase/open-pr/internal/github"
)

const (
	// DirName is the directory under the user config dir that holds the settings file.
	DirName = "open-pr"
	// FileName is the name of the settings file.
	FileName = "config.yaml"
	// DefaultHost is the web host comparison URLs point at.
	DefaultHost = github.DefaultHost
	// EnvPrefix prefixes every settings environment variable.
	EnvPrefix = "OPEN_PR"
)

// Settings represents the user settings file. Nil fields were not set.
type Settings struct {
	Host    *string `yaml:"host"`
	Browser *string `yaml:"browser"`
	Open    *bool   `yaml:"open"`
}

// LoadResult contains the loaded settings and any warnings encountered.
type LoadResult struct {
	Settings *Settings
	Path     string
	Warnings []string
}

// DefaultPath returns the settings file location inside the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// LoadWithWarnings reads the settings file from OPEN_PR_CONFIG, or from the default path.
// Returns empty settings (not error) if the file doesn't exist.
func LoadWithWarnings(env EnvState) (*LoadResult, error) {
	path := ""
	if env.Config != nil && *env.Config != "" {
		path = *env.Config
	} else {
		p, err := DefaultPath()
		if err != nil {
			return &LoadResult{Settings: &Settings{}}, nil
		}
		path = p
	}
	return LoadFromPathWithWarnings(path)
}

// LoadFromPathWithWarnings reads a settings file and returns warnings for unknown keys.
// Returns empty settings (not error) if the file doesn't exist.
// Returns an error if the file exists but is invalid YAML or fails validation.
func LoadFromPathWithWarnings(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &LoadResult{Settings: &Settings{}, Path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	warnings := checkUnknownKeys(data)

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &LoadResult{Settings: &s, Path: path, Warnings: warnings}, nil
}

// knownKeys are the valid top-level keys in the settings file.
var knownKeys = []string{"host", "browser", "open"}

// checkUnknownKeys checks for unknown keys in the YAML data and returns warnings.
func checkUnknownKeys(data []byte) []string {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// let the main parser report it
		return nil
	}

	var warnings []string
	for key := range raw {
		if slices.Contains(knownKeys, key) {
			continue
		}
		warnings = append(warnings, UnknownKeyWarning(key, FileName, knownKeys))
	}
	slices.Sort(warnings)
	return warnings
}

// UnknownKeyWarning formats a warning for an unrecognized key, with a suggestion
// when one of the known keys is close enough.
func UnknownKeyWarning(key, file string, known []string) string {
	warning := fmt.Sprintf("unknown key %q in %s", key, file)
	if suggestion := FindSimilar(key, known); suggestion != "" {
		warning += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return warning
}

// FindSimilar finds the most similar string from candidates using Levenshtein distance.
// Returns empty string if no candidate is similar enough (threshold: 3 edits).
func FindSimilar(input string, candidates []string) string {
	const maxDistance = 3
	bestMatch := ""
	bestDistance := maxDistance + 1

	for _, candidate := range candidates {
		dist := levenshtein(input, candidate)
		if dist < bestDistance {
			bestDistance = dist
			bestMatch = candidate
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshtein calculates the Levenshtein distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Validate checks that all settings values are usable.
func (s *Settings) Validate() error {
	if s.Host != nil {
		if err := ValidateHost(*s.Host); err != nil {
			return err
		}
	}
	return nil
}

// ValidateHost checks that host is a bare hostname, optionally with a port.
func ValidateHost(host string) error {
	switch {
	case strings.TrimSpace(host) == "":
		return fmt.Errorf("host must not be empty")
	case strings.Contains(host, "://"):
		return fmt.Errorf("host must not include a scheme, got %q", host)
	case strings.ContainsAny(host, "/ \t"):
		return fmt.Errorf("host must be a bare hostname, got %q", host)
	}
	return nil
}

// Resolved holds the final settings values for a run.
type Resolved struct {
	Host    string
	Browser string
	Open    bool
}

// Defaults holds the built-in default values.
var Defaults = Resolved{
	Host:    DefaultHost,
	Browser: "", // go-gh picks GH_BROWSER, gh config, BROWSER, then the OS handler
	Open:    true,
}

// FlagState tracks whether a flag was explicitly set.
type FlagState struct {
	HostSet      bool
	BrowserSet   bool
	NoBrowserSet bool
}

// EnvState captures OPEN_PR_* environment variables. Nil fields were not set.
// Fields carry no envconfig tags: a tag would also fall back to the unprefixed
// name, and HOST and BROWSER mean something else in most shells.
type EnvState struct {
	Host    *string
	Browser *string
	Open    *bool
	Config  *string
}

// LoadEnvState reads OPEN_PR_* environment variables.
// Unparseable values are dropped and reported as warnings.
func LoadEnvState() (EnvState, []string) {
	var state EnvState
	if err := envconfig.Process(EnvPrefix, &state); err != nil {
		// keep the settings file location so the file still loads
		var pathOnly struct{ Config *string }
		_ = envconfig.Process(EnvPrefix, &pathOnly)
		return EnvState{Config: pathOnly.Config}, []string{fmt.Sprintf("ignoring %s_* environment: %v", EnvPrefix, err)}
	}

	var warnings []string
	if state.Host != nil {
		if err := ValidateHost(*state.Host); err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring %s_HOST: %v", EnvPrefix, err))
			state.Host = nil
		}
	}
	return state, warnings
}

// Resolve merges settings file values with env vars and flags.
// Precedence: flags > env vars > settings file > defaults
func Resolve(s *Settings, env EnvState, flags FlagState, flagValues Resolved) Resolved {
	result := Defaults

	if s != nil {
		if s.Host != nil {
			result.Host = *s.Host
		}
		if s.Browser != nil {
			result.Browser = *s.Browser
		}
		if s.Open != nil {
			result.Open = *s.Open
		}
	}

	if env.Host != nil {
		result.Host = *env.Host
	}
	if env.Browser != nil {
		result.Browser = *env.Browser
	}
	if env.Open != nil {
		result.Open = *env.Open
	}

	if flags.HostSet {
		result.Host = flagValues.Host
	}
	if flags.BrowserSet {
		result.Browser = flagValues.Browser
	}
	if flags.NoBrowserSet {
		result.Open = flagValues.Open
	}

	return result
}

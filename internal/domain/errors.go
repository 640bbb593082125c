package domain

import "errors"

var (
	// ErrNotARepository indicates the start directory is not inside a git working tree.
	ErrNotARepository = errors.New("not inside a git repository")

	// ErrConfigNotFound indicates no repository config has been saved yet.
	// This is the expected first-run state, not a failure.
	ErrConfigNotFound = errors.New("repository config not found")

	// ErrConfigMalformed indicates a saved repository config exists but cannot be parsed
	// into the three required fields.
	ErrConfigMalformed = errors.New("repository config is malformed")

	// ErrPersist indicates the repository config could not be written.
	ErrPersist = errors.New("failed to save repository config")

	// ErrInputClosed indicates input ended before every prompt was answered.
	ErrInputClosed = errors.New("input closed before configuration was complete")

	// ErrBrowserLaunch indicates the browser could not be opened.
	ErrBrowserLaunch = errors.New("failed to open browser")
)

// Package domain provides the core types shared across open-pr.
package domain

// ExitCode represents the exit status of a run.
type ExitCode int

const (
	// ExitOK indicates the comparison URL was built and handed to the browser.
	ExitOK ExitCode = 0
	// ExitError indicates the run failed.
	ExitError ExitCode = 1
	// ExitInterrupted indicates the run was interrupted by a signal.
	ExitInterrupted ExitCode = 130
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}

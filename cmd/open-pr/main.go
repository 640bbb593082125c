// Package main provides the CLI entry point for open-pr.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/richhaase/open-pr/internal/browser"
	"github.com/richhaase/open-pr/internal/config"
	"github.com/richhaase/open-pr/internal/domain"
	"github.com/richhaase/open-pr/internal/openpr"
	"github.com/richhaase/open-pr/internal/terminal"
)

// rootOptions holds the root command's flag values.
type rootOptions struct {
	reconfigure bool
	noBrowser   bool
	browser     string
	host        string
	dir         string
	noConfig    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		// Check if this is an exit code wrapper (not a real error)
		var exitErr exitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.code.Int()
		}
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return domain.ExitError.Int()
	}

	return domain.ExitOK.Int()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "open-pr",
		Short: "Open a GitHub pull request page for the current branch",
		Long: `Open the GitHub "compare" page for the current branch against the repository's
default branch, ready to create a pull request.

The owner, repository name and default branch are asked for on the first run
and saved in .git/open_pr.toml.

Exit codes:
  0 - URL opened
  1 - Error
  130 - Interrupted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOpenPR(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildVersionString(),
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolVarP(&opts.reconfigure, "reconfigure", "r", false,
		"Ask for the repository settings again, even if they are saved")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "C", ".",
		"Run as if started in this directory")
	rootCmd.Flags().BoolVarP(&opts.noBrowser, "no-browser", "n", false,
		"Print the URL without opening it (env: OPEN_PR_OPEN=false)")
	rootCmd.Flags().StringVar(&opts.browser, "browser", "",
		"Command used to open the URL (default: system browser, env: OPEN_PR_BROWSER)")
	rootCmd.Flags().StringVar(&opts.host, "host", "",
		"Web host for the URL (default: github.com, env: OPEN_PR_HOST)")
	rootCmd.Flags().BoolVar(&opts.noConfig, "no-config", false,
		"Skip loading the user settings file")

	setGroupedUsage(rootCmd)

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runOpenPR(cmd *cobra.Command, opts *rootOptions) error {
	// Disable colors if stdout is not a TTY
	if !terminal.IsStdoutTTY() {
		terminal.DisableColors()
	}

	logger := terminal.NewLoggerTo(cmd.ErrOrStderr())

	settings, err := resolveSettings(cmd, opts, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(cmd.ErrOrStderr())
			logger.Log("Interrupted, nothing was saved", terminal.StyleWarning)
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := &openpr.Runner{
		Opener:      browser.New(settings.Browser, cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Prompter:    terminal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Logger:      logger,
		Out:         cmd.OutOrStdout(),
		Settings:    settings,
		Reconfigure: opts.reconfigure,
	}

	if _, err := runner.Run(ctx, opts.dir); err != nil {
		if errors.Is(err, context.Canceled) {
			return exitCode(domain.ExitInterrupted)
		}
		return err
	}
	return nil
}

// resolveSettings merges the settings file, OPEN_PR_* variables and flags.
func resolveSettings(cmd *cobra.Command, opts *rootOptions, logger *terminal.Logger) (config.Resolved, error) {
	envState, envWarnings := config.LoadEnvState()
	for _, warning := range envWarnings {
		logger.Logf(terminal.StyleWarning, "Warning: %s", warning)
	}

	var settings *config.Settings
	if !opts.noConfig {
		result, err := config.LoadWithWarnings(envState)
		if err != nil {
			return config.Resolved{}, fmt.Errorf("config error: %w", err)
		}
		settings = result.Settings
		// Display warnings for unknown keys
		for _, warning := range result.Warnings {
			logger.Logf(terminal.StyleWarning, "Warning: %s", warning)
		}
	}

	flagState := config.FlagState{
		HostSet:      cmd.Flags().Changed("host"),
		BrowserSet:   cmd.Flags().Changed("browser"),
		NoBrowserSet: cmd.Flags().Changed("no-browser"),
	}
	if flagState.HostSet {
		if err := config.ValidateHost(opts.host); err != nil {
			return config.Resolved{}, fmt.Errorf("--host: %w", err)
		}
	}

	flagValues := config.Resolved{
		Host:    opts.host,
		Browser: opts.browser,
		Open:    !opts.noBrowser,
	}

	// precedence: flags > env vars > settings file > defaults
	return config.Resolve(settings, envState, flagState, flagValues), nil
}

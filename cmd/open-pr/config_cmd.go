package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richhaase/open-pr/internal/config"
	"github.com/richhaase/open-pr/internal/domain"
	"github.com/richhaase/open-pr/internal/git"
	"github.com/richhaase/open-pr/internal/store"
	"github.com/richhaase/open-pr/internal/terminal"
)

func newConfigCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect open-pr configuration",
		Long:  "View and validate the repository config (.git/open_pr.toml) and the user settings file.",
	}
	cmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Run as if started in this directory")

	cmd.AddCommand(newConfigShowCmd(&dir))
	cmd.AddCommand(newConfigPathCmd(&dir))
	cmd.AddCommand(newConfigValidateCmd(&dir))

	return cmd
}

func newConfigShowCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the repository config and resolved settings",
		Long:  "Show the saved repository config and the settings resolved from defaults, the settings file, and environment variables. Nothing is written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			repo, err := git.Discover(*dir)
			if err != nil {
				return err
			}
			path := store.Path(repo.GitDir)

			result, err := store.Load(path)
			switch {
			case err == nil:
				fmt.Fprintf(out, "Repository config (%s):\n\n", path)
				fmt.Fprintf(out, "  %-18s %s\n", "owner:", result.Config.Owner)
				fmt.Fprintf(out, "  %-18s %s\n", "repo_name:", result.Config.RepoName)
				fmt.Fprintf(out, "  %-18s %s\n", "default_branch:", result.Config.DefaultBranch)
			case errors.Is(err, domain.ErrConfigNotFound):
				fmt.Fprintf(out, "No repository config saved at %s\n", path)
			default:
				fmt.Fprintf(out, "Repository config (%s) can't be used: %v\n", path, err)
			}

			envState, _ := config.LoadEnvState()
			settingsResult, err := config.LoadWithWarnings(envState)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			resolved := config.Resolve(settingsResult.Settings, envState, config.FlagState{}, config.Defaults)

			browserDesc := resolved.Browser
			if browserDesc == "" {
				browserDesc = "(system default)"
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Resolved settings:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %-18s %s\n", "host:", resolved.Host)
			fmt.Fprintf(out, "  %-18s %s\n", "browser:", browserDesc)
			fmt.Fprintf(out, "  %-18s %t\n", "open:", resolved.Open)

			return nil
		},
	}
}

func newConfigPathCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the repository config location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := git.Discover(*dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path(repo.GitDir))
			return nil
		},
	}
}

func newConfigValidateCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files and environment variables",
		Long:  "Load and validate the repository config, the settings file, and environment variables, reporting any warnings or errors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !terminal.IsStdoutTTY() {
				terminal.DisableColors()
			}
			logger := terminal.NewLoggerTo(cmd.ErrOrStderr())
			var errs []string
			var warnings []string

			// At runtime bad env values are ignored with a warning; here the user
			// asked for validation, so they count as errors.
			envState, envWarnings := config.LoadEnvState()
			errs = append(errs, envWarnings...)

			settingsResult, err := config.LoadWithWarnings(envState)
			if err != nil {
				errs = append(errs, fmt.Sprintf("settings file: %v", err))
			} else {
				warnings = append(warnings, settingsResult.Warnings...)
			}

			repo, err := git.Discover(*dir)
			if err != nil {
				warnings = append(warnings, "not inside a git repository; repository config not checked")
			} else {
				path := store.Path(repo.GitDir)
				result, err := store.Load(path)
				switch {
				case err == nil:
					warnings = append(warnings, result.Warnings...)
				case errors.Is(err, domain.ErrConfigNotFound):
					warnings = append(warnings, fmt.Sprintf("no repository config saved at %s yet", path))
				default:
					errs = append(errs, fmt.Sprintf("repository config: %v", err))
				}
			}

			for _, w := range warnings {
				logger.Logf(terminal.StyleWarning, "Config: %s", w)
			}
			for _, e := range errs {
				logger.Logf(terminal.StyleError, "%s", e)
			}

			if len(errs) > 0 {
				return fmt.Errorf("configuration has %d error(s)", len(errs))
			}

			if len(warnings) > 0 {
				logger.Log("Configuration is valid (with warnings).", terminal.StyleSuccess)
			} else {
				logger.Log("Configuration is valid.", terminal.StyleSuccess)
			}

			return nil
		},
	}
}

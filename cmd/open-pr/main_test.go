package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richhaase/open-pr/internal/domain"
	"github.com/richhaase/open-pr/internal/store"
)

// isolateSettings points the settings file at an empty temp dir and clears OPEN_PR_* variables.
func isolateSettings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("OPEN_PR_CONFIG", path)
	for _, name := range []string{"OPEN_PR_HOST", "OPEN_PR_BROWSER", "OPEN_PR_OPEN"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return path
}

func initRepo(t *testing.T, branch string) string {
	t.Helper()
	dir := t.TempDir()
	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, r.Storer.SetReference(
		plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))))
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_FirstAndSecondRun(t *testing.T) {
	isolateSettings(t)
	dir := initRepo(t, "feature/login")
	want := "Opening PR URL: https://github.com/acme/widgets/compare/main...feature/login?expand=1\n"

	stdout, _, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir, "--no-browser")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Enter the owner of the repository")
	assert.Contains(t, stdout, "Enter the default branch")
	assert.Contains(t, stdout, want)

	result, err := store.Load(store.Path(filepath.Join(dir, ".git")))
	require.NoError(t, err)
	assert.Equal(t, domain.RepoConfig{Owner: "acme", RepoName: "widgets", DefaultBranch: "main"}, result.Config)

	stdout, _, err = execute(t, "", "-C", dir, "-n")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Enter the owner")
	assert.Contains(t, stdout, "Owner: acme\nRepository Name: widgets\nDefault Branch: main\n")
	assert.Contains(t, stdout, "You can tweak this configuration in .git/open_pr.toml")
	assert.Contains(t, stdout, want)
}

func TestRoot_BrowserLauncher(t *testing.T) {
	isolateSettings(t)
	dir := initRepo(t, "topic")

	record := filepath.Join(t.TempDir(), "opened.txt")
	launcher := filepath.Join(t.TempDir(), "fake-browser")
	require.NoError(t, os.WriteFile(launcher, []byte("#!/bin/sh\necho \"$1\" > "+record+"\n"), 0755))

	_, _, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir, "--browser", launcher)
	require.NoError(t, err)

	data, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widgets/compare/main...topic?expand=1\n", string(data))
}

func TestRoot_OpenDisabledByEnv(t *testing.T) {
	isolateSettings(t)
	t.Setenv("OPEN_PR_OPEN", "false")
	t.Setenv("OPEN_PR_BROWSER", filepath.Join(t.TempDir(), "missing-browser"))
	dir := initRepo(t, "topic")

	_, _, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir)
	require.NoError(t, err)
}

func TestRoot_BrowserFailure(t *testing.T) {
	isolateSettings(t)
	dir := initRepo(t, "topic")

	stdout, _, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir, "--browser", filepath.Join(t.TempDir(), "missing-browser"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBrowserLaunch)
	assert.Contains(t, stdout, "Opening PR URL:")
}

func TestRoot_HostFromSettingsFile(t *testing.T) {
	path := isolateSettings(t)
	require.NoError(t, os.WriteFile(path, []byte("host: github.example.com\nopen: false\nhots: typo\n"), 0644))
	dir := initRepo(t, "topic")

	stdout, stderr, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://github.example.com/acme/widgets/compare/main...topic?expand=1")
	assert.Contains(t, stderr, `did you mean "host"?`)
}

func TestRoot_NoConfigIgnoresSettingsFile(t *testing.T) {
	path := isolateSettings(t)
	require.NoError(t, os.WriteFile(path, []byte("host: github.example.com\n"), 0644))
	dir := initRepo(t, "topic")

	stdout, _, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir, "--no-config", "-n")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://github.com/acme/widgets/compare/main...topic?expand=1")
}

func TestRoot_HostFlagOverridesEnv(t *testing.T) {
	isolateSettings(t)
	t.Setenv("OPEN_PR_HOST", "env.example.com")
	dir := initRepo(t, "topic")

	stdout, _, err := execute(t, "acme\nwidgets\nmain\n", "-C", dir, "-n", "--host", "flag.example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://flag.example.com/acme/widgets/compare/main...topic?expand=1")
}

func TestRoot_InvalidHostFlag(t *testing.T) {
	isolateSettings(t)
	dir := initRepo(t, "topic")

	_, _, err := execute(t, "", "-C", dir, "-n", "--host", "https://github.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--host")
}

func TestRoot_InvalidSettingsFile(t *testing.T) {
	path := isolateSettings(t)
	require.NoError(t, os.WriteFile(path, []byte("host: [unclosed\n"), 0644))

	_, _, err := execute(t, "", "-C", initRepo(t, "topic"), "-n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestRoot_NotARepository(t *testing.T) {
	isolateSettings(t)

	_, _, err := execute(t, "", "-C", t.TempDir(), "-n")
	assert.ErrorIs(t, err, domain.ErrNotARepository)
}

func TestRoot_InputClosed(t *testing.T) {
	isolateSettings(t)
	dir := initRepo(t, "topic")

	_, _, err := execute(t, "acme\n", "-C", dir, "-n")
	assert.ErrorIs(t, err, domain.ErrInputClosed)

	_, statErr := os.Stat(store.Path(filepath.Join(dir, ".git")))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_Reconfigure(t *testing.T) {
	isolateSettings(t)
	dir := initRepo(t, "topic")
	require.NoError(t, store.Save(store.Path(filepath.Join(dir, ".git")),
		domain.RepoConfig{Owner: "acme", RepoName: "widgets", DefaultBranch: "master"}))

	stdout, _, err := execute(t, "\n\nmain\n", "-C", dir, "-n", "--reconfigure")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[acme]")
	assert.Contains(t, stdout, "compare/main...topic")
}

func TestRoot_RejectsArguments(t *testing.T) {
	isolateSettings(t)

	_, _, err := execute(t, "", "extra")
	assert.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "open-pr "))
}

func TestRun_ExitCodes(t *testing.T) {
	isolateSettings(t)

	assert.Equal(t, domain.ExitOK.Int(), run([]string{"--version"}))
	assert.Equal(t, domain.ExitError.Int(), run([]string{"-C", t.TempDir(), "-n"}))
}

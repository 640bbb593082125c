package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepoConfig_TrimsWhitespace(t *testing.T) {
	cfg := NewRepoConfig("  acme  ", "\twidgets\n", " main ")

	assert.Equal(t, RepoConfig{Owner: "acme", RepoName: "widgets", DefaultBranch: "main"}, cfg)
}

func TestRepoConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RepoConfig
		wantErr string
	}{
		{"complete", RepoConfig{Owner: "acme", RepoName: "widgets", DefaultBranch: "main"}, ""},
		{"missing owner", RepoConfig{RepoName: "widgets", DefaultBranch: "main"}, "owner"},
		{"missing repo", RepoConfig{Owner: "acme", DefaultBranch: "main"}, "repo_name"},
		{"missing branch", RepoConfig{Owner: "acme", RepoName: "widgets"}, "default_branch"},
		{"blank owner", RepoConfig{Owner: "   ", RepoName: "widgets", DefaultBranch: "main"}, "owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRepoConfig_String(t *testing.T) {
	cfg := RepoConfig{Owner: "acme", RepoName: "widgets", DefaultBranch: "main"}

	assert.Equal(t, "Owner: acme\nRepository Name: widgets\nDefault Branch: main", cfg.String())
}

func TestExitCode_Int(t *testing.T) {
	assert.Equal(t, 0, ExitOK.Int())
	assert.Equal(t, 1, ExitError.Int())
	assert.Equal(t, 130, ExitInterrupted.Int())
}

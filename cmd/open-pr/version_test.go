package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersionString(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })

	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"release", "v1.2.0", "abc1234", "2026-01-02", "open-pr v1.2.0 (abc1234, 2026-01-02)"},
		{"commit only", "v1.2.0", "abc1234", "", "open-pr v1.2.0 (abc1234)"},
		{"bare", "v1.2.0", "", "", "open-pr v1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, commit, date = tt.version, tt.commit, tt.date
			assert.Equal(t, tt.want, buildVersionString())
		})
	}
}

func TestBuildVersionString_Dev(t *testing.T) {
	origVersion, origCommit := version, commit
	t.Cleanup(func() { version, commit = origVersion, origCommit })
	version, commit = "dev", ""

	assert.True(t, strings.HasPrefix(buildVersionString(), "open-pr "))
}

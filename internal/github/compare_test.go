package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareURL(t *testing.T) {
	tests := []struct {
		name                    string
		host, owner, repo, base string
		head                    string
		want                    string
	}{
		{
			name:  "feature branch",
			owner: "acme", repo: "widgets", base: "main", head: "feature/login",
			want: "https://github.com/acme/widgets/compare/main...feature/login?expand=1",
		},
		{
			name:  "unknown head",
			owner: "acme", repo: "widgets", base: "main", head: "unknown",
			want: "https://github.com/acme/widgets/compare/main...unknown?expand=1",
		},
		{
			name:  "standard punctuation kept",
			owner: "my-org", repo: "repo.name_2", base: "release/1.2", head: "fix/bug-42_v2.0",
			want: "https://github.com/my-org/repo.name_2/compare/release/1.2...fix/bug-42_v2.0?expand=1",
		},
		{
			name:  "custom host",
			host:  "github.example.com",
			owner: "acme", repo: "widgets", base: "develop", head: "topic",
			want: "https://github.example.com/acme/widgets/compare/develop...topic?expand=1",
		},
		{
			name:  "unsafe characters escaped",
			owner: "acme", repo: "widgets", base: "main", head: "feat/a b#c?d",
			want: "https://github.com/acme/widgets/compare/main...feat/a%20b%23c%3Fd?expand=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareURL(tt.host, tt.owner, tt.repo, tt.base, tt.head))
		})
	}
}

func TestCompareURL_Deterministic(t *testing.T) {
	first := CompareURL("", "acme", "widgets", "main", "feature/login")
	for range 10 {
		assert.Equal(t, first, CompareURL("", "acme", "widgets", "main", "feature/login"))
	}
}

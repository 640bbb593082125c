// Package github builds GitHub web URLs and recognizes GitHub remotes.
package github

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultHost is the GitHub web host.
const DefaultHost = "github.com"

// CompareURL returns the web URL that compares head against base and offers to open
// a pull request:
//
//	https://{host}/{owner}/{repo}/compare/{base}...{head}?expand=1
//
// An empty host means DefaultHost. Each path segment of the inputs is escaped, so
// ordinary names (letters, digits, "-", "_", ".", "/") come through unchanged.
func CompareURL(host, owner, repo, base, head string) string {
	if host == "" {
		host = DefaultHost
	}
	return fmt.Sprintf("https://%s/%s/%s/compare/%s...%s?expand=1",
		host, escapeSegments(owner), escapeSegments(repo), escapeSegments(base), escapeSegments(head))
}

// escapeSegments escapes s one "/"-separated segment at a time, keeping the slashes.
func escapeSegments(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

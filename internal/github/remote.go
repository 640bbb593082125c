package github

import (
	"net/url"
	"strings"
)

// remoteSchemes are the URL schemes a hosted remote can use.
var remoteSchemes = []string{"https", "http", "ssh", "git", "git+ssh"}

// ParseRemoteURL extracts the owner and repository name from a git remote URL.
// It understands scp-style ("git@github.com:acme/widgets.git") and URL-style
// ("https://github.com/acme/widgets", "ssh://git@github.com/acme/widgets.git") remotes.
// Returns "", "", false for local paths and anything without an owner/repo path.
func ParseRemoteURL(raw string) (owner, repo string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}

	var path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" || !isRemoteScheme(u.Scheme) {
			return "", "", false
		}
		path = u.Path
	} else {
		// scp-like syntax: [user@]host:path, where the host part has no slash
		colon := strings.Index(raw, ":")
		if colon <= 0 || strings.Contains(raw[:colon], "/") {
			return "", "", false
		}
		path = raw[colon+1:]
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return "", "", false
	}

	owner, repo = segments[len(segments)-2], segments[len(segments)-1]
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

func isRemoteScheme(scheme string) bool {
	for _, s := range remoteSchemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

package git

import (
	"strings"

	wtterrors "github.com/wtt-cli/wtt/internal/errors"
)

// RepoNameFromURL extracts the repository name from a git remote URL.
//
// Handles the URL shapes git itself accepts:
//   - scp-style SSH: git@github.com:user/repo.git -> repo
//   - protocol URLs: https://github.com/user/repo.git -> repo
//   - local paths:   /home/user/repo.git -> repo
//
// The .git suffix and any trailing slash are stripped.
func RepoNameFromURL(url string) (string, error) {
	if url == "" {
		return "", wtterrors.ErrRepoNameInvalid(url, "remote URL is empty")
	}

	path := url
	if idx := strings.Index(url, "://"); idx >= 0 {
		// Protocol URL: the path starts after the first slash past the host.
		rest := url[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			path = rest[slash+1:]
		} else {
			path = rest
		}
	} else if colon := strings.LastIndex(url, ":"); colon >= 0 {
		// scp-style SSH: everything after the colon is the path.
		path = url[colon+1:]
	}

	path = strings.TrimRight(path, "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		path = path[idx+1:]
	}
	name := strings.TrimSuffix(path, ".git")

	if err := ValidateRepoName(name); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateRepoName rejects names that cannot serve as a single path
// segment under the worktree root.
func ValidateRepoName(name string) error {
	switch {
	case name == "":
		return wtterrors.ErrRepoNameInvalid(name, "name is empty")
	case strings.ContainsAny(name, `/\`):
		return wtterrors.ErrRepoNameInvalid(name, "name contains a path separator")
	case strings.HasPrefix(name, "."):
		return wtterrors.ErrRepoNameInvalid(name, "name starts with a dot")
	}
	return nil
}

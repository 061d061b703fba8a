// Package workspace maps repositories and branches onto the filesystem
// layout wtt manages: one bare clone per repository plus a per-repo
// worktree root with one directory per branch. All functions here are
// pure path arithmetic; nothing touches disk except the explicit
// existence checks in resolve.go.
package workspace

import (
	"path/filepath"
	"strings"

	"github.com/wtt-cli/wtt/internal/config"
	wtterrors "github.com/wtt-cli/wtt/internal/errors"
)

// BareClonePath returns the location of the bare clone for a repository.
func BareClonePath(settings *config.Settings, repo string) string {
	return filepath.Join(settings.BareCloneDir, repo+".git")
}

// WorktreeRoot returns the directory under which the repository's
// worktrees live.
func WorktreeRoot(settings *config.Settings, repo string) string {
	return filepath.Join(settings.WorktreeDir, repo)
}

// WorktreePath returns the worktree directory for a branch. Slashes in
// the branch name become nested directories: branch feature/login in
// repo myrepo maps to <worktree_dir>/myrepo/feature/login.
//
// Branch names whose path form escapes the worktree root (via ".."
// segments or an absolute path) are rejected.
func WorktreePath(settings *config.Settings, repo, branch string) (string, error) {
	if branch == "" {
		return "", wtterrors.ErrBranchInvalid(branch, "branch name is empty")
	}
	if filepath.IsAbs(branch) {
		return "", wtterrors.ErrBranchInvalid(branch, "branch name is an absolute path")
	}

	root := WorktreeRoot(settings, repo)
	path := filepath.Join(root, filepath.FromSlash(branch))

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", wtterrors.ErrBranchInvalid(branch, "resolves outside the worktree root")
	}

	return path, nil
}

package git

import (
	"strings"
)

// Worktree holds metadata about a single linked worktree as parsed
// from `git worktree list --porcelain` output.
type Worktree struct {
	// Path is the filesystem path to the worktree directory
	Path string

	// Branch is the checked out branch name (empty for detached HEAD)
	Branch string

	// Head is the commit hash the worktree points at
	Head string
}

// AddOptions controls how AddWorktree creates the worktree.
type AddOptions struct {
	// NewBranch creates the branch rather than checking out an existing one.
	NewBranch bool

	// Base is the start point for a new branch (a ref name). Only
	// meaningful with NewBranch; empty means HEAD.
	Base string

	// Track sets up upstream tracking against the given remote ref
	// (e.g. "origin/feature") at creation time.
	Track string
}

// ListWorktrees returns the linked worktrees registered with the bare
// clone. The bare repository's own entry is excluded.
func ListWorktrees(executor GitExecutor, bareDir string) ([]Worktree, error) {
	out, err := executor.Execute("-C", bareDir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}

	var worktrees []Worktree
	var current Worktree
	var bare bool

	flush := func() {
		if current.Path != "" && !bare {
			worktrees = append(worktrees, current)
		}
		current = Worktree{}
		bare = false
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			current.Path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case line == "bare":
			bare = true
		}
	}
	flush()

	return worktrees, nil
}

// AddWorktree registers a new worktree at path against the bare clone.
func AddWorktree(executor GitExecutor, bareDir, path, branch string, opts AddOptions) error {
	args := []string{"-C", bareDir, "worktree", "add"}
	if opts.NewBranch {
		args = append(args, "-b", branch)
	}
	if opts.Track != "" {
		args = append(args, "--track")
	}
	args = append(args, path)

	switch {
	case opts.Track != "":
		args = append(args, opts.Track)
	case opts.NewBranch:
		if opts.Base != "" {
			args = append(args, opts.Base)
		}
	default:
		args = append(args, branch)
	}

	_, err := executor.Execute(args...)
	return err
}

// RemoveWorktree removes the worktree registration and its directory.
// The branch ref is left untouched.
func RemoveWorktree(executor GitExecutor, bareDir, path string, force bool) error {
	args := []string{"-C", bareDir, "worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)

	_, err := executor.Execute(args...)
	return err
}

// IsDirty reports whether a worktree has uncommitted modifications or
// untracked files.
func IsDirty(executor GitExecutor, worktreePath string) (bool, error) {
	out, err := executor.Execute("-C", worktreePath, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// SetUpstream points a branch's push/pull target at origin/<branch> by
// writing the tracking config directly. `branch --set-upstream-to`
// refuses refs that do not exist yet, and for brand-new branches the
// remote ref will only appear on the first push.
func SetUpstream(executor GitExecutor, worktreePath, branch string) error {
	if _, err := executor.Execute("-C", worktreePath, "config", "branch."+branch+".remote", "origin"); err != nil {
		return err
	}
	_, err := executor.Execute("-C", worktreePath, "config", "branch."+branch+".merge", "refs/heads/"+branch)
	return err
}

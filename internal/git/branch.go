package git

import (
	"errors"
	"strings"
)

// BranchState classifies a branch against the bare clone's ref database.
type BranchState int

const (
	// BranchAbsent means the branch exists neither locally nor on origin.
	BranchAbsent BranchState = iota

	// BranchLocal means refs/heads/<branch> exists in the bare clone.
	BranchLocal

	// BranchRemoteRef means the branch exists only as origin/<branch>.
	BranchRemoteRef
)

func (s BranchState) String() string {
	switch s {
	case BranchLocal:
		return "local"
	case BranchRemoteRef:
		return "remote"
	default:
		return "absent"
	}
}

// Classify determines the state of a branch from the refs already known
// to the bare clone. No network access; a local ref wins over a
// remote-tracking ref when both exist.
func Classify(executor GitExecutor, bareDir, branch string) (BranchState, error) {
	local, err := RefExists(executor, bareDir, "refs/heads/"+branch)
	if err != nil {
		return BranchAbsent, err
	}
	if local {
		return BranchLocal, nil
	}

	remote, err := RefExists(executor, bareDir, "refs/remotes/origin/"+branch)
	if err != nil {
		return BranchAbsent, err
	}
	if remote {
		return BranchRemoteRef, nil
	}

	return BranchAbsent, nil
}

// RefExists checks whether a fully qualified ref exists in the repository.
func RefExists(executor GitExecutor, repoDir, ref string) (bool, error) {
	_, err := executor.Execute("-C", repoDir, "show-ref", "--verify", "--quiet", ref)
	if err != nil {
		var gitErr *GitError
		if errors.As(err, &gitErr) && gitErr.ExitCode == 1 {
			// Exit 1 from show-ref --verify means the ref is missing.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DefaultBranch returns the branch HEAD of the bare clone points at.
// A bare clone records the remote's default branch there at clone time,
// as a plain branch name.
func DefaultBranch(executor GitExecutor, bareDir string) (string, error) {
	out, err := executor.Execute("-C", bareDir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

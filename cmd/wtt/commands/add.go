package commands

import (
	"github.com/spf13/cobra"

	"github.com/wtt-cli/wtt/internal/config"
	wtterrors "github.com/wtt-cli/wtt/internal/errors"
	"github.com/wtt-cli/wtt/internal/fs"
	"github.com/wtt-cli/wtt/internal/git"
	"github.com/wtt-cli/wtt/internal/logger"
	"github.com/wtt-cli/wtt/internal/workspace"
)

func NewAddCmd() *cobra.Command {
	var baseFlag string
	var repoFlag string

	cmd := &cobra.Command{
		Use:   "add <branch>",
		Short: "Add a worktree for a branch",
		Long: `Add a worktree for a branch. An existing local branch is checked out
as-is; a branch that only exists on origin is checked out tracking
origin/<branch>; a brand-new branch is created from --base (default:
the remote's default branch) with its upstream already pointed at
origin/<branch> so the first push needs no extra flags.

Slashes in the branch name become nested directories:
  wtt add feature/login  ->  <worktree_dir>/<repo>/feature/login`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runAdd(git.DefaultExecutor, settings, args[0], baseFlag, repoFlag, workingDir())
		},
	}

	cmd.Flags().StringVar(&baseFlag, "base", "", "Base ref for a newly created branch")
	cmd.Flags().StringVar(&repoFlag, "repo", "", "Repository to operate on (defaults to cwd detection)")

	return cmd
}

func runAdd(executor git.GitExecutor, settings *config.Settings, branch, base, repoFlag, cwd string) error {
	repo, err := workspace.ResolveRepo(repoFlag, cwd, settings)
	if err != nil {
		return err
	}
	if repo == "" {
		return wtterrors.ErrRepoRequired("add")
	}

	// The bare clone is the source of truth for whether a repository
	// is set up; a missing worktree root is recreated by worktree add.
	barePath := workspace.BareClonePath(settings, repo)
	if !fs.DirectoryExists(barePath) {
		return wtterrors.ErrRepoUnknown(repo, barePath)
	}

	worktreePath, err := workspace.WorktreePath(settings, repo, branch)
	if err != nil {
		return err
	}

	worktrees, err := git.ListWorktrees(executor, barePath)
	if err != nil {
		return wtterrors.ErrGitOperation("worktree list", err)
	}
	for _, wt := range worktrees {
		if wt.Path == worktreePath || wt.Branch == branch {
			return wtterrors.ErrWorktreeExists(branch, wt.Path)
		}
	}
	if fs.PathExists(worktreePath) {
		// A stray directory without a registration is an inconsistent
		// state; the path counts as occupied either way.
		return wtterrors.ErrWorktreeExists(branch, worktreePath)
	}

	// Classified fresh on every call so the decision reflects live
	// repository state.
	state, err := git.Classify(executor, barePath, branch)
	if err != nil {
		return wtterrors.ErrGitOperation("ref lookup", err).WithContext("branch", branch)
	}
	logger.Debug("Branch %q classified as %s", branch, state)

	switch state {
	case git.BranchLocal:
		if err := git.AddWorktree(executor, barePath, worktreePath, branch, git.AddOptions{}); err != nil {
			return wtterrors.ErrGitOperation("worktree add", err).WithContext("branch", branch)
		}

	case git.BranchRemoteRef:
		opts := git.AddOptions{NewBranch: true, Track: "origin/" + branch}
		if err := git.AddWorktree(executor, barePath, worktreePath, branch, opts); err != nil {
			return wtterrors.ErrGitOperation("worktree add", err).WithContext("branch", branch)
		}

	case git.BranchAbsent:
		if base == "" {
			base, err = git.DefaultBranch(executor, barePath)
			if err != nil {
				return wtterrors.ErrGitOperation("default branch lookup", err)
			}
		}
		opts := git.AddOptions{NewBranch: true, Base: base}
		if err := git.AddWorktree(executor, barePath, worktreePath, branch, opts); err != nil {
			return wtterrors.ErrGitOperation("worktree add", err).WithContext("branch", branch)
		}
		// origin/<branch> does not exist yet, so tracking has to be
		// written directly rather than inferred at creation time.
		if err := git.SetUpstream(executor, worktreePath, branch); err != nil {
			return wtterrors.ErrGitOperation("set upstream", err).WithContext("branch", branch)
		}
	}

	logger.Success("Added worktree for branch %q at %s", branch, worktreePath)
	return nil
}

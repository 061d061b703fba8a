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

func NewRemoveCmd() *cobra.Command {
	var repoFlag string

	cmd := &cobra.Command{
		Use:   "remove <branch>",
		Short: "Remove a branch's worktree",
		Long: `Remove the worktree registration and directory for a branch. The branch
ref itself, local or remote, is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runRemove(git.DefaultExecutor, settings, args[0], repoFlag, workingDir())
		},
	}

	cmd.Flags().StringVar(&repoFlag, "repo", "", "Repository to operate on (defaults to cwd detection)")

	return cmd
}

func runRemove(executor git.GitExecutor, settings *config.Settings, branch, repoFlag, cwd string) error {
	repo, err := workspace.ResolveRepo(repoFlag, cwd, settings)
	if err != nil {
		return err
	}
	if repo == "" {
		return wtterrors.ErrRepoRequired("remove")
	}

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

	registered := false
	for _, wt := range worktrees {
		if wt.Path == worktreePath {
			registered = true
			break
		}
	}
	if !registered {
		if fs.PathExists(worktreePath) {
			return wtterrors.ErrWorktreeUnregistered(worktreePath)
		}
		return wtterrors.ErrWorktreeNotFound(branch, worktreePath)
	}

	if err := git.RemoveWorktree(executor, barePath, worktreePath, false); err != nil {
		return wtterrors.ErrGitOperation("worktree remove", err).WithContext("branch", branch)
	}

	logger.Success("Removed worktree for branch %q (branch ref kept)", branch)
	return nil
}

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

func NewTeardownCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "teardown [<repo>]",
		Short: "Remove a repository's worktrees, bare clone, and worktree root",
		Long: `Remove every worktree of the repository, then its bare clone, then its
worktree root. Aborts before removing anything if any worktree has
uncommitted changes, unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			repoArg := ""
			if len(args) > 0 {
				repoArg = args[0]
			}
			return runTeardown(git.DefaultExecutor, settings, repoArg, workingDir(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Discard uncommitted changes in dirty worktrees")

	return cmd
}

func runTeardown(executor git.GitExecutor, settings *config.Settings, repoArg, cwd string, force bool) error {
	repo, err := workspace.ResolveRepo(repoArg, cwd, settings)
	if err != nil {
		return err
	}
	if repo == "" {
		return wtterrors.ErrRepoRequired("teardown")
	}

	barePath := workspace.BareClonePath(settings, repo)
	worktreeRoot := workspace.WorktreeRoot(settings, repo)

	if !fs.DirectoryExists(barePath) {
		return wtterrors.ErrRepoUnknown(repo, barePath)
	}

	worktrees, err := git.ListWorktrees(executor, barePath)
	if err != nil {
		return wtterrors.ErrGitOperation("worktree list", err)
	}

	// The dirty check runs over every worktree before anything is
	// removed; teardown is all-or-nothing with respect to it.
	if !force {
		for _, wt := range worktrees {
			dirty, err := git.IsDirty(executor, wt.Path)
			if err != nil {
				return wtterrors.ErrGitOperation("status", err).WithContext("path", wt.Path)
			}
			if dirty {
				return wtterrors.ErrDirtyWorktree(wt.Branch, wt.Path)
			}
		}
	}

	for i, wt := range worktrees {
		if err := git.RemoveWorktree(executor, barePath, wt.Path, force); err != nil {
			logger.Warning("teardown halted: %d of %d worktrees removed; bare clone at %s and worktree root at %s remain on disk",
				i, len(worktrees), barePath, worktreeRoot)
			return wtterrors.ErrGitOperation("worktree remove", err).WithContext("path", wt.Path)
		}
		logger.Info("Removed worktree %s", wt.Path)
	}

	if err := fs.RemoveAll(barePath); err != nil {
		logger.Warning("teardown halted: worktree root at %s remains on disk", worktreeRoot)
		return err
	}
	if err := fs.RemoveAll(worktreeRoot); err != nil {
		logger.Warning("teardown halted: bare clone was removed but the worktree root at %s remains on disk", worktreeRoot)
		return err
	}

	logger.Success("Tore down repository %q", repo)
	return nil
}

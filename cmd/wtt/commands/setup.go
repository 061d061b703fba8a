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

func NewSetupCmd() *cobra.Command {
	var repoFlag string

	cmd := &cobra.Command{
		Use:   "setup <url>",
		Short: "Clone a repository as a bare clone and create its worktree root",
		Long: `Clone the remote as a bare clone and create the repository's worktree
root. The local name defaults to the last path segment of the URL with
any .git suffix stripped.

Examples:
  wtt setup git@github.com:user/myrepo.git
  wtt setup https://github.com/user/myrepo --repo renamed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runSetup(git.DefaultExecutor, settings, args[0], repoFlag)
		},
	}

	cmd.Flags().StringVar(&repoFlag, "repo", "", "Local name for the repository (defaults to name from URL)")

	return cmd
}

func runSetup(executor git.GitExecutor, settings *config.Settings, url, repoFlag string) error {
	repo := repoFlag
	if repo == "" {
		name, err := git.RepoNameFromURL(url)
		if err != nil {
			return err
		}
		repo = name
	} else if err := git.ValidateRepoName(repo); err != nil {
		return err
	}

	barePath := workspace.BareClonePath(settings, repo)
	worktreeRoot := workspace.WorktreeRoot(settings, repo)

	if fs.PathExists(barePath) {
		return wtterrors.ErrAlreadySetUp(repo, barePath)
	}

	logger.Info("Cloning %s into %s", url, barePath)
	if err := git.CloneBare(executor, url, barePath); err != nil {
		// git cleans up the destination on a failed clone, so nothing
		// was created.
		return wtterrors.ErrGitOperation("clone", err).WithContext("url", url)
	}

	// A bare clone has no remote-tracking refs by default; configure
	// the refspec and fetch so origin/<branch> refs exist for
	// classification.
	if err := git.ConfigureRemoteFetch(executor, barePath); err != nil {
		return wtterrors.ErrGitOperation("config remote.origin.fetch", err)
	}
	if err := git.Fetch(executor, barePath); err != nil {
		return wtterrors.ErrGitOperation("fetch", err)
	}

	if err := fs.EnsureDir(worktreeRoot); err != nil {
		// Partial-success state: the clone stays on disk, surfaced to
		// the user instead of rolled back.
		logger.Warning("bare clone was created at %s but the worktree root could not be created", barePath)
		return err
	}

	logger.Success("Set up repository %q (worktrees under %s)", repo, worktreeRoot)
	return nil
}

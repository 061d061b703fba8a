package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wtt-cli/wtt/internal/config"
	wtterrors "github.com/wtt-cli/wtt/internal/errors"
	"github.com/wtt-cli/wtt/internal/fs"
	"github.com/wtt-cli/wtt/internal/git"
	"github.com/wtt-cli/wtt/internal/logger"
	"github.com/wtt-cli/wtt/internal/workspace"
)

func NewListCmd() *cobra.Command {
	var repoFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered worktrees",
		Long: `List the registered worktrees of a repository. With no --repo and a
working directory outside the worktree root, lists every repository
known under the worktree root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runList(git.DefaultExecutor, settings, repoFlag, workingDir())
		},
	}

	cmd.Flags().StringVar(&repoFlag, "repo", "", "Repository to list (defaults to cwd detection, else all)")

	return cmd
}

func runList(executor git.GitExecutor, settings *config.Settings, repoFlag, cwd string) error {
	lines, err := collectList(executor, settings, repoFlag, cwd)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		logger.Info("No worktrees found")
		return nil
	}

	logger.Info("%s", strings.Join(lines, "\n"))
	return nil
}

// collectList gathers one "repo<TAB>branch<TAB>path" line per
// registered worktree in scope. Collection is separated from printing
// so a failure never leaves a partially printed listing behind.
func collectList(executor git.GitExecutor, settings *config.Settings, repoFlag, cwd string) ([]string, error) {
	repo, err := workspace.ResolveRepo(repoFlag, cwd, settings)
	if err != nil {
		return nil, err
	}

	var repos []string
	if repo == "" {
		repos, err = workspace.ListRepos(settings)
		if err != nil {
			return nil, err
		}
	} else {
		barePath := workspace.BareClonePath(settings, repo)
		if !fs.DirectoryExists(barePath) {
			return nil, wtterrors.ErrRepoUnknown(repo, barePath)
		}
		repos = []string{repo}
	}

	var lines []string
	for _, r := range repos {
		worktrees, err := git.ListWorktrees(executor, workspace.BareClonePath(settings, r))
		if err != nil {
			return nil, wtterrors.ErrGitOperation("worktree list", err).WithContext("repo", r)
		}
		for _, wt := range worktrees {
			branch := wt.Branch
			if branch == "" {
				branch = "(detached)"
			}
			lines = append(lines, fmt.Sprintf("%s\t%s\t%s", r, branch, wt.Path))
		}
	}

	return lines, nil
}

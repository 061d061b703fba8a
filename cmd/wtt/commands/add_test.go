package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wtterrors "github.com/wtt-cli/wtt/internal/errors"
	"github.com/wtt-cli/wtt/internal/fs"
	"github.com/wtt-cli/wtt/internal/git"
	"github.com/wtt-cli/wtt/internal/testutil"
	"github.com/wtt-cli/wtt/internal/workspace"
)

func TestAddLocalBranch(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	// The default branch arrives as a local ref at clone time.
	err := runAdd(git.DefaultExecutor, settings, "main", "", repo, outsideDir(t))
	require.NoError(t, err)

	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "main")
	assert.True(t, fs.DirectoryExists(worktreePath))

	worktrees := registeredWorktrees(t, settings, repo)
	require.Len(t, worktrees, 1)
	assert.Equal(t, "main", worktrees[0].Branch)
	assert.Equal(t, worktreePath, worktrees[0].Path)
}

func TestAddRemoteOnlyBranch(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)
	barePath := workspace.BareClonePath(settings, repo)

	// Created on origin after setup, so it exists only as origin/topic
	// in the bare clone after a fetch.
	origin.CreateBranch("topic")
	require.NoError(t, git.Fetch(git.DefaultExecutor, barePath))

	state, err := git.Classify(git.DefaultExecutor, barePath, "topic")
	require.NoError(t, err)
	require.Equal(t, git.BranchRemoteRef, state)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "topic", "", repo, outsideDir(t)))

	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "topic")
	upstream := testutil.MustExec(t, worktreePath, "git", "rev-parse", "--abbrev-ref", "topic@{upstream}")
	assert.Equal(t, "origin/topic", strings.TrimSpace(upstream))
}

func TestAddAbsentBranchCreatesFromDefaultAndSetsUpstream(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)
	barePath := workspace.BareClonePath(settings, repo)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "brand-new", "", repo, outsideDir(t)))

	// The branch now exists locally in the bare clone.
	exists, err := git.RefExists(git.DefaultExecutor, barePath, "refs/heads/brand-new")
	require.NoError(t, err)
	assert.True(t, exists)

	// Upstream points at origin/brand-new even though that remote ref
	// does not exist yet.
	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "brand-new")
	remote := testutil.MustExec(t, worktreePath, "git", "config", "branch.brand-new.remote")
	merge := testutil.MustExec(t, worktreePath, "git", "config", "branch.brand-new.merge")
	assert.Equal(t, "origin", strings.TrimSpace(remote))
	assert.Equal(t, "refs/heads/brand-new", strings.TrimSpace(merge))

	remoteExists, err := git.RefExists(git.DefaultExecutor, barePath, "refs/remotes/origin/brand-new")
	require.NoError(t, err)
	assert.False(t, remoteExists)
}

func TestAddAbsentBranchWithExplicitBase(t *testing.T) {
	settings, origin := testWorkspace(t)
	origin.CreateBranch("release")
	repo := mustSetup(t, settings, origin)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "hotfix", "release", repo, outsideDir(t)))

	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "hotfix")
	assert.True(t, fs.DirectoryExists(worktreePath))
}

func TestAddNestedBranchCreatesNestedDirectories(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "feature/login", "", repo, outsideDir(t)))

	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "feature", "login")
	assert.True(t, fs.DirectoryExists(worktreePath))

	worktrees := registeredWorktrees(t, settings, repo)
	require.Len(t, worktrees, 1)
	assert.Equal(t, "feature/login", worktrees[0].Branch)
}

func TestAddDuplicateBranchFails(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "main", "", repo, outsideDir(t)))
	err := runAdd(git.DefaultExecutor, settings, "main", "", repo, outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeWorktreeExists))
}

func TestAddStrayDirectoryFails(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	stray := filepath.Join(workspace.WorktreeRoot(settings, repo), "occupied")
	require.NoError(t, os.MkdirAll(stray, 0o755))

	err := runAdd(git.DefaultExecutor, settings, "occupied", "", repo, outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeWorktreeExists))
}

func TestAddResolvesRepoFromCwd(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "main", "", repo, outsideDir(t)))

	// Run from inside the main worktree without --repo.
	cwd := filepath.Join(workspace.WorktreeRoot(settings, repo), "main")
	require.NoError(t, runAdd(git.DefaultExecutor, settings, "second", "", "", cwd))

	worktrees := registeredWorktrees(t, settings, repo)
	assert.Len(t, worktrees, 2)
}

func TestAddRequiresRepoScope(t *testing.T) {
	settings, origin := testWorkspace(t)
	mustSetup(t, settings, origin)

	err := runAdd(git.DefaultExecutor, settings, "main", "", "", outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeRepoRequired))
}

func TestAddRecreatesMissingWorktreeRoot(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	// A lost worktree root (e.g. a setup that failed half way) does not
	// make the repository unknown; the bare clone decides that, same as
	// in remove and teardown.
	require.NoError(t, os.RemoveAll(workspace.WorktreeRoot(settings, repo)))

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "main", "", repo, outsideDir(t)))

	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "main")
	assert.True(t, fs.DirectoryExists(worktreePath))
}

func TestAddUnknownRepo(t *testing.T) {
	settings, _ := testWorkspace(t)

	err := runAdd(git.DefaultExecutor, settings, "main", "", "ghost", outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeRepoUnknown))
}

func TestAddRejectsEscapingBranchName(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	err := runAdd(git.DefaultExecutor, settings, "../evil", "", repo, outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeBranchInvalid))
}

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wtterrors "github.com/wtt-cli/wtt/internal/errors"
	"github.com/wtt-cli/wtt/internal/fs"
	"github.com/wtt-cli/wtt/internal/git"
	"github.com/wtt-cli/wtt/internal/workspace"
)

func TestRemoveWorktreeKeepsBranchRef(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)
	barePath := workspace.BareClonePath(settings, repo)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "main", "", repo, outsideDir(t)))
	require.NoError(t, runRemove(git.DefaultExecutor, settings, "main", repo, outsideDir(t)))

	// Worktree directory and registration are gone.
	worktreePath := filepath.Join(workspace.WorktreeRoot(settings, repo), "main")
	assert.False(t, fs.PathExists(worktreePath))
	assert.Empty(t, registeredWorktrees(t, settings, repo))

	// The bare clone and the branch ref are untouched.
	assert.True(t, fs.DirectoryExists(barePath))
	exists, err := git.RefExists(git.DefaultExecutor, barePath, "refs/heads/main")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRemoveNestedBranchWorktree(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	require.NoError(t, runAdd(git.DefaultExecutor, settings, "feature/login", "", repo, outsideDir(t)))
	require.NoError(t, runRemove(git.DefaultExecutor, settings, "feature/login", repo, outsideDir(t)))

	assert.False(t, fs.PathExists(filepath.Join(workspace.WorktreeRoot(settings, repo), "feature", "login")))
}

func TestRemoveNotFound(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	err := runRemove(git.DefaultExecutor, settings, "ghost", repo, outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeWorktreeNotFound))
}

func TestRemoveStrayDirectoryIsSurfaced(t *testing.T) {
	settings, origin := testWorkspace(t)
	repo := mustSetup(t, settings, origin)

	stray := filepath.Join(workspace.WorktreeRoot(settings, repo), "stray")
	require.NoError(t, os.MkdirAll(stray, 0o755))

	err := runRemove(git.DefaultExecutor, settings, "stray", repo, outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeWorktreeUnregistered))
	// The stray directory is left alone.
	assert.True(t, fs.DirectoryExists(stray))
}

func TestRemoveUnknownRepo(t *testing.T) {
	settings, _ := testWorkspace(t)

	err := runRemove(git.DefaultExecutor, settings, "main", "ghost", outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeRepoUnknown))
}

func TestRemoveRequiresRepoScope(t *testing.T) {
	settings, origin := testWorkspace(t)
	mustSetup(t, settings, origin)

	err := runRemove(git.DefaultExecutor, settings, "main", "", outsideDir(t))
	assert.True(t, wtterrors.IsCode(err, wtterrors.ErrCodeRepoRequired))
}

package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wtt-cli/wtt/internal/config"
	"github.com/wtt-cli/wtt/internal/git"
	"github.com/wtt-cli/wtt/internal/testutil"
	gittest "github.com/wtt-cli/wtt/internal/testutil/git"
	"github.com/wtt-cli/wtt/internal/workspace"
)

// testWorkspace returns settings rooted in a temp directory plus a
// local origin repository whose path doubles as the clone URL.
func testWorkspace(t *testing.T) (*config.Settings, *gittest.TestRepo) {
	t.Helper()
	dir := testutil.TempDir(t)
	settings := &config.Settings{
		BareCloneDir: filepath.Join(dir, "bare"),
		WorktreeDir:  filepath.Join(dir, "devel"),
	}
	return settings, gittest.NewTestRepo(t)
}

// mustSetup runs setup against the origin repo and returns the derived
// repo name.
func mustSetup(t *testing.T, settings *config.Settings, origin *gittest.TestRepo) string {
	t.Helper()
	require.NoError(t, runSetup(git.DefaultExecutor, settings, origin.Path, ""))
	return "origin"
}

// outsideDir is a cwd guaranteed not to sit under the worktree root.
func outsideDir(t *testing.T) string {
	t.Helper()
	return testutil.TempDir(t)
}

// registeredWorktrees lists the linked worktrees of the repo's bare clone.
func registeredWorktrees(t *testing.T, settings *config.Settings, repo string) []git.Worktree {
	t.Helper()
	worktrees, err := git.ListWorktrees(git.DefaultExecutor, workspace.BareClonePath(settings, repo))
	require.NoError(t, err)
	return worktrees
}

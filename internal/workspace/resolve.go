package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wtt-cli/wtt/internal/config"
	wtterrors "github.com/wtt-cli/wtt/internal/errors"
	"github.com/wtt-cli/wtt/internal/fs"
	"github.com/wtt-cli/wtt/internal/git"
)

// ResolveRepo determines which repository a command operates on. An
// explicit name is used verbatim (after validation); otherwise the
// repository is derived from cwd's position under the worktree root.
// The empty result with a nil error means "no scope": the caller either
// operates tool-wide (list) or fails with REPO_REQUIRED.
func ResolveRepo(explicit, cwd string, settings *config.Settings) (string, error) {
	if explicit != "" {
		if err := git.ValidateRepoName(explicit); err != nil {
			return "", err
		}
		return explicit, nil
	}

	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", wtterrors.ErrFileSystem("resolve-path", cwd, err)
	}
	absRoot, err := filepath.Abs(settings.WorktreeDir)
	if err != nil {
		return "", wtterrors.ErrFileSystem("resolve-path", settings.WorktreeDir, err)
	}

	rel, err := filepath.Rel(absRoot, absCwd)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", nil
	}

	// First segment under the worktree root names the repository.
	segments := strings.SplitN(rel, string(filepath.Separator), 2)
	return segments[0], nil
}

// IsSetUp reports whether a repository is fully set up: both the bare
// clone and the worktree root must exist (they are created and
// destroyed together).
func IsSetUp(settings *config.Settings, repo string) bool {
	return fs.DirectoryExists(BareClonePath(settings, repo)) &&
		fs.DirectoryExists(WorktreeRoot(settings, repo))
}

// ListRepos enumerates the repositories known under the worktree root,
// i.e. directories that have a matching bare clone. A missing worktree
// root yields an empty list, not an error.
func ListRepos(settings *config.Settings) ([]string, error) {
	entries, err := os.ReadDir(settings.WorktreeDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, wtterrors.ErrFileSystem("read-dir", settings.WorktreeDir, err)
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if fs.DirectoryExists(BareClonePath(settings, entry.Name())) {
			repos = append(repos, entry.Name())
		}
	}
	sort.Strings(repos)
	return repos, nil
}

// Package git provides real-git test fixtures. Tests that exercise the
// command run functions against actual repositories use these instead
// of the mock executor.
package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/wtt-cli/wtt/internal/testutil"
)

// TestRepo is a throwaway git repository that serves as the "origin"
// remote in tests. Its path doubles as a clone URL.
type TestRepo struct {
	t    *testing.T
	Path string
}

// NewTestRepo creates a repository with git config set up and one
// initial commit on the given branch (default "main").
func NewTestRepo(t *testing.T, branchName ...string) *TestRepo {
	t.Helper()

	dir := testutil.TempDir(t)
	repoPath := filepath.Join(dir, "origin")

	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		t.Fatalf("Failed to create repo dir: %v", err)
	}

	branch := "main"
	if len(branchName) > 0 && branchName[0] != "" {
		branch = branchName[0]
	}

	run(t, repoPath, "init", "-b", branch)

	configs := [][]string{
		{"commit.gpgsign", "false"},
		{"user.email", "test@example.com"},
		{"user.name", "Test User"},
	}
	for _, cfg := range configs {
		run(t, repoPath, "config", cfg[0], cfg[1])
	}

	r := &TestRepo{t: t, Path: repoPath}
	r.WriteFile("README.md", "test repo\n")
	r.Commit("initial")
	return r
}

// WriteFile writes a file inside the repository.
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	testutil.WriteFile(r.t, filepath.Join(r.Path, name), content)
}

// Commit stages everything and commits.
func (r *TestRepo) Commit(message string) {
	r.t.Helper()
	run(r.t, r.Path, "add", ".")
	run(r.t, r.Path, "commit", "-m", message)
}

// CreateBranch creates a new branch at the current HEAD.
func (r *TestRepo) CreateBranch(name string) {
	r.t.Helper()
	run(r.t, r.Path, "branch", name)
}

// Checkout switches to a branch.
func (r *TestRepo) Checkout(name string) {
	r.t.Helper()
	run(r.t, r.Path, "checkout", name)
}

// Branches lists the local branch names.
func (r *TestRepo) Branches() []string {
	r.t.Helper()
	out := testutil.MustExec(r.t, r.Path, "git", "for-each-ref", "--format=%(refname:short)", "refs/heads")
	var branches []string
	for _, line := range splitLines(out) {
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func run(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...) // nolint:gosec // Test helper with controlled input
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

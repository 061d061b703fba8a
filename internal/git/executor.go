package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/wtt-cli/wtt/internal/logger"
)

// GitExecutor defines the interface for executing git commands.
// Decision logic depends on this interface so tests can substitute a
// fake without touching disk.
type GitExecutor interface {
	Execute(args ...string) (string, error)
}

// DefaultGitExecutor implements GitExecutor using real git commands.
type DefaultGitExecutor struct{}

// Execute runs a real git command.
func (e *DefaultGitExecutor) Execute(args ...string) (string, error) {
	return ExecuteGit(args...)
}

// DefaultExecutor is the default git command executor.
var DefaultExecutor GitExecutor = &DefaultGitExecutor{}

// GitError represents an error from a git command execution.
type GitError struct {
	Command  string
	Args     []string
	Stderr   string
	ExitCode int
}

func (e *GitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf("git %s failed (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, stderr)
}

// ExecuteGit runs a git command with the given arguments and returns stdout.
// If the command fails, it returns a GitError with stderr and exit code.
func ExecuteGit(args ...string) (string, error) {
	logger.Debug("Executing: git %s", strings.Join(args, " "))

	cmd := exec.Command("git", args...)

	stdout, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = string(exitErr.Stderr)
		}

		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}

		return "", &GitError{
			Command:  "git",
			Args:     args,
			Stderr:   stderr,
			ExitCode: exitCode,
		}
	}

	return strings.TrimSpace(string(stdout)), nil
}

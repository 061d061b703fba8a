package errors

import (
	"fmt"
)

// Error codes for programmatic handling
const (
	// Configuration errors
	ErrCodeConfigInvalid = "CONFIG_INVALID"

	// Repository naming and scope errors
	ErrCodeRepoRequired    = "REPO_REQUIRED"
	ErrCodeRepoUnknown     = "REPO_UNKNOWN"
	ErrCodeRepoNameInvalid = "REPO_NAME_INVALID"

	// Branch errors
	ErrCodeBranchInvalid = "BRANCH_INVALID"

	// Lifecycle precondition errors
	ErrCodeAlreadySetUp         = "ALREADY_SET_UP"
	ErrCodeWorktreeExists       = "WORKTREE_EXISTS"
	ErrCodeWorktreeNotFound     = "WORKTREE_NOT_FOUND"
	ErrCodeWorktreeUnregistered = "WORKTREE_UNREGISTERED"
	ErrCodeDirtyWorktree        = "DIRTY_WORKTREE"

	// External collaborator failures
	ErrCodeGitOperation = "GIT_OPERATION"
	ErrCodeFileSystem   = "FILE_SYSTEM"
)

// WttError is a standardized error with a stable code and context.
//
// Every failure a command surfaces is one of these; commands wrap
// collaborator errors at the handler boundary and main prints the
// result once. Matching is done by code via errors.Is.
type WttError struct {
	Code    string         // Standardized error code (see ErrCode* constants)
	Message string         // Human-readable error message
	Cause   error          // Underlying error, if any
	Context map[string]any // Additional contextual information
}

// Error implements the error interface
func (e *WttError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *WttError) Unwrap() error {
	return e.Cause
}

// Is matches against another WttError by code
func (e *WttError) Is(target error) bool {
	if t, ok := target.(*WttError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *WttError) WithContext(key string, value any) *WttError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new standardized error
func New(code, message string, cause error) *WttError {
	return &WttError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// Newf creates a new standardized error with a formatted message
func Newf(code string, cause error, format string, args ...any) *WttError {
	return &WttError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// Configuration errors

func ErrConfigInvalid(path, reason string, cause error) *WttError {
	return Newf(ErrCodeConfigInvalid, cause, "invalid config file %s: %s", path, reason).
		WithContext("path", path)
}

// Repository errors

func ErrRepoRequired(command string) *WttError {
	return Newf(ErrCodeRepoRequired, nil,
		"%s: cannot determine repository; pass --repo or run from inside a worktree", command).
		WithContext("command", command)
}

func ErrRepoUnknown(repo, barePath string) *WttError {
	return Newf(ErrCodeRepoUnknown, nil, "repository %q is not set up (no bare clone at %s)", repo, barePath).
		WithContext("repo", repo).
		WithContext("path", barePath)
}

func ErrRepoNameInvalid(name, reason string) *WttError {
	return Newf(ErrCodeRepoNameInvalid, nil, "invalid repository name %q: %s", name, reason).
		WithContext("name", name)
}

// Branch errors

func ErrBranchInvalid(branch, reason string) *WttError {
	return Newf(ErrCodeBranchInvalid, nil, "invalid branch name %q: %s", branch, reason).
		WithContext("branch", branch)
}

// Lifecycle errors

func ErrAlreadySetUp(repo, barePath string) *WttError {
	return Newf(ErrCodeAlreadySetUp, nil, "repository %q is already set up at %s", repo, barePath).
		WithContext("repo", repo).
		WithContext("path", barePath)
}

func ErrWorktreeExists(branch, path string) *WttError {
	return Newf(ErrCodeWorktreeExists, nil, "worktree for branch %q already exists at %s", branch, path).
		WithContext("branch", branch).
		WithContext("path", path)
}

func ErrWorktreeNotFound(branch, path string) *WttError {
	return Newf(ErrCodeWorktreeNotFound, nil, "no worktree registered for branch %q at %s", branch, path).
		WithContext("branch", branch).
		WithContext("path", path)
}

func ErrWorktreeUnregistered(path string) *WttError {
	return Newf(ErrCodeWorktreeUnregistered, nil,
		"%s exists on disk but is not a registered worktree; refusing to touch it", path).
		WithContext("path", path)
}

func ErrDirtyWorktree(branch, path string) *WttError {
	return Newf(ErrCodeDirtyWorktree, nil,
		"worktree for branch %q at %s has uncommitted changes (use --force to override)", branch, path).
		WithContext("branch", branch).
		WithContext("path", path)
}

// External collaborator errors

func ErrGitOperation(operation string, cause error) *WttError {
	return Newf(ErrCodeGitOperation, cause, "git %s failed", operation).
		WithContext("operation", operation)
}

func ErrFileSystem(operation, path string, cause error) *WttError {
	return Newf(ErrCodeFileSystem, cause, "filesystem operation failed: %s %s", operation, path).
		WithContext("operation", operation).
		WithContext("path", path)
}

// IsCode reports whether err is a WttError carrying the given code.
func IsCode(err error, code string) bool {
	for err != nil {
		if werr, ok := err.(*WttError); ok && werr.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

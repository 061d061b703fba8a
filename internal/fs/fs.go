package fs

import (
	"os"

	wtterrors "github.com/wtt-cli/wtt/internal/errors"
)

const (
	// Git-compatible permissions (required for git operations)
	DirGit  = 0o755 // rwxr-xr-x - git-compatible directory
	FileGit = 0o644 // rw-r--r-- - git-compatible file
)

// DirectoryExists checks if a directory exists
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// PathExists checks if anything exists at the given path
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// EnsureDir creates a directory and any missing parents
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirGit); err != nil {
		return wtterrors.ErrFileSystem("create-dir", path, err)
	}
	return nil
}

// RemoveAll removes a directory tree
func RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return wtterrors.ErrFileSystem("remove-dir", path, err)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file wtt looks for in its config directory
const FileName = "config.toml"

// DefaultConfigPath returns the default config file location following
// the XDG Base Directory specification (~/.config/wtt/config.toml).
// Returns empty string when no home directory can be determined.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "wtt", FileName)
	}
	if home := homeDir(); home != "" {
		return filepath.Join(home, ".config", "wtt", FileName)
	}
	return ""
}

// DefaultBareCloneDir returns the built-in bare clone location
// (~/.local/share/wtt/bare, honoring XDG_DATA_HOME).
func DefaultBareCloneDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "wtt", "bare")
	}
	return filepath.Join(homeDir(), ".local", "share", "wtt", "bare")
}

// DefaultWorktreeDir returns the built-in worktree root (~/devel).
func DefaultWorktreeDir() string {
	return filepath.Join(homeDir(), "devel")
}

// ExpandTilde expands a leading ~/ to the user's home directory.
// Paths without the prefix are returned unchanged.
func ExpandTilde(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		return userProfile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

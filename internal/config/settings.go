package config

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	wtterrors "github.com/wtt-cli/wtt/internal/errors"
)

// Settings is the effective configuration for a single invocation.
// Resolved once at process start and threaded into every component.
type Settings struct {
	// BareCloneDir is the directory holding the bare clones, one
	// <repo>.git per repository.
	BareCloneDir string

	// WorktreeDir is the root under which per-repo worktree
	// directories live (<worktree_dir>/<repo>/<branch>).
	WorktreeDir string
}

// Options carries the CLI-level inputs to Resolve.
type Options struct {
	// ConfigFile is an explicit config file path (--config-file).
	// A missing explicit file is an error; a missing default file is not.
	ConfigFile string

	// NoConfigFile skips config file loading entirely (--no-config-file).
	NoConfigFile bool

	// BareCloneDir and WorktreeDir are CLI overrides; they take
	// precedence over both the environment and the config file.
	BareCloneDir string
	WorktreeDir  string
}

// fileConfig mirrors the TOML config file. All keys are optional.
type fileConfig struct {
	BareCloneDir string `toml:"bare_clone_dir"`
	WorktreeDir  string `toml:"worktree_dir"`
}

// Resolve merges built-in defaults, the optional config file, WTT_*
// environment variables, and CLI overrides into one Settings value.
// Precedence, lowest to highest: defaults < file < env < CLI flags.
func Resolve(opts Options) (*Settings, error) {
	v := viper.New()
	v.SetDefault("bare_clone_dir", DefaultBareCloneDir())
	v.SetDefault("worktree_dir", DefaultWorktreeDir())

	v.SetEnvPrefix("WTT")
	v.AutomaticEnv()

	if !opts.NoConfigFile {
		path := opts.ConfigFile
		explicit := path != ""
		if !explicit {
			path = DefaultConfigPath()
		}
		if path != "" {
			fc, err := loadFile(path, explicit)
			if err != nil {
				return nil, err
			}
			if fc != nil {
				values := map[string]any{}
				if fc.BareCloneDir != "" {
					values["bare_clone_dir"] = fc.BareCloneDir
				}
				if fc.WorktreeDir != "" {
					values["worktree_dir"] = fc.WorktreeDir
				}
				if err := v.MergeConfigMap(values); err != nil {
					return nil, wtterrors.ErrConfigInvalid(path, err.Error(), err)
				}
			}
		}
	}

	// CLI overrides sit above everything else.
	if opts.BareCloneDir != "" {
		v.Set("bare_clone_dir", opts.BareCloneDir)
	}
	if opts.WorktreeDir != "" {
		v.Set("worktree_dir", opts.WorktreeDir)
	}

	return &Settings{
		BareCloneDir: ExpandTilde(v.GetString("bare_clone_dir")),
		WorktreeDir:  ExpandTilde(v.GetString("worktree_dir")),
	}, nil
}

// loadFile reads and strictly decodes a TOML config file. A missing
// file is only an error when the path was given explicitly.
func loadFile(path string, explicit bool) (*fileConfig, error) {
	data, err := os.ReadFile(path) // nolint:gosec // user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, wtterrors.ErrConfigInvalid(path, "file does not exist", err)
			}
			return nil, nil
		}
		return nil, wtterrors.ErrConfigInvalid(path, "file is not readable", err)
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, wtterrors.ErrConfigInvalid(path, describeDecodeError(err), err)
	}

	return &fc, nil
}

// describeDecodeError pulls the offending key out of a go-toml decode
// error so the user sees which field broke, not just "decode failed".
func describeDecodeError(err error) string {
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		keys := make([]string, 0, len(strictErr.Errors))
		for i := range strictErr.Errors {
			keys = append(keys, strings.Join(strictErr.Errors[i].Key(), "."))
		}
		return "unknown field(s): " + strings.Join(keys, ", ")
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		if key := decodeErr.Key(); len(key) > 0 {
			return "invalid value for " + strings.Join(key, ".") + ": " + decodeErr.Error()
		}
		return decodeErr.Error()
	}

	return err.Error()
}

// Package commands defines the wtt command-line surface. Each
// subcommand lives in its own file; the run functions orchestrate the
// path layout, branch classification, and git operations.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wtt-cli/wtt/internal/config"
)

const Version = "v0.1.0"

// NewRootCmd creates and configures the wtt root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wtt",
		Short:   "Manage per-branch worktrees against a shared bare clone",
		Version: Version,
		Long: `wtt manages developer working trees for a repository using one bare
clone plus linked worktrees: the bare clone holds all refs and objects,
and each active branch gets its own working directory.`,

		// Errors are printed once by main, not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadFromEnv()
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				config.Global.Plain = true
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				config.Global.Debug = true
			}
		},
	}

	rootCmd.PersistentFlags().String("config-file", "", "Path to the config file")
	rootCmd.PersistentFlags().Bool("no-config-file", false, "Skip config file loading")
	rootCmd.PersistentFlags().String("bare-dir", "", "Override the bare clone directory")
	rootCmd.PersistentFlags().String("worktree-dir", "", "Override the worktree root directory")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewSetupCmd())
	rootCmd.AddCommand(NewTeardownCmd())
	rootCmd.AddCommand(NewAddCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewRemoveCmd())

	return rootCmd
}

// resolveSettings builds the effective settings from the global flags.
// Called once per command invocation; the result is threaded into the
// run function rather than stored globally.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	noConfigFile, _ := flags.GetBool("no-config-file")
	bareDir, _ := flags.GetString("bare-dir")
	worktreeDir, _ := flags.GetString("worktree-dir")

	return config.Resolve(config.Options{
		ConfigFile:   configFile,
		NoConfigFile: noConfigFile,
		BareCloneDir: bareDir,
		WorktreeDir:  worktreeDir,
	})
}

// workingDir returns the process working directory for repo detection.
func workingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modforge/modforge/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "modforge",
	Short: "Command-line scaffolder for Sims 4 mod projects",
	Long: `ModForge generates the folder and file skeleton for a Sims 4 mod:
the mod folder itself, a modinfo.py descriptor, and any combination of
script, tuning, and package starter files.

Behavior is driven by a settings.json file and an optional presets.yaml
catalog next to it; both paths can be overridden with persistent flags.`,
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return InitDependencies(cmd)
	},
}

// Execute runs the root command. Dependencies are built in
// PersistentPreRunE once the persistent flags are parsed.
func Execute() error {
	defer CloseDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("modforge %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("settings", "", `path to the settings file (default "settings.json")`)
	rootCmd.PersistentFlags().String("presets", "", "path to the preset catalog (default next to the settings file)")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for timestamped debug log files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log progress details to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func getStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return value
}

func getBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return value
}

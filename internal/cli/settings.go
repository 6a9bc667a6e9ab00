package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modforge/modforge/internal/cli/wizard"
	"github.com/modforge/modforge/internal/config"
	"github.com/modforge/modforge/internal/defs"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change the persisted settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE:  runSettingsShow,
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the settings interactively",
	RunE:  runSettingsEdit,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsEditCmd, settingsResetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettingsWithNotice(cmd)
	if err != nil {
		return err
	}

	pairs := []kvPair{
		{key: "Mods folder", value: valueOrUnset(settings.MainModsFolder)},
		{key: "Generated mods", value: boolWord(settings.GeneratedModsEnabled)},
		{key: "Temp mod timer", value: settings.TempModTimer},
		{key: "Strip spaces in folders", value: boolWord(settings.NamingRules.NoSpacesFolders)},
		{key: "Strip spaces in files", value: boolWord(settings.NamingRules.NoSpacesFiles)},
		{key: "Spaces to underscores", value: boolWord(settings.NamingRules.ConvertSpacesUnderscores)},
		{key: "Offer to open folder", value: boolWord(settings.ShowOpenLocation)},
		{key: "Confirm saved settings", value: boolWord(settings.ShowSaveSuccess)},
		{key: "Always back up", value: boolWord(settings.BackupOptions.AlwaysBackup)},
		{key: "Marker in Scripts", value: boolWord(settings.InitPyInScripts)},
	}
	body := renderKeyValueLines(pairs) + "\n\n" + cliMuted.Render("File: "+deps.Store.Path())
	fmt.Fprint(cmd.OutOrStdout(), renderCard("Settings", body))
	return nil
}

func runSettingsEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if deps.Headless.IsHeadless() {
		return errors.New("settings edit needs an interactive terminal")
	}

	settings, err := loadSettingsWithNotice(cmd)
	if err != nil {
		return err
	}

	edited, err := wizard.RunSettings(ctx, settings)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Fprintln(out, "Edit cancelled.")
			return nil
		}
		return err
	}

	if err := deps.Store.Save(edited); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if edited.ShowSaveSuccess {
		fmt.Fprint(out, renderSuccessCard("Settings saved", cliMuted.Render("File: "+deps.Store.Path())))
	}
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	defaults := config.NewDefaultSettings()
	if err := deps.Store.Save(defaults); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}

	if defaults.ShowSaveSuccess {
		details := []string{cliMuted.Render("File: " + deps.Store.Path())}
		backupPath := deps.Store.Path() + defs.SettingsBackupExt
		if _, err := os.Stat(backupPath); err == nil {
			details = append(details, cliMuted.Render("Previous file kept as "+backupPath))
		}
		fmt.Fprint(cmd.OutOrStdout(), renderSuccessCard("Settings reset", details...))
	}
	return nil
}

// loadSettingsWithNotice loads the settings, downgrading a corrupt file
// to a warning line plus defaults.
func loadSettingsWithNotice(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := deps.Store.Load()
	if err != nil {
		if !errors.Is(err, config.ErrCorrupt) {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), symWarning()+" "+cliWarn.Render("settings file could not be parsed, continuing with defaults"))
	}
	return settings, nil
}

func boolWord(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

func valueOrUnset(v string) string {
	if strings.TrimSpace(v) == "" {
		return cliMuted.Render("(not set)")
	}
	return v
}

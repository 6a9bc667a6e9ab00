package config

import (
	"os"
	"path/filepath"
)

// Default value constants for the settings schema.
const (
	// DefaultTempModTimer is the reserved timer flag value. The flag is
	// persisted and editable but nothing reads it yet.
	DefaultTempModTimer = "Disabled"

	DefaultShowOpenLocation = true
	DefaultShowSaveSuccess  = true
	DefaultAlwaysBackup     = true
	DefaultInitPyInScripts  = true
)

// DefaultModsFolder returns the conventional game mods directory under
// the user home. Returns an empty string when the home directory cannot
// be resolved; generation then fails until the folder is configured.
func DefaultModsFolder() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Documents", "Electronic Arts", "The Sims 4", "Mods")
}

// NewDefaultSettings returns a Settings with all fields set to compiled
// defaults. Every key of the persisted schema is present.
func NewDefaultSettings() *Settings {
	return &Settings{
		MainModsFolder:       DefaultModsFolder(),
		GeneratedModsEnabled: false,
		TempModTimer:         DefaultTempModTimer,
		NamingRules: NamingRules{
			NoSpacesFolders:          false,
			NoSpacesFiles:            false,
			ConvertSpacesUnderscores: false,
		},
		ShowOpenLocation: DefaultShowOpenLocation,
		ShowSaveSuccess:  DefaultShowSaveSuccess,
		BackupOptions: BackupOptions{
			AlwaysBackup: DefaultAlwaysBackup,
		},
		InitPyInScripts: DefaultInitPyInScripts,
	}
}

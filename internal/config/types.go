package config

// Settings is the persisted user configuration. JSON field names match
// the settings.json format written by earlier releases, so files from
// those versions load unchanged.
type Settings struct {
	MainModsFolder       string        `json:"main_mods_folder"`
	GeneratedModsEnabled bool          `json:"generated_mods_enabled"`
	TempModTimer         string        `json:"temp_mod_timer"`
	NamingRules          NamingRules   `json:"naming_rules"`
	ShowOpenLocation     bool          `json:"show_open_location_prompt"`
	ShowSaveSuccess      bool          `json:"show_save_success"`
	BackupOptions        BackupOptions `json:"backup_options"`
	InitPyInScripts      bool          `json:"init_py_in_scripts"`
}

// NamingRules holds the three name-transform toggles. The strip rules
// run before the underscore conversion, so enabling both leaves nothing
// for the conversion to do.
type NamingRules struct {
	NoSpacesFolders          bool `json:"no_spaces_folders"`
	NoSpacesFiles            bool `json:"no_spaces_files"`
	ConvertSpacesUnderscores bool `json:"convert_spaces_underscores"`
}

// BackupOptions holds the backup-related toggles.
type BackupOptions struct {
	AlwaysBackup bool `json:"always_backup"`
}

// Clone returns an independent copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

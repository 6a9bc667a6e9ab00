package defs

import "io/fs"

// Common file names used across the project.
const (
	// SettingsJSON is the persisted user settings file.
	SettingsJSON = "settings.json"

	// SettingsBackupExt is appended to the settings path for the
	// one-generation rotating backup written before each save.
	SettingsBackupExt = ".bak"

	// PresetsYAML is the optional selection-preset catalog file.
	PresetsYAML = "presets.yaml"

	// ModInfoPy is the descriptor file written into every generated mod.
	ModInfoPy = "modinfo.py"

	// InitPy is the package-marker file the game's script loader checks for.
	InitPy = "__init__.py"
)

// Generated mod layout names.
const (
	// ScriptsDir holds script files inside a mod folder.
	ScriptsDir = "Scripts"

	// TuningDir holds tuning XML files inside a mod folder.
	TuningDir = "Tuning"

	// BackupDirSuffix is appended to the mod folder name to form the
	// sibling flat-backup directory.
	BackupDirSuffix = "_Backup"

	// ScriptExt is the extension for generated script placeholders.
	ScriptExt = ".py"

	// TuningExt is the extension for generated tuning placeholders.
	TuningExt = ".xml"

	// PackageExt is the extension for generated package placeholders.
	PackageExt = ".package"
)

// Filesystem permissions for generated entries.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

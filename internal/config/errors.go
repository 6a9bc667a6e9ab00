// Package config provides the persisted user settings for modforge.
// It loads the settings JSON file, merges it one level deep against
// compiled defaults, and saves it back with a rotating .bak copy.
package config

import "errors"

// Sentinel errors for settings operations.
var (
	// ErrCorrupt indicates the persisted settings file could not be read
	// or parsed. Load recovers by returning defaults alongside this
	// error; callers surface it as a reset notice.
	ErrCorrupt = errors.New("config: settings file is corrupted")

	// ErrPersist indicates the settings file could not be written. The
	// in-memory settings stay authoritative for the running process.
	ErrPersist = errors.New("config: settings write failed")
)

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/modforge/modforge/internal/defs"
)

// Store manages one settings file. It is an explicit object bound to a
// path; nothing in this package holds process-wide settings state.
type Store struct {
	mu       sync.RWMutex
	path     string
	logger   *slog.Logger
	settings *Settings
	extra    map[string]any
}

// NewStore creates a Store for the settings file at path. An empty path
// selects the default settings.json in the working directory. A nil
// logger discards log output.
func NewStore(path string, logger *slog.Logger) *Store {
	if path == "" {
		path = defs.SettingsJSON
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{path: path, logger: logger}
}

// Path returns the settings file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file and merges it one level deep over the
// compiled defaults. A missing file yields plain defaults. A file that
// cannot be read, parsed, or decoded also yields defaults, together
// with an error wrapping ErrCorrupt; the returned Settings is usable
// either way.
func (s *Store) Load() (*Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, found, err := readSettingsFile(s.path)
	if err != nil {
		s.logger.Warn("settings file unusable, falling back to defaults", "path", s.path, "error", err)
		return s.resetLocked(), err
	}
	if !found {
		s.logger.Info("no settings file found, using defaults", "path", s.path)
		return s.resetLocked(), nil
	}

	merged := mergeOverDefaults(raw)
	settings, err := decodeSettings(merged)
	if err != nil {
		s.logger.Warn("settings file unusable, falling back to defaults", "path", s.path, "error", err)
		return s.resetLocked(), err
	}

	s.settings = settings
	s.extra = unknownKeys(raw)
	s.logger.Debug("settings loaded", "path", s.path)
	return settings.Clone(), nil
}

// Current returns a copy of the last loaded or saved settings, or
// defaults when the store has not loaded yet.
func (s *Store) Current() *Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.settings == nil {
		return NewDefaultSettings()
	}
	return s.settings.Clone()
}

// Save persists the given settings. The existing file is first copied
// to its .bak sibling (best-effort; a failed copy is logged and does
// not block the save), then the new content is written atomically.
// Unknown top-level keys seen during Load are written back unchanged.
// A failed write returns an error wrapping ErrPersist; the in-memory
// settings keep their pre-save value in that case.
func (s *Store) Save(settings *Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		backupPath := s.path + defs.SettingsBackupExt
		if err := copyFile(s.path, backupPath); err != nil {
			s.logger.Warn("settings backup copy failed", "path", backupPath, "error", err)
		} else {
			s.logger.Debug("settings backup written", "path", backupPath)
		}
	}

	data, err := s.encodeLocked(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w: %w", ErrPersist, err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("save %s: %w: %w", filepath.Base(s.path), ErrPersist, err)
	}

	s.settings = settings.Clone()
	s.logger.Info("settings saved", "path", s.path)
	return nil
}

// resetLocked replaces the in-memory state with defaults and returns a
// copy. Caller must hold the lock.
func (s *Store) resetLocked() *Settings {
	s.settings = NewDefaultSettings()
	s.extra = nil
	return s.settings.Clone()
}

// encodeLocked marshals settings plus any preserved unknown keys in the
// persisted file format. Caller must hold the lock.
func (s *Store) encodeLocked(settings *Settings) ([]byte, error) {
	out, err := settingsMap(settings)
	if err != nil {
		return nil, err
	}
	for key, value := range s.extra {
		out[key] = value
	}
	return json.MarshalIndent(out, "", "    ")
}

// copyFile duplicates src to dst, overwriting dst if present.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}

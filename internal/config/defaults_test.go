package config

import (
	"strings"
	"testing"
)

func TestNewDefaultSettings(t *testing.T) {
	t.Parallel()

	s := NewDefaultSettings()

	if s.GeneratedModsEnabled {
		t.Error("GeneratedModsEnabled should default to false")
	}
	if s.TempModTimer != DefaultTempModTimer {
		t.Errorf("TempModTimer: got %q, want %q", s.TempModTimer, DefaultTempModTimer)
	}
	if s.NamingRules.NoSpacesFolders || s.NamingRules.NoSpacesFiles || s.NamingRules.ConvertSpacesUnderscores {
		t.Errorf("naming rules should all default to off, got %+v", s.NamingRules)
	}
	if !s.ShowOpenLocation {
		t.Error("ShowOpenLocation should default to true")
	}
	if !s.ShowSaveSuccess {
		t.Error("ShowSaveSuccess should default to true")
	}
	if !s.BackupOptions.AlwaysBackup {
		t.Error("BackupOptions.AlwaysBackup should default to true")
	}
	if !s.InitPyInScripts {
		t.Error("InitPyInScripts should default to true")
	}
}

func TestDefaultModsFolder(t *testing.T) {
	t.Parallel()

	folder := DefaultModsFolder()
	if folder == "" {
		t.Skip("no resolvable home directory in this environment")
	}
	if !strings.HasSuffix(folder, "Mods") {
		t.Errorf("DefaultModsFolder() = %q, want a path ending in Mods", folder)
	}
}

func TestSettingsClone(t *testing.T) {
	t.Parallel()

	s := NewDefaultSettings()
	c := s.Clone()
	c.NamingRules.NoSpacesFolders = true
	c.MainModsFolder = "/elsewhere"

	if s.NamingRules.NoSpacesFolders {
		t.Error("mutating the clone changed the original naming rules")
	}
	if s.MainModsFolder == "/elsewhere" {
		t.Error("mutating the clone changed the original mods folder")
	}
}

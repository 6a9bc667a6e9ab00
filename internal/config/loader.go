package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// readSettingsFile reads and parses the settings file at path into a raw
// top-level map. Returns (nil, false, nil) when the file does not exist,
// and an error wrapping ErrCorrupt when it cannot be read or parsed.
func readSettingsFile(path string) (map[string]any, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, true, fmt.Errorf("read %s: %w: %w", filepath.Base(path), ErrCorrupt, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, true, fmt.Errorf("parse %s: %w: %w", filepath.Base(path), ErrCorrupt, err)
	}
	return raw, true, nil
}

// defaultMap returns the default settings as a raw top-level map, the
// shape merges operate on.
func defaultMap() map[string]any {
	m, err := settingsMap(NewDefaultSettings())
	if err != nil {
		// Defaults always marshal; a failure here is a programming error.
		panic(fmt.Sprintf("config: default settings do not marshal: %v", err))
	}
	return m
}

// settingsMap converts a Settings value to its raw map form via a JSON
// round trip.
func settingsMap(s *Settings) (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mergeOverDefaults merges loaded values over a fresh default map, one
// level deep: when both sides of a top-level key are maps the nested
// keys are merged individually, otherwise the loaded value replaces the
// default wholesale. Top-level keys outside the default schema are kept.
func mergeOverDefaults(loaded map[string]any) map[string]any {
	merged := defaultMap()
	for key, value := range loaded {
		if base, ok := merged[key].(map[string]any); ok {
			if nested, ok := value.(map[string]any); ok {
				maps.Copy(base, nested)
				continue
			}
		}
		merged[key] = value
	}
	return merged
}

// decodeSettings converts a merged raw map into a typed Settings.
// Type mismatches between the file and the schema surface as ErrCorrupt.
func decodeSettings(merged map[string]any) (*Settings, error) {
	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode merged settings: %w: %w", ErrCorrupt, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode merged settings: %w: %w", ErrCorrupt, err)
	}
	return &s, nil
}

// unknownKeys returns the top-level keys of raw that are not part of the
// default schema, preserved so a later save does not drop them.
func unknownKeys(raw map[string]any) map[string]any {
	known := defaultMap()
	var extra map[string]any
	for key, value := range raw {
		if _, ok := known[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = value
	}
	return extra
}

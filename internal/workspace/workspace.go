// Package workspace manages the per-user directory tree holding the
// analysis cache, settings, and emitted reports.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "Draftlens"

// Settings carries the host-side analysis configuration. The core engine
// reads none of this; it only shapes how the CLI drives the engine.
type Settings struct {
	Workers      int `json:"workers"`
	SegmentWords int `json:"segment_words"`
	OverlapWords int `json:"overlap_words"`
}

func DefaultSettings() Settings {
	return Settings{
		Workers:      0, // one per CPU
		SegmentWords: 2000,
		OverlapWords: 200,
	}
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "cache"),
		filepath.Join(base, "reports"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		raw, marshalErr := json.MarshalIndent(DefaultSettings(), "", "  ")
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func SettingsPath(base string) string {
	return filepath.Join(base, "configs", "settings.json")
}

// CacheDBPath is where the analysis cache database lives.
func CacheDBPath(base string) string {
	return filepath.Join(base, "cache", "analysis.db")
}

// LoadSettings reads settings.json, falling back to defaults for a
// missing file or any field left at zero.
func LoadSettings(base string) (Settings, error) {
	raw, err := os.ReadFile(SettingsPath(base))
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if s.SegmentWords <= 0 {
		s.SegmentWords = DefaultSettings().SegmentWords
	}
	if s.OverlapWords < 0 {
		s.OverlapWords = 0
	}
	return s, nil
}

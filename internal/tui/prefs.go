package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Prefs holds playground settings that persist across sessions.
type Prefs struct {
	// Rails is the rail count the playground opens with.
	Rails int `json:"rails"`
	// Labels numbers each rail in the grid view.
	Labels bool `json:"labels"`
}

// DefaultPrefs returns the default preferences.
func DefaultPrefs() Prefs {
	return Prefs{Rails: 3}
}

// prefsPath returns the path to the playground preferences file.
func prefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".railfence", "play_prefs.json"), nil
}

// LoadPrefs loads preferences from disk, returning defaults if not found.
func LoadPrefs() Prefs {
	prefs := DefaultPrefs()

	path, err := prefsPath()
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}

	//nolint:errcheck // fall back to defaults
	_ = json.Unmarshal(data, &prefs)
	prefs.Rails = clampRails(prefs.Rails)
	return prefs
}

// SavePrefs persists preferences to disk.
func SavePrefs(prefs Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

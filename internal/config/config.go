// Package config loads, saves and watches the persisted settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the settings file location
	EnvConfigPath = "DESKCYCLE_CONFIG"

	appDir   = "deskcycle"
	fileName = "config.yaml"
)

// Settings holds everything the user can change between runs
type Settings struct {
	// Wallpapers is applied in order; desktop i gets Wallpapers[i % len].
	Wallpapers []string `yaml:"wallpapers"`

	EnableHotkeys bool `yaml:"enable_hotkeys"`

	// AltModifier swaps the base hotkey modifier from Ctrl+Alt to Shift+Alt
	AltModifier bool `yaml:"alt_modifier"`

	RestoreWallpaperOnExit bool `yaml:"restore_wallpaper_on_exit"`
}

// Default returns the settings used when no file exists yet
func Default() Settings {
	return Settings{
		Wallpapers:    []string{},
		EnableHotkeys: true,
	}
}

// Clone returns a deep copy so callers can mutate the wallpaper list freely
func (s Settings) Clone() Settings {
	c := s
	c.Wallpapers = append([]string(nil), s.Wallpapers...)
	return c
}

// DefaultPath returns the settings file path.
// It checks DESKCYCLE_CONFIG first, then %APPDATA%\deskcycle\config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}

	appData := os.Getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}

	return filepath.Join(appData, appDir, fileName)
}

// Load reads settings from path. A missing file yields Default().
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if s.Wallpapers == nil {
		s.Wallpapers = []string{}
	}

	return s, nil
}

// Save writes settings to path atomically (temp file + rename) so a running
// instance watching the file never reads a half-written document.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp settings file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write settings: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write settings: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace settings %s: %w", path, err)
	}

	return nil
}

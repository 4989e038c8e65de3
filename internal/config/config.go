package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("config not found")

// FileConfig is the on-disk YAML configuration shape for railfence.
type FileConfig struct {
	Rails           *int    `yaml:"rails"`
	Threads         *int    `yaml:"threads"`
	Include         *string `yaml:"include"`
	Exclude         *string `yaml:"exclude"`
	MaxBytes        *int64  `yaml:"max_bytes"`
	OutExt          *string `yaml:"out_ext"`
	NoColor         *bool   `yaml:"no_color"`
	DefaultExcludes *bool   `yaml:"default_excludes"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory.
// It supports .railfence.yml/.yaml and railfence.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".railfence.yml", ".railfence.yaml", "railfence.yml", "railfence.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("no local config in %s: %w", dir, ErrNotFound)
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, fmt.Errorf("no config dir: %w", ErrNotFound)
	}
	p := filepath.Join(base, "railfence", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("no global config: %w", ErrNotFound)
}

// Load returns the global and local configs for dir. Missing files yield
// zero values; a file that exists but does not parse is an error.
func Load(dir string) (global, local FileConfig, err error) {
	global, err = LoadGlobal()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return FileConfig{}, FileConfig{}, fmt.Errorf("global config: %w", err)
	}
	local, err = LoadLocal(dir)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return FileConfig{}, FileConfig{}, fmt.Errorf("local config: %w", err)
	}
	return global, local, nil
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed default_config.yaml
var defaultConfig string

// DefaultConfigYAML returns the config.yaml written on first run
func DefaultConfigYAML() string {
	return defaultConfig
}

// EnsureDefaultConfig creates the user directories and writes a default
// config.yaml unless one already exists. Returns true when a file was written.
func EnsureDefaultConfig() (bool, error) {
	if err := EnsureDirs(); err != nil {
		return false, fmt.Errorf("ensure directories: %w", err)
	}

	configPath := GetConfigFile()
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config.yaml: %w", err)
	}

	//nolint:gosec // G306: 0644 is appropriate for config file
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return false, fmt.Errorf("write default config.yaml: %w", err)
	}
	return true, nil
}

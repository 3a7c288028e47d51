package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/mycounter/config"
)

// LoadConfig loads the application configuration.
// Returns an error if configuration loading fails.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// InstallDefaultConfig writes the commented default config.yaml on first run.
// A failure is logged, never fatal: defaults are already in effect.
func InstallDefaultConfig() {
	written, err := config.EnsureDefaultConfig()
	if err != nil {
		slog.Warn("failed to install default config", "error", err)
		return
	}
	if written {
		slog.Info("installed default config", "file", config.GetConfigFile())
	}
}

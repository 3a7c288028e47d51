package config

// Viper configuration loader: reads config.yaml from the user config dir or the working directory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RestoreMode controls whether the navigation stack survives a restart
type RestoreMode string

const (
	RestoreNever  RestoreMode = "never"
	RestoreAsk    RestoreMode = "ask"
	RestoreAlways RestoreMode = "always"
)

// ErrInvalidRestoreMode is returned for navigation.restore values other than never, ask or always
var ErrInvalidRestoreMode = errors.New("invalid restore mode")

// ParseRestoreMode validates a navigation.restore value
func ParseRestoreMode(s string) (RestoreMode, error) {
	switch m := RestoreMode(strings.ToLower(strings.TrimSpace(s))); m {
	case RestoreNever, RestoreAsk, RestoreAlways:
		return m, nil
	case "":
		return RestoreNever, nil
	default:
		return RestoreNever, fmt.Errorf("%w: %q", ErrInvalidRestoreMode, s)
	}
}

// Config holds all application configuration loaded from config.yaml
type Config struct {
	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
		File  string `mapstructure:"file"`  // empty means <cache>/mycounter.log
	} `mapstructure:"logging"`

	// UI configuration
	UI struct {
		Mouse bool   `mapstructure:"mouse"`
		Theme string `mapstructure:"theme"` // "dark", "light", "auto"
	} `mapstructure:"ui"`

	// Navigation configuration
	Navigation struct {
		Restore string `mapstructure:"restore"` // "never", "ask", "always"
	} `mapstructure:"navigation"`
}

var appConfig *Config

// LoadConfig loads configuration from config.yaml, environment and command line flags.
// Priority order (first found wins): user config → current directory (dev).
// If config.yaml doesn't exist, it uses default values.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*Config, error) {
	// Reset viper to clear any previous configuration
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(GetConfigDir()) // User config (highest priority)
	viper.AddConfigPath(".")            // Current directory (development)

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("MYCOUNTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := bindFlags(args); err != nil {
		slog.Warn("failed to bind command line flags", "error", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	if _, err := ParseRestoreMode(cfg.Navigation.Restore); err != nil {
		return nil, err
	}

	appConfig = cfg
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("logging.level", "error")
	viper.SetDefault("logging.file", "")

	viper.SetDefault("ui.mouse", true)
	viper.SetDefault("ui.theme", "auto")

	viper.SetDefault("navigation.restore", string(RestoreNever))
}

// bindFlags binds supported command line flags to viper so they can override config values.
func bindFlags(args []string) error {
	flagSet := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	flagSet.ParseErrorsWhitelist.UnknownFlags = true
	flagSet.SetOutput(io.Discard)

	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSet.String("restore", "", "Restore the previous navigation stack (never, ask, always)")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := viper.BindPFlag("logging.level", flagSet.Lookup("log-level")); err != nil {
		return err
	}
	return viper.BindPFlag("navigation.restore", flagSet.Lookup("restore"))
}

// GetConfig returns the loaded configuration
// If config hasn't been loaded yet, it loads it first
func GetConfig() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig()
		if err != nil {
			slog.Warn("failed to load config, using defaults", "error", err)
			viper.Reset()
			setDefaults()
			cfg = &Config{}
			_ = viper.Unmarshal(cfg)
		}
		appConfig = cfg
	}
	return appConfig
}

// GetString is a convenience method to get a string value from config
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool is a convenience method to get a boolean value from config
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetRestoreMode returns the validated navigation.restore setting
func GetRestoreMode() RestoreMode {
	mode, err := ParseRestoreMode(viper.GetString("navigation.restore"))
	if err != nil {
		slog.Warn("ignoring navigation.restore", "error", err)
	}
	return mode
}

// GetLogFile returns the configured log file, falling back to the cache dir
func GetLogFile() string {
	if f := viper.GetString("logging.file"); f != "" {
		return f
	}
	return GetDefaultLogFile()
}

// GetMouseEnabled reports whether mouse input is enabled
func GetMouseEnabled() bool {
	return viper.GetBool("ui.mouse")
}

// GetTheme returns the appearance theme setting
func GetTheme() string {
	theme := viper.GetString("ui.theme")
	if theme == "" {
		return "auto"
	}
	return theme
}

// GetEffectiveTheme resolves "auto" to actual theme based on terminal detection
func GetEffectiveTheme() string {
	theme := GetTheme()
	if theme != "auto" {
		return theme
	}
	// Detect via COLORFGBG env var (format: "fg;bg")
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			// 0-7 = dark colors, 8+ = light colors
			if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil && bg >= 8 {
				return "light"
			}
		}
	}
	return "dark"
}

// GetContentTextColor returns the default text color for the current theme
func GetContentTextColor() tcell.Color {
	if GetEffectiveTheme() == "dark" {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}

package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLogLevel maps a config level name to a slog level.
// Unknown names fall back to error, the quietest level the app logs at.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// InitLogging installs the default slog logger. A full-screen UI owns the
// terminal, so records go to a rotating file instead of stderr.
// The returned closer flushes and closes the file.
func InitLogging(cfg *Config) (slog.Level, io.Closer) {
	level := ParseLogLevel(cfg.Logging.Level)

	path := cfg.Logging.File
	if path == "" {
		path = GetDefaultLogFile()
	}
	//nolint:gosec // G301: 0755 is appropriate for log directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return level, io.NopCloser(nil)
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("logging initialized", "level", level.String(), "file", path)
	return level, writer
}

// Package config loads user preferences from a TOML file. Command-line
// flags override file values, which override the built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the TOML config file, looked up under the base directory.
const FileName = "config.toml"

// Config represents user-facing configuration.
type Config struct {
	// SessionsDir is where session files are stored.
	SessionsDir string `toml:"sessions_dir"`

	// BackupsDir is where replaced session files are kept.
	BackupsDir string `toml:"backups_dir"`

	// RestoringInterval is the delay in seconds between application
	// launches during restore.
	RestoringInterval int `toml:"restoring_interval"`

	// Exclude lists filter tokens applied to every operation, merged
	// with any -x flags given on the command line.
	Exclude []string `toml:"exclude"`

	// Logging configures the rotating debug log.
	Logging LogSettings `toml:"logging"`
}

// LogSettings configures the file logger.
type LogSettings struct {
	// Level is "debug", "info", "warn", or "error" (default: "info").
	Level string `toml:"level"`

	// Dir is the log directory. Empty disables file logging.
	Dir string `toml:"dir"`

	// MaxSizeMB, MaxBackups, MaxAgeDays control rotation.
	MaxSizeMB  int `toml:"max_size_mb"`
	MaxBackups int `toml:"max_backups"`
	MaxAgeDays int `toml:"max_age_days"`
}

// BaseDir returns the xsm config directory (~/.config/xsm).
func BaseDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "xsm")
	}
	return filepath.Join(os.TempDir(), "xsm")
}

// Default returns the built-in configuration.
func Default() Config {
	base := BaseDir()
	return Config{
		SessionsDir:       filepath.Join(base, "sessions"),
		BackupsDir:        filepath.Join(base, "backups"),
		RestoringInterval: 2,
		Logging: LogSettings{
			Level: "info",
			Dir:   filepath.Join(base, "logs"),
		},
	}
}

// Load reads the config file at path, falling back to defaults for any
// unset key. A missing file is not an error: defaults apply. An empty
// path means <BaseDir>/config.toml.
func Load(path string) (Config, error) {
	if path == "" {
		path = filepath.Join(BaseDir(), FileName)
	}
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.SessionsDir = ExpandTilde(cfg.SessionsDir)
	cfg.BackupsDir = ExpandTilde(cfg.BackupsDir)
	cfg.Logging.Dir = ExpandTilde(cfg.Logging.Dir)

	if cfg.RestoringInterval < 0 {
		return cfg, fmt.Errorf("restoring_interval must not be negative")
	}
	return cfg, nil
}

// ExpandTilde expands a leading ~ to the user home directory, refusing
// expansions that escape it.
func ExpandTilde(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	cleaned := filepath.Clean(filepath.Join(home, path[2:]))
	if !strings.HasPrefix(cleaned, home) {
		return path
	}
	return cleaned
}

// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DataDir returns the application data directory. The GAMICIPLINE_DATA
// environment variable overrides the XDG default.
func DataDir() string {
	if v := os.Getenv("GAMICIPLINE_DATA"); v != "" {
		return v
	}
	return filepath.Join(XDGDataHome(), "gamicipline")
}

// DefaultStatePath returns the default JSON snapshot path.
func DefaultStatePath() string {
	return filepath.Join(DataDir(), "state.json")
}

// DefaultDBPath returns the default path for the SQLite snapshot history.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "history.db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "gamicipline", "config.toml")
}

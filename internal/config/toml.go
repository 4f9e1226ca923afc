// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Routine RoutineConfig `toml:"routine"`
}

// StorageConfig maps persistence settings.
type StorageConfig struct {
	// Backend selects how the snapshot is kept: "file" (default) or
	// "sqlite" for the history-keeping store.
	Backend   *string `toml:"backend"`
	StatePath *string `toml:"state-path"`
	DBPath    *string `toml:"db-path"`
	// KeepSnapshots bounds the sqlite history; 0 keeps everything.
	KeepSnapshots *int `toml:"keep-snapshots"`
}

// RoutineConfig maps daily-routine threshold overrides.
type RoutineConfig struct {
	MonthlyIncomeTarget  *float64 `toml:"monthly-income-target"`
	ZikrDailyTarget      *int     `toml:"zikr-daily-target"`
	MinAmcaPerDay        *int     `toml:"min-amca-per-day"`
	WakePenaltyPerMinute *float64 `toml:"wake-penalty-per-minute"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ResolvedStorage is the storage configuration after defaults are
// applied.
type ResolvedStorage struct {
	Backend       string
	StatePath     string
	DBPath        string
	KeepSnapshots int
}

// ResolveStorage folds the file config over the built-in defaults.
func ResolveStorage(cfg FileConfig) ResolvedStorage {
	out := ResolvedStorage{
		Backend:   "file",
		StatePath: DefaultStatePath(),
		DBPath:    DefaultDBPath(),
	}
	if cfg.Storage.Backend != nil && *cfg.Storage.Backend != "" {
		out.Backend = *cfg.Storage.Backend
	}
	if cfg.Storage.StatePath != nil && *cfg.Storage.StatePath != "" {
		out.StatePath = *cfg.Storage.StatePath
	}
	if cfg.Storage.DBPath != nil && *cfg.Storage.DBPath != "" {
		out.DBPath = *cfg.Storage.DBPath
	}
	if cfg.Storage.KeepSnapshots != nil && *cfg.Storage.KeepSnapshots > 0 {
		out.KeepSnapshots = *cfg.Storage.KeepSnapshots
	}
	return out
}

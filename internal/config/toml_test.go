package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.Backend != nil {
		t.Fatalf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("empty path should be an error")
	}
}

func TestLoadConfigParsesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[storage]
backend = "sqlite"
db-path = "/tmp/gami/history.db"
keep-snapshots = 30

[routine]
min-amca-per-day = 2
wake-penalty-per-minute = 2.5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.Backend == nil || *cfg.Storage.Backend != "sqlite" {
		t.Fatalf("backend = %v", cfg.Storage.Backend)
	}
	if cfg.Routine.MinAmcaPerDay == nil || *cfg.Routine.MinAmcaPerDay != 2 {
		t.Fatalf("min amca = %v", cfg.Routine.MinAmcaPerDay)
	}
	if cfg.Routine.WakePenaltyPerMinute == nil || *cfg.Routine.WakePenaltyPerMinute != 2.5 {
		t.Fatalf("wake penalty = %v", cfg.Routine.WakePenaltyPerMinute)
	}
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage\nbackend ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed TOML should be an error")
	}
}

func TestResolveStorageDefaults(t *testing.T) {
	got := ResolveStorage(FileConfig{})
	if got.Backend != "file" {
		t.Fatalf("backend = %q, want file", got.Backend)
	}
	if got.StatePath == "" || got.DBPath == "" {
		t.Fatalf("paths not defaulted: %+v", got)
	}
	if got.KeepSnapshots != 0 {
		t.Fatalf("keep = %d, want unbounded", got.KeepSnapshots)
	}
}

func TestResolveStorageOverrides(t *testing.T) {
	backend := "sqlite"
	db := "/tmp/x.db"
	keep := 7
	got := ResolveStorage(FileConfig{Storage: StorageConfig{
		Backend: &backend, DBPath: &db, KeepSnapshots: &keep,
	}})
	if got.Backend != "sqlite" || got.DBPath != "/tmp/x.db" || got.KeepSnapshots != 7 {
		t.Fatalf("resolved = %+v", got)
	}
}

func TestDataDirEnvOverride(t *testing.T) {
	t.Setenv("GAMICIPLINE_DATA", "/tmp/gami-data")
	if got := DataDir(); got != "/tmp/gami-data" {
		t.Fatalf("DataDir = %q", got)
	}
	if got := DefaultStatePath(); got != filepath.Join("/tmp/gami-data", "state.json") {
		t.Fatalf("DefaultStatePath = %q", got)
	}
}

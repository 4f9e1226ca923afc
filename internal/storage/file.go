package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// Store is the persistence boundary the shell talks to. Both backends
// persist the whole aggregate per call.
type Store interface {
	Load(ctx context.Context) (*state.AppState, error)
	Save(ctx context.Context, st *state.AppState) error
	Close() error
}

// FileStore keeps the snapshot in a single JSON file, replaced
// atomically on every save.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot. A missing file yields a fresh default
// aggregate. A corrupt file also yields the default, together with the
// decode error so the caller can report it; the process never dies on
// bad state data.
func (f *FileStore) Load(ctx context.Context) (*state.AppState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state.NewAppState(), nil
		}
		return state.NewAppState(), fmt.Errorf("read state file: %w", err)
	}
	st, err := DecodeSnapshot(data)
	if err != nil {
		return state.NewAppState(), err
	}
	return st, nil
}

// Save writes the snapshot through a temp file and a rename, so a
// crash mid-write never leaves a truncated snapshot behind.
func (f *FileStore) Save(ctx context.Context, st *state.AppState) error {
	data, err := EncodeSnapshot(st)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

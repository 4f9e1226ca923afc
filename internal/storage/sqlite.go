package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// HistoryStore keeps every saved snapshot as a row in SQLite, newest
// wins on load. The history doubles as a backup trail: older rows can
// be listed, restored, and pruned.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistory opens (creating if missing) the snapshot database.
func OpenHistory(ctx context.Context, path string) (*HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	h := &HistoryStore{db: db}
	if err := h.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return h, nil
}

func (h *HistoryStore) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			saved_at DATETIME NOT NULL,
			payload BLOB NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);`,
	}
	for _, stmt := range stmts {
		if _, err := h.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate snapshots: %w", err)
		}
	}
	return nil
}

func (h *HistoryStore) Close() error { return h.db.Close() }

// Load returns the newest snapshot, or a fresh default aggregate when
// the history is empty. A corrupt payload also degrades to the default
// with the decode error reported to the caller.
func (h *HistoryStore) Load(ctx context.Context) (*state.AppState, error) {
	row := h.db.QueryRowContext(ctx, `SELECT payload FROM snapshots ORDER BY id DESC LIMIT 1`)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return state.NewAppState(), nil
		}
		return state.NewAppState(), fmt.Errorf("load latest snapshot: %w", err)
	}
	st, err := DecodeSnapshot(payload)
	if err != nil {
		return state.NewAppState(), err
	}
	return st, nil
}

// Save appends the aggregate as a new snapshot row.
func (h *HistoryStore) Save(ctx context.Context, st *state.AppState) error {
	data, err := EncodeSnapshot(st)
	if err != nil {
		return err
	}
	_, err = h.db.ExecContext(ctx,
		`INSERT INTO snapshots (saved_at, payload) VALUES (?, ?)`,
		time.Now().UTC(), data)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// SnapshotInfo describes one history row.
type SnapshotInfo struct {
	ID      int64
	SavedAt time.Time
	Bytes   int
}

// List returns history rows, newest first, capped at limit (0 = all).
func (h *HistoryStore) List(ctx context.Context, limit int) ([]SnapshotInfo, error) {
	q := `SELECT id, saved_at, LENGTH(payload) FROM snapshots ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := h.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.SavedAt, &info.Bytes); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot rows: %w", err)
	}
	return out, nil
}

// LoadVersion restores a specific history row. Unknown ids return nil.
func (h *HistoryStore) LoadVersion(ctx context.Context, id int64) (*state.AppState, error) {
	row := h.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE id = ?`, id)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot %d: %w", id, err)
	}
	return DecodeSnapshot(payload)
}

// Prune deletes all but the newest keep rows and returns how many were
// removed.
func (h *HistoryStore) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}
	res, err := h.db.ExecContext(ctx, `
		DELETE FROM snapshots
		WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune rows affected: %w", err)
	}
	return int(n), nil
}

// Package storage persists the AppState aggregate as a structured
// snapshot: an atomic JSON file by default, or a SQLite-backed history
// of snapshots.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// CurrentSnapshotVersion marks the snapshot document shape written by
// this build. Version 0 documents (no marker) are legacy snapshots and
// go through the full backfill migration.
const CurrentSnapshotVersion = 1

type snapshotDoc struct {
	Version int `json:"snapshot_version"`
	state.AppState
}

// EncodeSnapshot serializes the whole aggregate as the canonical
// snapshot document.
func EncodeSnapshot(st *state.AppState) ([]byte, error) {
	doc := snapshotDoc{Version: CurrentSnapshotVersion, AppState: *st}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot document and upgrades it in one
// migration pass: absent optional fields get their documented defaults
// instead of failing the load.
//
// Defaults are seeded before unmarshalling, so a settings object that
// is present but missing newer keys keeps the documented default for
// each absent key; only keys the document actually carries overwrite.
func DecodeSnapshot(data []byte) (*state.AppState, error) {
	var doc snapshotDoc
	doc.Settings = state.DefaultSettings()
	doc.Profile.Username = "oyuncu"
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	st := doc.AppState
	migrateSnapshot(&st, doc.Version)
	return &st, nil
}

// migrateSnapshot backfills everything an older snapshot may lack.
// Runs once at load time so the rest of the code never checks for
// absent fields.
func migrateSnapshot(st *state.AppState, version int) {
	if st.Stats == nil {
		st.Stats = map[string]*state.Stat{}
	}
	if st.Tasks == nil {
		st.Tasks = map[string]*state.TaskTemplate{}
	}
	if st.Sessions == nil {
		st.Sessions = map[string]*state.TimerSession{}
	}
	if st.BookProjects == nil {
		st.BookProjects = map[string]*state.BookProject{}
	}
	if st.MaterialGoals == nil {
		st.MaterialGoals = map[string]*state.MaterialGoal{}
	}
	if st.DailyLogs == nil {
		st.DailyLogs = map[string]*state.DailyRoutineLog{}
	}

	today := state.DateKey(time.Now())
	for _, t := range st.Tasks {
		if t.CreatedDate == "" {
			t.CreatedDate = today
		}
		if t.EveryNDays != nil && *t.EveryNDays < 1 {
			t.EveryNDays = nil
		}
	}
	for name, s := range st.Stats {
		if s.Name == "" {
			s.Name = name
		}
		if s.TotalSeconds < 0 {
			s.TotalSeconds = 0
		}
	}
	for key, log := range st.DailyLogs {
		if log.Date == "" {
			log.Date = key
		}
	}

	st.TaskOrder = repairOrder(st.TaskOrder, taskIDsByCreation(st))
	st.BookOrder = repairOrder(st.BookOrder, sortedKeys(st.BookProjects))
	st.GoalOrder = repairOrder(st.GoalOrder, sortedKeys(st.MaterialGoals))

	if st.Profile.Username == "" {
		st.Profile.Username = "oyuncu"
	}
	if st.Profile.XP < 0 {
		st.Profile.XP = 0
	}
	// Cached derived fields may be stale in old snapshots.
	engine.RecalcLevel(&st.Profile)

	_ = version // all known shapes funnel through the same backfill
}

// repairOrder keeps a stored order slice when it covers the collection
// exactly, otherwise falls back to a deterministic derived order.
func repairOrder(order []string, fallback []string) []string {
	if len(order) != len(fallback) {
		return fallback
	}
	want := map[string]bool{}
	for _, id := range fallback {
		want[id] = true
	}
	for _, id := range order {
		if !want[id] {
			return fallback
		}
	}
	return order
}

// taskIDsByCreation orders task ids by creation date, then title, then
// id, for legacy snapshots that never stored an order.
func taskIDsByCreation(st *state.AppState) []string {
	ids := make([]string, 0, len(st.Tasks))
	for id := range st.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := st.Tasks[ids[i]], st.Tasks[ids[j]]
		if a.CreatedDate != b.CreatedDate {
			return a.CreatedDate < b.CreatedDate
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
	return ids
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

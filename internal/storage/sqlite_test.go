package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

func newTestHistory(t *testing.T) *HistoryStore {
	t.Helper()
	h, err := OpenHistory(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistoryStoreEmptyYieldsDefaults(t *testing.T) {
	h := newTestHistory(t)

	st, err := h.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Profile.Username != "oyuncu" {
		t.Fatalf("username = %q, want default", st.Profile.Username)
	}
}

func TestHistoryStoreLoadsNewestSnapshot(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	first := state.NewAppState()
	first.Profile.XP = 100
	if err := h.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	second := state.NewAppState()
	second.Profile.XP = 900
	if err := h.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := h.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Profile.XP != 900 {
		t.Fatalf("xp = %d, want newest snapshot", got.Profile.XP)
	}
}

func TestHistoryStoreListAndLoadVersion(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	for _, xp := range []int{10, 20, 30} {
		st := state.NewAppState()
		st.Profile.XP = xp
		if err := h.Save(ctx, st); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	infos, err := h.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("history rows = %d, want 3", len(infos))
	}
	if infos[0].ID <= infos[1].ID || infos[1].ID <= infos[2].ID {
		t.Fatalf("list not newest-first: %+v", infos)
	}
	if infos[0].Bytes == 0 {
		t.Fatal("payload size missing from listing")
	}

	oldest, err := h.LoadVersion(ctx, infos[2].ID)
	if err != nil {
		t.Fatalf("LoadVersion: %v", err)
	}
	if oldest.Profile.XP != 10 {
		t.Fatalf("restored xp = %d, want 10", oldest.Profile.XP)
	}

	missing, err := h.LoadVersion(ctx, infos[0].ID+1000)
	if err != nil {
		t.Fatalf("LoadVersion missing: %v", err)
	}
	if missing != nil {
		t.Fatal("unknown version should return nil")
	}
}

func TestHistoryStoreListLimit(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := h.Save(ctx, state.NewAppState()); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	infos, err := h.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("limited rows = %d, want 2", len(infos))
	}
}

func TestHistoryStorePrune(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		st := state.NewAppState()
		st.Profile.XP = i * 100
		if err := h.Save(ctx, st); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	removed, err := h.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if removed != 4 {
		t.Fatalf("removed = %d, want 4", removed)
	}

	infos, err := h.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("rows after prune = %d, want 2", len(infos))
	}

	got, err := h.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Profile.XP != 500 {
		t.Fatalf("newest survivor xp = %d, want 500", got.Profile.XP)
	}
}

func TestHistoryStorePruneKeepsAtLeastOne(t *testing.T) {
	h := newTestHistory(t)
	ctx := context.Background()

	st := state.NewAppState()
	st.Profile.XP = 42
	if err := h.Save(ctx, st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := h.Prune(ctx, 0); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	got, err := h.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Profile.XP != 42 {
		t.Fatal("prune must never delete the newest snapshot")
	}
}

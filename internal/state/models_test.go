package state

import (
	"testing"
	"time"
)

func TestTasksInOrderFollowsInsertion(t *testing.T) {
	st := NewAppState()
	st.PutTask(&TaskTemplate{ID: "c", Title: "Üçüncü"})
	st.PutTask(&TaskTemplate{ID: "a", Title: "Birinci"})
	st.PutTask(&TaskTemplate{ID: "b", Title: "İkinci"})

	got := st.TasksInOrder()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("order = %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}

	// Re-put must not duplicate the order entry.
	st.PutTask(&TaskTemplate{ID: "a", Title: "Birinci v2"})
	if len(st.TaskOrder) != 3 {
		t.Fatalf("order length after re-put = %d", len(st.TaskOrder))
	}
}

func TestRemoveTaskKeepsHistory(t *testing.T) {
	st := NewAppState()
	st.PutTask(&TaskTemplate{ID: "a", Title: "Görev"})
	st.Completions = append(st.Completions, TaskCompletion{ID: "c1", TaskID: "a", Date: "2024-01-01"})

	if !st.RemoveTask("a") {
		t.Fatal("RemoveTask = false")
	}
	if st.RemoveTask("a") {
		t.Fatal("second RemoveTask should report missing")
	}
	if len(st.TaskOrder) != 0 {
		t.Fatalf("order = %v", st.TaskOrder)
	}
	if len(st.Completions) != 1 {
		t.Fatal("completion history must survive task deletion")
	}
}

func TestActiveBookIsFirstUnfinished(t *testing.T) {
	st := NewAppState()
	if st.ActiveBook() != nil {
		t.Fatal("empty state should have no active book")
	}
	st.PutBook(&BookProject{ID: "b1", Title: "Bitti", IsCompleted: true})
	st.PutBook(&BookProject{ID: "b2", Title: "Sürüyor"})
	st.PutBook(&BookProject{ID: "b3", Title: "Sırada"})

	if got := st.ActiveBook(); got == nil || got.ID != "b2" {
		t.Fatalf("ActiveBook = %+v, want b2", got)
	}
}

func TestEnsureDailyLogCreatesOnce(t *testing.T) {
	st := NewAppState()
	a := st.EnsureDailyLog("2024-05-01")
	a.ZikrCount = 7
	b := st.EnsureDailyLog("2024-05-01")
	if a != b {
		t.Fatal("EnsureDailyLog must return the existing log")
	}
	if b.ZikrCount != 7 || b.Date != "2024-05-01" {
		t.Fatalf("log = %+v", b)
	}
}

func TestBadgeSetIsIdempotent(t *testing.T) {
	var p Profile
	if !p.AddBadge("uyanis") {
		t.Fatal("first add should report true")
	}
	if p.AddBadge("uyanis") {
		t.Fatal("second add should report false")
	}
	if !p.HasBadge("uyanis") || len(p.Badges) != 1 {
		t.Fatalf("badges = %v", p.Badges)
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, 7, 9, 23, 59, 0, 0, time.Local)
	if got := DateKey(d); got != "2024-07-09" {
		t.Fatalf("DateKey = %q", got)
	}
}

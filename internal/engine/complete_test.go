package engine

import (
	"testing"
	"time"
)

func TestIsCompletedOnIdempotent(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{
		Title:         "Kod yaz",
		Recurrence:    RecurrenceDaily,
		TargetMinutes: intPtr(30),
	}, created)

	if svc.IsCompletedOn(task, created) {
		t.Fatalf("completed with no logged time")
	}

	sess := svc.StartTimerAt(task.ID, created.Add(9*time.Hour))
	svc.StopTimerAt(sess.ID, created.Add(9*time.Hour+31*time.Minute))

	if !svc.IsCompletedOn(task, created) {
		t.Fatalf("not completed after crossing target")
	}
	if !svc.IsCompletedOn(task, created) {
		t.Fatalf("completion not stable on re-check")
	}
	if got := len(svc.CompletionsOn(created)); got != 1 {
		t.Fatalf("completion records=%d, want exactly 1", got)
	}
}

func TestIsCompletedOnWithoutTarget(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{Title: "Hedefsiz", Recurrence: RecurrenceDaily}, created)

	sess := svc.StartTimerAt(task.ID, created.Add(time.Hour))
	svc.StopTimerAt(sess.ID, created.Add(5*time.Hour))

	// Time-less tasks complete only via an explicit record.
	if svc.IsCompletedOn(task, created) {
		t.Fatalf("target-less task reported completed from logged time")
	}
	if got := len(svc.CompletionsOn(created)); got != 0 {
		t.Fatalf("completion records=%d, want 0", got)
	}
}

func TestCompletionRecordOutlivesTaskDeletion(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{
		Title:         "Silinecek",
		Recurrence:    RecurrenceDaily,
		TargetMinutes: intPtr(1),
	}, created)

	sess := svc.StartTimerAt(task.ID, created.Add(time.Hour))
	svc.StopTimerAt(sess.ID, created.Add(time.Hour+2*time.Minute))
	if !svc.IsCompletedOn(task, created) {
		t.Fatalf("not completed")
	}

	if !svc.DeleteTask(task.ID) {
		t.Fatalf("delete failed")
	}
	// Orphaned history stays behind.
	if got := len(svc.CompletionsOn(created)); got != 1 {
		t.Fatalf("completions after delete=%d, want 1", got)
	}
	if len(svc.State().Sessions) != 1 {
		t.Fatalf("sessions after delete=%d, want 1", len(svc.State().Sessions))
	}
}

func TestUpdateStreakSuccessViaAmca(t *testing.T) {
	svc := newTestService(t)
	today := day(t, "2024-01-05")

	svc.RecordAmcaAction(10, nil, today.Add(13*time.Hour))
	xpBefore := svc.State().Profile.XP

	svc.UpdateStreak(today)
	p := svc.State().Profile
	if p.StreakDays != 1 {
		t.Fatalf("streak=%d, want 1", p.StreakDays)
	}
	if p.XP != xpBefore+StreakXPBonus {
		t.Fatalf("xp=%d, want %d (flat streak bonus)", p.XP, xpBefore+StreakXPBonus)
	}
}

func TestUpdateStreakSuccessViaEndedSession(t *testing.T) {
	svc := newTestService(t)
	today := day(t, "2024-01-05")
	task := mustCreateTask(t, svc, TaskInput{Title: "Kod yaz", Recurrence: RecurrenceDaily}, today)

	sess := svc.StartTimerAt(task.ID, today.Add(9*time.Hour))
	svc.StopTimerAt(sess.ID, today.Add(10*time.Hour))

	svc.UpdateStreak(today)
	if got := svc.State().Profile.StreakDays; got != 1 {
		t.Fatalf("streak=%d, want 1", got)
	}
}

func TestUpdateStreakFailure(t *testing.T) {
	svc := newTestService(t)
	today := day(t, "2024-01-05")

	// With a freeze: streak preserved, freeze consumed.
	svc.SetStreak(4, 1)
	svc.UpdateStreak(today)
	p := svc.State().Profile
	if p.StreakDays != 4 {
		t.Fatalf("streak=%d, want 4 (freeze should preserve)", p.StreakDays)
	}
	if p.StreakFreezes != 0 {
		t.Fatalf("freezes=%d, want 0", p.StreakFreezes)
	}

	// Without a freeze: streak resets.
	svc.UpdateStreak(today)
	if got := svc.State().Profile.StreakDays; got != 0 {
		t.Fatalf("streak=%d, want 0 after reset", got)
	}
}

package engine

import (
	"testing"
	"time"
)

func TestStartTimerIdempotent(t *testing.T) {
	svc := newTestService(t)
	task := mustCreateTask(t, svc, TaskInput{Title: "Kod yaz", Recurrence: RecurrenceDaily}, day(t, "2024-01-01"))

	start := day(t, "2024-01-01").Add(9 * time.Hour)
	first := svc.StartTimerAt(task.ID, start)
	second := svc.StartTimerAt(task.ID, start.Add(5*time.Minute))

	if first.ID != second.ID {
		t.Fatalf("second start created a new session: %s vs %s", first.ID, second.ID)
	}
	running := 0
	for _, sess := range svc.State().Sessions {
		if sess.TaskID == task.ID && sess.Running() {
			running++
		}
	}
	if running != 1 {
		t.Fatalf("running sessions for task=%d, want 1", running)
	}
}

func TestStopTimerIdempotentAndNotFound(t *testing.T) {
	svc := newTestService(t)
	task := mustCreateTask(t, svc, TaskInput{
		Title:      "Kod yaz",
		Recurrence: RecurrenceDaily,
		XPReward:   50,
	}, day(t, "2024-01-01"))

	if got := svc.StopTimerAt("yok-böyle-bir-oturum", time.Now()); got != nil {
		t.Fatalf("stopping unknown session returned %v, want nil", got)
	}

	start := day(t, "2024-01-01").Add(10 * time.Hour)
	sess := svc.StartTimerAt(task.ID, start)
	svc.StopTimerAt(sess.ID, start.Add(10*time.Minute))

	xpAfterStop := svc.State().Profile.XP
	durAfterStop := sess.DurationSeconds

	again := svc.StopTimerAt(sess.ID, start.Add(3*time.Hour))
	if again.DurationSeconds != durAfterStop {
		t.Fatalf("second stop changed duration: %d -> %d", durAfterStop, again.DurationSeconds)
	}
	if svc.State().Profile.XP != xpAfterStop {
		t.Fatalf("second stop changed xp: %d -> %d", xpAfterStop, svc.State().Profile.XP)
	}
}

func TestStopTimerSideEffectsEndToEnd(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{
		Title:         "Kod yaz",
		Recurrence:    RecurrenceDaily,
		TargetMinutes: intPtr(30),
		XPReward:      50,
		PointReward:   10,
		StatName:      strPtr("yazılım"),
	}, created)

	start := created.Add(9 * time.Hour)
	sess := svc.StartTimerAt(task.ID, start)
	stopped := svc.StopTimerAt(sess.ID, start.Add(1805*time.Second))

	if stopped.DurationSeconds != 1805 {
		t.Fatalf("duration=%d, want 1805", stopped.DurationSeconds)
	}
	if stopped.EndTime == nil {
		t.Fatalf("end time not set")
	}

	st := svc.State()
	if st.Profile.XP != 50 {
		t.Fatalf("profile xp=%d, want 50", st.Profile.XP)
	}
	if st.Profile.Points != 10 {
		t.Fatalf("profile points=%d, want 10", st.Profile.Points)
	}
	if got := st.Stats["yazılım"].TotalSeconds; got != 1805 {
		t.Fatalf("stat seconds=%d, want 1805", got)
	}
	if !svc.IsCompletedOn(task, created) {
		t.Fatalf("task not completed despite crossing target")
	}
	if got := len(svc.CompletionsOn(created)); got != 1 {
		t.Fatalf("completion records=%d, want exactly 1", got)
	}
	if _, ok := st.DailyLogs["2024-01-01"]; !ok {
		t.Fatalf("daily log not ensured for session day")
	}
}

func TestRewardGrantedPerStoppedSession(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{
		Title:         "Kod yaz",
		Recurrence:    RecurrenceDaily,
		TargetMinutes: intPtr(5),
		XPReward:      50,
	}, created)

	at := created.Add(8 * time.Hour)
	for i := 0; i < 3; i++ {
		sess := svc.StartTimerAt(task.ID, at)
		at = at.Add(6 * time.Minute)
		svc.StopTimerAt(sess.ID, at)
		at = at.Add(time.Minute)
	}

	// Effort is rewarded per session even after completion.
	if got := svc.State().Profile.XP; got != 150 {
		t.Fatalf("xp after 3 stops=%d, want 150", got)
	}
	if got := len(svc.CompletionsOn(created)); got != 1 {
		t.Fatalf("completion records=%d, want 1", got)
	}
}

func TestStopTimerMissingStatIsTolerated(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{
		Title:      "Hayalet beceri",
		Recurrence: RecurrenceDaily,
		XPReward:   20,
		StatName:   strPtr("olmayan-beceri"),
	}, created)

	sess := svc.StartTimerAt(task.ID, created.Add(time.Hour))
	svc.StopTimerAt(sess.ID, created.Add(2*time.Hour))

	if got := svc.State().Profile.XP; got != 20 {
		t.Fatalf("xp=%d, want 20 (stat miss must not block rewards)", got)
	}
}

func TestMinutesLoggedOnIncludesLiveSession(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{Title: "Kod yaz", Recurrence: RecurrenceDaily}, created)

	s1 := svc.StartTimerAt(task.ID, created.Add(9*time.Hour))
	svc.StopTimerAt(s1.ID, created.Add(9*time.Hour+10*time.Minute))

	// Second session still running, 7.5 minutes in.
	svc.StartTimerAt(task.ID, created.Add(12*time.Hour))
	now := created.Add(12*time.Hour + 450*time.Second)

	if got := svc.MinutesLoggedOn(task.ID, created, now); got != 17 {
		t.Fatalf("minutes logged=%d, want 17 (10 stored + 7.5 live, floored)", got)
	}

	// Another task's sessions never leak into the sum.
	otherTask := mustCreateTask(t, svc, TaskInput{Title: "Kod oku", Recurrence: RecurrenceDaily}, created)
	other := svc.StartTimerAt(otherTask.ID, created.Add(9*time.Hour))
	svc.StopTimerAt(other.ID, created.Add(10*time.Hour))
	if got := svc.MinutesLoggedOn(task.ID, created, now); got != 17 {
		t.Fatalf("minutes logged after other task's session=%d, want 17", got)
	}
}

func TestAllActiveSessionsSorted(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	a := mustCreateTask(t, svc, TaskInput{Title: "a", Recurrence: RecurrenceDaily}, created)
	b := mustCreateTask(t, svc, TaskInput{Title: "b", Recurrence: RecurrenceDaily}, created)

	svc.StartTimerAt(b.ID, created.Add(11*time.Hour))
	svc.StartTimerAt(a.ID, created.Add(9*time.Hour))

	active := svc.AllActiveSessions()
	if len(active) != 2 {
		t.Fatalf("active sessions=%d, want 2", len(active))
	}
	if active[0].TaskID != a.ID || active[1].TaskID != b.ID {
		t.Fatalf("active sessions not ordered by start time")
	}
}

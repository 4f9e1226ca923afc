package engine

import (
	"testing"
	"time"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(state.NewAppState())
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(state.DateLayout, value, time.Local)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return d
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func mustCreateTask(t *testing.T, svc *Service, in TaskInput, on time.Time) *state.TaskTemplate {
	t.Helper()
	task, err := svc.CreateTask(in, on)
	if err != nil {
		t.Fatalf("CreateTask(%q): %v", in.Title, err)
	}
	return task
}

func TestIsDueDaily(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	task := mustCreateTask(t, svc, TaskInput{Title: "Kod yaz", Recurrence: RecurrenceDaily}, created)

	if IsDue(task, day(t, "2023-12-31")) {
		t.Fatalf("daily task due before creation date")
	}
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-02-29", "2025-06-15"} {
		if !IsDue(task, day(t, d)) {
			t.Fatalf("daily task not due on %s", d)
		}
	}
}

func TestIsDueOnce(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-03-10")
	task := mustCreateTask(t, svc, TaskInput{Title: "Vergi beyannamesi", Recurrence: RecurrenceOnce}, created)

	if !IsDue(task, created) {
		t.Fatalf("once task not due on its creation date")
	}
	if IsDue(task, day(t, "2024-03-09")) || IsDue(task, day(t, "2024-03-11")) {
		t.Fatalf("once task due off its creation date")
	}
}

func TestIsDueWeeklyAndMonthly(t *testing.T) {
	svc := newTestService(t)
	// 2024-01-01 is a Monday.
	weekly := mustCreateTask(t, svc, TaskInput{Title: "Haftalık plan", Recurrence: RecurrenceWeekly}, day(t, "2024-01-01"))
	monthly := mustCreateTask(t, svc, TaskInput{Title: "Aylık bütçe", Recurrence: RecurrenceMonthly}, day(t, "2024-01-31"))

	if !IsDue(weekly, day(t, "2024-01-08")) {
		t.Fatalf("weekly task not due the following Monday")
	}
	if IsDue(weekly, day(t, "2024-01-09")) {
		t.Fatalf("weekly task due on a Tuesday")
	}
	if IsDue(weekly, day(t, "2023-12-25")) {
		t.Fatalf("weekly task due on a Monday before creation")
	}

	if !IsDue(monthly, day(t, "2024-03-31")) {
		t.Fatalf("monthly task not due on day-of-month match")
	}
	if IsDue(monthly, day(t, "2024-02-29")) {
		t.Fatalf("monthly task created on the 31st due in February")
	}
}

func TestIsDueCustomEveryN(t *testing.T) {
	svc := newTestService(t)
	task := mustCreateTask(t, svc, TaskInput{
		Title:      "Spor",
		Recurrence: RecurrenceCustom,
		EveryNDays: intPtr(3),
	}, day(t, "2024-01-01"))

	due := []string{"2024-01-01", "2024-01-04", "2024-01-07", "2024-01-10"}
	notDue := []string{"2023-12-29", "2024-01-02", "2024-01-03", "2024-01-05"}
	for _, d := range due {
		if !IsDue(task, day(t, d)) {
			t.Fatalf("every-3-days task not due on %s", d)
		}
	}
	for _, d := range notDue {
		if IsDue(task, day(t, d)) {
			t.Fatalf("every-3-days task due on %s", d)
		}
	}
}

func TestIsDueCustomWeekdays(t *testing.T) {
	svc := newTestService(t)
	task := mustCreateTask(t, svc, TaskInput{
		Title:      "Koşu",
		Recurrence: RecurrenceCustom,
		Weekdays:   []time.Weekday{time.Monday, time.Thursday},
	}, day(t, "2024-01-01"))

	if !IsDue(task, day(t, "2024-01-04")) { // Thursday
		t.Fatalf("weekday task not due on Thursday")
	}
	if IsDue(task, day(t, "2024-01-03")) { // Wednesday
		t.Fatalf("weekday task due on Wednesday")
	}
}

func TestIsDueCustomPrecedenceAndEmpty(t *testing.T) {
	svc := newTestService(t)
	// Both fields set: every-N wins.
	both := mustCreateTask(t, svc, TaskInput{
		Title:      "Çelişkili",
		Recurrence: RecurrenceCustom,
		EveryNDays: intPtr(3),
		Weekdays:   []time.Weekday{time.Sunday},
	}, day(t, "2024-01-01"))
	if !IsDue(both, day(t, "2024-01-04")) { // Thursday, on the N grid
		t.Fatalf("every-N precedence: not due on N-day boundary")
	}
	if IsDue(both, day(t, "2024-01-14")) { // Sunday, off the N grid
		t.Fatalf("every-N precedence: weekday set leaked through")
	}

	// Neither set: never due.
	neither := mustCreateTask(t, svc, TaskInput{Title: "Boş custom", Recurrence: RecurrenceCustom}, day(t, "2024-01-01"))
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-06-01"} {
		if IsDue(neither, day(t, d)) {
			t.Fatalf("custom task with no fields due on %s", d)
		}
	}
}

func TestCreateTaskDropsInvalidInterval(t *testing.T) {
	svc := newTestService(t)
	task := mustCreateTask(t, svc, TaskInput{
		Title:      "Geçersiz aralık",
		Recurrence: RecurrenceCustom,
		EveryNDays: intPtr(0),
	}, day(t, "2024-01-01"))
	if task.EveryNDays != nil {
		t.Fatalf("non-positive interval kept on template")
	}
	if IsDue(task, day(t, "2024-01-01")) {
		t.Fatalf("custom task with dropped interval due")
	}
}

func TestTasksDueOnInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	created := day(t, "2024-01-01")
	titles := []string{"birinci", "ikinci", "üçüncü", "dördüncü"}
	for _, title := range titles {
		mustCreateTask(t, svc, TaskInput{Title: title, Recurrence: RecurrenceDaily}, created)
	}

	due := svc.TasksDueOn(day(t, "2024-01-02"))
	if len(due) != len(titles) {
		t.Fatalf("due count=%d, want %d", len(due), len(titles))
	}
	for i, task := range due {
		if task.Title != titles[i] {
			t.Fatalf("due[%d]=%q, want %q (insertion order)", i, task.Title, titles[i])
		}
	}
}

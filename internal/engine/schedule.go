package engine

import (
	"time"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// IsDue reports whether a template applies on the given calendar date.
// Pure function of the template definition and the date; session state
// is never consulted.
func IsDue(t *state.TaskTemplate, date time.Time) bool {
	created, err := time.ParseInLocation(state.DateLayout, t.CreatedDate, date.Location())
	if err != nil {
		// Snapshot migration backfills created_date, so this only
		// happens for hand-edited files. Never due beats crashing.
		return false
	}
	day := truncateToDay(date)
	created = truncateToDay(created)

	switch parseStoredRecurrence(t.Recurrence) {
	case RecurrenceOnce:
		return day.Equal(created)
	case RecurrenceDaily:
		return !day.Before(created)
	case RecurrenceWeekly:
		return !day.Before(created) && day.Weekday() == created.Weekday()
	case RecurrenceMonthly:
		// Literal day-of-month match. Months shorter than the creation
		// day simply never match; known limitation.
		return !day.Before(created) && day.Day() == created.Day()
	case RecurrenceCustom:
		return customDue(t, created, day)
	default:
		return false
	}
}

// customDue tolerates every combination of the two custom fields:
// every-N wins when both are set, neither set means never due, and a
// non-positive interval is treated as unset.
func customDue(t *state.TaskTemplate, created, day time.Time) bool {
	if t.EveryNDays != nil && *t.EveryNDays >= 1 {
		days := daysBetween(created, day)
		if days < 0 {
			return false
		}
		return days%*t.EveryNDays == 0
	}
	if len(t.Weekdays) > 0 {
		wd := int(day.Weekday())
		for _, d := range t.Weekdays {
			if d == wd {
				return true
			}
		}
	}
	return false
}

// TasksDueOn filters all templates through IsDue, preserving the
// insertion order of the template collection.
func (s *Service) TasksDueOn(date time.Time) []*state.TaskTemplate {
	var out []*state.TaskTemplate
	for _, t := range s.st.TasksInOrder() {
		if IsDue(t, date) {
			out = append(out, t)
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. Re-anchoring to
// UTC keeps the count exact across DST transitions.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

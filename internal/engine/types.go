package engine

import (
	"strings"
	"time"
)

type Recurrence string

const (
	RecurrenceOnce    Recurrence = "once"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceCustom  Recurrence = "custom"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceOnce, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceCustom:
		return true
	default:
		return false
	}
}

// DefaultRecurrence is used when user input is missing/invalid.
const DefaultRecurrence Recurrence = RecurrenceDaily

// ParseRecurrence parses user input to a Recurrence.
// If input is empty or unrecognized, returns DefaultRecurrence.
func ParseRecurrence(input string) Recurrence {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultRecurrence
	case "once", "one-off", "oneoff":
		return RecurrenceOnce
	case "daily", "day":
		return RecurrenceDaily
	case "weekly", "week":
		return RecurrenceWeekly
	case "monthly", "month":
		return RecurrenceMonthly
	case "custom":
		return RecurrenceCustom
	default:
		return DefaultRecurrence
	}
}

// parseStoredRecurrence is the tolerant variant used on templates read
// back from a snapshot.
func parseStoredRecurrence(s string) Recurrence {
	r := Recurrence(strings.TrimSpace(strings.ToLower(s)))
	if r.IsValid() {
		return r
	}
	return DefaultRecurrence
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday, "pazar": time.Sunday,
	"mon": time.Monday, "monday": time.Monday, "pazartesi": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday, "salı": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday, "çarşamba": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday, "perşembe": time.Thursday,
	"fri": time.Friday, "friday": time.Friday, "cuma": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday, "cumartesi": time.Saturday,
}

// ParseWeekdays parses a comma-separated weekday list ("mon,wed,fri").
// Unrecognized entries are dropped; duplicates collapse.
func ParseWeekdays(input string) []time.Weekday {
	var out []time.Weekday
	seen := map[time.Weekday]bool{}
	for _, part := range strings.Split(input, ",") {
		name := strings.TrimSpace(strings.ToLower(part))
		if name == "" {
			continue
		}
		wd, ok := weekdayNames[name]
		if !ok {
			continue
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		out = append(out, wd)
	}
	return out
}

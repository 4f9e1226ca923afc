package engine

import (
	"time"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// StreakXPBonus is the flat xp granted for every successful day.
const StreakXPBonus = 10

// IsCompletedOn reports whether a task counts as completed on the
// given day. An explicit completion record short-circuits and is
// permanent. Tasks without a minute target can only be completed via
// such a record. Otherwise the logged minutes are compared against the
// target, and the first crossing is persisted as a completion record so
// later checks stay stable even if logged minutes appear to drop.
//
// The persisting step makes this a query with a side effect; step one
// keeps repeated calls from ever creating duplicates.
func (s *Service) IsCompletedOn(t *state.TaskTemplate, date time.Time) bool {
	day := state.DateKey(date)
	for i := range s.st.Completions {
		c := &s.st.Completions[i]
		if c.TaskID == t.ID && c.Date == day {
			return true
		}
	}
	if t.TargetMinutes == nil {
		return false
	}
	if s.MinutesLoggedOn(t.ID, date, date) < *t.TargetMinutes {
		return false
	}
	s.st.Completions = append(s.st.Completions, state.TaskCompletion{
		ID:     s.newID(),
		TaskID: t.ID,
		Date:   day,
	})
	return true
}

// CompletionsOn returns the completion records for a day.
func (s *Service) CompletionsOn(date time.Time) []state.TaskCompletion {
	day := state.DateKey(date)
	var out []state.TaskCompletion
	for _, c := range s.st.Completions {
		if c.Date == day {
			out = append(out, c)
		}
	}
	return out
}

// UpdateStreak settles the streak for a day. A day succeeds when the
// amca quota was met or at least one session ended that day. Success
// extends the streak and grants the flat xp bonus; failure consumes a
// freeze if one is available, else resets the streak to zero.
//
// This is invoked by an external day-boundary scheduler; nothing in the
// engine triggers it automatically.
func (s *Service) UpdateStreak(date time.Time) {
	day := state.DateKey(date)

	amcaOK := false
	if log, ok := s.st.DailyLogs[day]; ok {
		amcaOK = log.AmcaCount >= s.st.Settings.MinAmcaPerDay
	}

	timerOK := false
	for _, sess := range s.st.Sessions {
		if sess.EndTime != nil && state.DateKey(*sess.EndTime) == day {
			timerOK = true
			break
		}
	}

	if amcaOK || timerOK {
		s.st.Profile.StreakDays++
		s.grantXP(StreakXPBonus)
		s.SyncBadges()
		return
	}
	if s.st.Profile.StreakFreezes > 0 {
		s.st.Profile.StreakFreezes--
		return
	}
	s.st.Profile.StreakDays = 0
}

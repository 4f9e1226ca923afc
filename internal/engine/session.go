package engine

import (
	"math"
	"sort"
	"time"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// ActiveSession returns the running session for a task, or nil. The
// tracker maintains at most one running session per task id.
func (s *Service) ActiveSession(taskID string) *state.TimerSession {
	for _, sess := range s.st.Sessions {
		if sess.TaskID == taskID && sess.Running() {
			return sess
		}
	}
	return nil
}

// AllActiveSessions returns every running session, oldest first.
func (s *Service) AllActiveSessions() []*state.TimerSession {
	var out []*state.TimerSession
	for _, sess := range s.st.Sessions {
		if sess.Running() {
			out = append(out, sess)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

// Session returns a session by id, or nil.
func (s *Service) Session(id string) *state.TimerSession {
	return s.st.Sessions[id]
}

// StartTimer starts a session for the task now.
func (s *Service) StartTimer(taskID string) *state.TimerSession {
	return s.StartTimerAt(taskID, time.Now())
}

// StartTimerAt starts a session at an explicit instant. Starting a task
// that is already running is idempotent: the existing session is
// returned untouched, never a second concurrent one.
func (s *Service) StartTimerAt(taskID string, at time.Time) *state.TimerSession {
	if existing := s.ActiveSession(taskID); existing != nil {
		return existing
	}
	sess := &state.TimerSession{
		ID:        s.newID(),
		TaskID:    taskID,
		StartTime: at,
	}
	s.st.Sessions[sess.ID] = sess
	return sess
}

// StopTimer stops a session now.
func (s *Service) StopTimer(sessionID string) *state.TimerSession {
	return s.StopTimerAt(sessionID, time.Now())
}

// StopTimerAt stops a session at an explicit instant. Unknown ids
// return nil; stopping an already-stopped session returns it unchanged.
// On the first stop the elapsed time is fixed and rewards are applied:
// skill seconds, the day's routine log, the completion re-check, then
// xp/points with a level recalc. The reward is granted per stopped
// session, not per first daily completion; restarting a finished task
// earns again.
func (s *Service) StopTimerAt(sessionID string, at time.Time) *state.TimerSession {
	sess, ok := s.st.Sessions[sessionID]
	if !ok {
		return nil
	}
	if !sess.Running() {
		return sess
	}

	elapsed := at.Sub(sess.StartTime).Seconds()
	sess.DurationSeconds = int(math.Round(elapsed))
	if sess.DurationSeconds < 0 {
		sess.DurationSeconds = 0
	}
	end := at
	sess.EndTime = &end

	task := s.st.Tasks[sess.TaskID]
	day := state.DateKey(sess.StartTime)

	if task != nil && task.StatName != nil {
		if stat, ok := s.st.Stats[*task.StatName]; ok {
			stat.AddSeconds(sess.DurationSeconds)
		}
	}

	s.st.EnsureDailyLog(day)

	if task != nil {
		s.IsCompletedOn(task, sess.StartTime)
		s.st.Profile.Points += task.PointReward
		s.grantXP(task.XPReward)
		s.SyncBadges()
	}

	return sess
}

// MinutesLoggedOn sums the whole minutes logged against a task on the
// given day. Running sessions contribute their live elapsed time,
// measured at now; the sum is floored to minutes at the end.
func (s *Service) MinutesLoggedOn(taskID string, date time.Time, now time.Time) int {
	day := state.DateKey(date)
	total := 0
	for _, sess := range s.st.Sessions {
		if sess.TaskID != taskID || state.DateKey(sess.StartTime) != day {
			continue
		}
		if sess.Running() {
			live := int(now.Sub(sess.StartTime).Seconds())
			if live > 0 {
				total += live
			}
			continue
		}
		total += sess.DurationSeconds
	}
	return total / 60
}

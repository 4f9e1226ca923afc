package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// CreateBookProject adds a writing project. Multiple projects may
// coexist; "active" is whichever not-completed one comes first.
func (s *Service) CreateBookProject(title string, totalPages, dailyTarget int) (*state.BookProject, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if totalPages < 1 {
		return nil, fmt.Errorf("total pages must be positive, got %d", totalPages)
	}
	if dailyTarget < 0 {
		dailyTarget = 0
	}
	b := &state.BookProject{
		ID:               s.newID(),
		Title:            t,
		TotalPages:       totalPages,
		DailyTargetPages: dailyTarget,
	}
	s.st.PutBook(b)
	return b, nil
}

// LogBookProgress adds pages to both the project total and the day's
// routine log. Crossing the total flips is_completed for good; unknown
// ids and non-positive page counts are no-ops.
func (s *Service) LogBookProgress(bookID string, pages int, date time.Time) *state.BookProject {
	b, ok := s.st.BookProjects[bookID]
	if !ok || pages <= 0 {
		return b
	}
	b.PagesWritten += pages
	if b.PagesWritten >= b.TotalPages {
		b.IsCompleted = true
	}
	log := s.st.EnsureDailyLog(state.DateKey(date))
	log.PagesWritten += pages
	s.SyncBadges()
	return b
}

// SetDailyZikrCount overwrites the day's zikr count. Absolute set, not
// additive; negative input is a no-op.
func (s *Service) SetDailyZikrCount(date time.Time, count int) {
	if count < 0 {
		return
	}
	log := s.st.EnsureDailyLog(state.DateKey(date))
	log.ZikrCount = count
}

// SetDailyIncome overwrites the day's income total and adjusts the
// wallet by exactly the delta against the previously stored amount,
// recording one audit transaction. A zero delta changes nothing.
func (s *Service) SetDailyIncome(date time.Time, total float64, now time.Time) {
	log := s.st.EnsureDailyLog(state.DateKey(date))
	delta := total - log.IncomeAmount
	if delta == 0 {
		return
	}
	log.IncomeAmount = total
	s.st.Wallet.Balance += delta
	s.st.Wallet.Transactions = append(s.st.Wallet.Transactions, state.Transaction{
		ID:          s.newID(),
		Timestamp:   now,
		Amount:      delta,
		Category:    "Income",
		Description: "Daily income log for " + state.DateKey(date),
	})
}

// RecordAmcaAction appends a quick win, grants its xp and bumps the
// day's amca count.
func (s *Service) RecordAmcaAction(xpReward int, note *string, at time.Time) *state.AmcaAction {
	a := state.AmcaAction{
		ID:        s.newID(),
		Timestamp: at,
		XPReward:  xpReward,
		Note:      note,
	}
	s.st.AmcaActions = append(s.st.AmcaActions, a)
	s.grantXP(xpReward)
	log := s.st.EnsureDailyLog(state.DateKey(at))
	log.AmcaCount++
	s.SyncBadges()
	return &s.st.AmcaActions[len(s.st.AmcaActions)-1]
}

// ApplyWakeTimes stores the day's wake target/actual times and derives
// the penalty by minute-of-day comparison (no overnight wraparound).
// Malformed time strings leave the log untouched; that is a defined
// failure mode, not an error.
func (s *Service) ApplyWakeTimes(date time.Time, target, actual string) bool {
	targetMin, err := parseMinuteOfDay(target)
	if err != nil {
		return false
	}
	actualMin, err := parseMinuteOfDay(actual)
	if err != nil {
		return false
	}

	log := s.st.EnsureDailyLog(state.DateKey(date))
	log.WakeTargetTime = &target
	log.WakeActualTime = &actual
	if actualMin > targetMin {
		log.WakePenalty = float64(actualMin-targetMin) * s.st.Settings.WakePenaltyPerMinute
	} else {
		log.WakePenalty = 0
	}
	return true
}

// parseMinuteOfDay parses "HH:MM" (24-hour) into minutes since midnight.
func parseMinuteOfDay(v string) (int, error) {
	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minute in %q", v)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", v)
	}
	return h*60 + m, nil
}

// AddMaterialGoal creates a named saving target.
func (s *Service) AddMaterialGoal(name, imagePath string, target float64) (*state.MaterialGoal, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return nil, err
	}
	if target <= 0 {
		return nil, fmt.Errorf("target amount must be positive, got %v", target)
	}
	g := &state.MaterialGoal{
		ID:           s.newID(),
		Name:         n,
		ImagePath:    imagePath,
		TargetAmount: target,
	}
	s.st.PutGoal(g)
	return g, nil
}

// ContributeToGoal adds toward a material goal. Unknown ids and
// non-positive amounts are no-ops.
func (s *Service) ContributeToGoal(goalID string, amount float64) *state.MaterialGoal {
	g, ok := s.st.MaterialGoals[goalID]
	if !ok || amount <= 0 {
		return g
	}
	g.CurrentAmount += amount
	return g
}

// GoalProgress returns the saved fraction of a goal, clamped to [0, 1].
func GoalProgress(g *state.MaterialGoal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

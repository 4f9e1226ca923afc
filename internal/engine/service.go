package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliskimuhendisi/gamicipline/internal/state"
)

// Service owns the mutable AppState handle and exposes every core
// operation. There is exactly one logical actor: all methods assume
// serialized calls and run to completion without blocking.
type Service struct {
	st    *state.AppState
	newID func() string
}

func NewService(st *state.AppState) *Service {
	s := &Service{st: st, newID: uuid.NewString}
	// Derived fields are recomputed up front so a snapshot with stale
	// cached level/level_name can never leak through.
	RecalcLevel(&st.Profile)
	return s
}

// State exposes the aggregate for read-only collaborators (UI, persistence).
func (s *Service) State() *state.AppState { return s.st }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// TaskInput carries the editable fields of a task template.
type TaskInput struct {
	Title         string
	Description   string
	Category      string
	Recurrence    Recurrence
	TargetMinutes *int
	XPReward      int
	PointReward   int
	StatName      *string
	EveryNDays    *int
	Weekdays      []time.Weekday
}

// sanitizeCustom drops invalid custom-recurrence fields: a non-positive
// interval and out-of-range weekday values are field-level no-ops.
func sanitizeCustom(in *TaskInput) {
	if in.EveryNDays != nil && *in.EveryNDays < 1 {
		in.EveryNDays = nil
	}
	var days []time.Weekday
	for _, wd := range in.Weekdays {
		if wd >= time.Sunday && wd <= time.Saturday {
			days = append(days, wd)
		}
	}
	in.Weekdays = days
}

// CreateTask adds a new template dated on the given day. Identity is
// fixed at creation; everything else can be edited later.
func (s *Service) CreateTask(in TaskInput, on time.Time) (*state.TaskTemplate, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	rec := in.Recurrence
	if !rec.IsValid() {
		rec = DefaultRecurrence
	}
	sanitizeCustom(&in)

	t := &state.TaskTemplate{
		ID:            s.newID(),
		Title:         title,
		Description:   in.Description,
		Category:      in.Category,
		Recurrence:    string(rec),
		TargetMinutes: in.TargetMinutes,
		XPReward:      in.XPReward,
		PointReward:   in.PointReward,
		StatName:      in.StatName,
		CreatedDate:   state.DateKey(on),
		EveryNDays:    in.EveryNDays,
		Weekdays:      weekdaysToInts(in.Weekdays),
	}
	s.st.PutTask(t)
	return t, nil
}

// EditTask overwrites the editable fields of an existing template.
// Returns nil when the id does not exist.
func (s *Service) EditTask(id string, in TaskInput) (*state.TaskTemplate, error) {
	t, ok := s.st.Tasks[id]
	if !ok {
		return nil, nil
	}
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	rec := in.Recurrence
	if !rec.IsValid() {
		rec = DefaultRecurrence
	}
	sanitizeCustom(&in)

	t.Title = title
	t.Description = in.Description
	t.Category = in.Category
	t.Recurrence = string(rec)
	t.TargetMinutes = in.TargetMinutes
	t.XPReward = in.XPReward
	t.PointReward = in.PointReward
	t.StatName = in.StatName
	t.EveryNDays = in.EveryNDays
	t.Weekdays = weekdaysToInts(in.Weekdays)
	return t, nil
}

// DeleteTask removes a template. Existing sessions and completions
// keep their task_id and become orphaned history.
func (s *Service) DeleteTask(id string) bool {
	return s.st.RemoveTask(id)
}

// Task returns a template by id, or nil.
func (s *Service) Task(id string) *state.TaskTemplate {
	return s.st.Tasks[id]
}

// grantXP is the single funnel for xp mutation plus derived recalc, so
// the recompute can never be forgotten.
func (s *Service) grantXP(xp int) {
	s.st.Profile.XP += xp
	RecalcLevel(&s.st.Profile)
}

// SetUsername overwrites the profile username. Blank input is a no-op.
func (s *Service) SetUsername(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.st.Profile.Username = name
}

// SetXP overwrites the xp total (manual profile edit) and recomputes
// the derived level fields. Negative input clamps to zero.
func (s *Service) SetXP(xp int) {
	if xp < 0 {
		xp = 0
	}
	s.st.Profile.XP = xp
	RecalcLevel(&s.st.Profile)
}

// SetStreak overwrites streak counters. Negative inputs clamp to zero.
func (s *Service) SetStreak(days, freezes int) {
	if days < 0 {
		days = 0
	}
	if freezes < 0 {
		freezes = 0
	}
	s.st.Profile.StreakDays = days
	s.st.Profile.StreakFreezes = freezes
}

// SetStatSeconds overwrites a skill accumulator (manual edit). Unknown
// skill names and negative values are no-ops.
func (s *Service) SetStatSeconds(name string, seconds int) bool {
	stat, ok := s.st.Stats[name]
	if !ok || seconds < 0 {
		return false
	}
	stat.TotalSeconds = seconds
	return true
}

func weekdaysToInts(days []time.Weekday) []int {
	if len(days) == 0 {
		return nil
	}
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, int(d))
	}
	return out
}

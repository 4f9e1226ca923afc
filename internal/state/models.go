package state

import "time"

// DateLayout is the canonical day key used across the aggregate
// (daily logs, completions, task creation dates).
const DateLayout = "2006-01-02"

// DateKey formats a timestamp as a day key in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

type Profile struct {
	Username      string   `json:"username"`
	XP            int      `json:"xp"`
	Level         int      `json:"level"`
	LevelName     string   `json:"level_name"`
	Points        int      `json:"points"`
	StreakDays    int      `json:"streak_days"`
	StreakFreezes int      `json:"streak_freezes"`
	Badges        []string `json:"badges"`
}

// HasBadge reports whether the badge id has already been earned.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// AddBadge records a badge id once. Earned badges are permanent.
func (p *Profile) AddBadge(id string) bool {
	if p.HasBadge(id) {
		return false
	}
	p.Badges = append(p.Badges, id)
	return true
}

// Stat is a named skill accumulating practiced seconds. Level and
// progress are derived views; see the engine package.
type Stat struct {
	Name         string `json:"name"`
	TotalSeconds int    `json:"total_seconds"`
}

func (s *Stat) AddSeconds(seconds int) {
	if seconds > 0 {
		s.TotalSeconds += seconds
	}
}

// TaskTemplate defines a recurring (or one-off) task. Identity is
// immutable once created; all other fields may be edited.
type TaskTemplate struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Recurrence    string  `json:"recurrence"`
	TargetMinutes *int    `json:"target_minutes"`
	XPReward      int     `json:"xp_reward"`
	PointReward   int     `json:"point_reward"`
	StatName      *string `json:"stat_name"`
	CreatedDate   string  `json:"created_date"`
	// Custom recurrence: at most one of the two is meaningful.
	// EveryNDays wins when both are set.
	EveryNDays *int  `json:"custom_every_n_days"`
	Weekdays   []int `json:"custom_weekdays"`
}

type TimerSession struct {
	ID              string     `json:"id"`
	TaskID          string     `json:"task_id"`
	StartTime       time.Time  `json:"start_time"`
	DurationSeconds int        `json:"duration_seconds"`
	EndTime         *time.Time `json:"end_time"`
}

// Running reports whether the session has not been stopped yet.
func (s *TimerSession) Running() bool {
	return s.EndTime == nil
}

// TaskCompletion is a permanent record that a task was completed on a
// given day. TaskID is a weak reference: it survives task deletion.
type TaskCompletion struct {
	ID     string `json:"id"`
	TaskID string `json:"task_id"`
	Date   string `json:"date"`
}

// AmcaAction is a logged quick win. The list is append-only.
type AmcaAction struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	XPReward  int       `json:"xp_reward"`
	Note      *string   `json:"note"`
}

type Transaction struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type Wallet struct {
	Balance      float64       `json:"balance"`
	Transactions []Transaction `json:"transactions"`
}

type BookProject struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	TotalPages       int    `json:"total_pages"`
	DailyTargetPages int    `json:"daily_target_pages"`
	PagesWritten     int    `json:"pages_written"`
	IsCompleted      bool   `json:"is_completed"`
}

type MaterialGoal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ImagePath     string  `json:"image_path"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
}

type DailyRoutineLog struct {
	Date           string  `json:"date"`
	PagesWritten   int     `json:"pages_written"`
	ZikrCount      int     `json:"zikr_count"`
	IncomeAmount   float64 `json:"income_amount"`
	AmcaCount      int     `json:"amca_count"`
	WakeTargetTime *string `json:"wake_target_time"`
	WakeActualTime *string `json:"wake_actual_time"`
	WakePenalty    float64 `json:"wake_penalty"`
}

type Settings struct {
	MonthlyIncomeTarget  float64 `json:"monthly_income_target"`
	ZikrDailyTarget      int     `json:"zikr_daily_target"`
	MinAmcaPerDay        int     `json:"min_amca_per_day"`
	WakePenaltyPerMinute float64 `json:"wake_penalty_per_minute"`
}

// AppState is the aggregate root. Every operation mutates it in place;
// persistence serializes it wholesale. Map-held entities carry an
// explicit order slice because due-list and "first active book" queries
// depend on insertion order.
type AppState struct {
	Profile       Profile                     `json:"profile"`
	Stats         map[string]*Stat            `json:"stats"`
	Tasks         map[string]*TaskTemplate    `json:"tasks"`
	TaskOrder     []string                    `json:"task_order"`
	Sessions      map[string]*TimerSession    `json:"sessions"`
	Completions   []TaskCompletion            `json:"task_completions"`
	AmcaActions   []AmcaAction                `json:"amca_actions"`
	Wallet        Wallet                      `json:"wallet"`
	BookProjects  map[string]*BookProject     `json:"book_projects"`
	BookOrder     []string                    `json:"book_order"`
	MaterialGoals map[string]*MaterialGoal    `json:"material_goals"`
	GoalOrder     []string                    `json:"goal_order"`
	DailyLogs     map[string]*DailyRoutineLog `json:"daily_logs"`
	Settings      Settings                    `json:"settings"`
}

// PutTask inserts a template, tracking insertion order.
func (st *AppState) PutTask(t *TaskTemplate) {
	if _, exists := st.Tasks[t.ID]; !exists {
		st.TaskOrder = append(st.TaskOrder, t.ID)
	}
	st.Tasks[t.ID] = t
}

// RemoveTask deletes a template. Sessions and completions that
// reference the id stay behind as orphaned history.
func (st *AppState) RemoveTask(id string) bool {
	if _, ok := st.Tasks[id]; !ok {
		return false
	}
	delete(st.Tasks, id)
	for i, tid := range st.TaskOrder {
		if tid == id {
			st.TaskOrder = append(st.TaskOrder[:i], st.TaskOrder[i+1:]...)
			break
		}
	}
	return true
}

// TasksInOrder returns templates in insertion order.
func (st *AppState) TasksInOrder() []*TaskTemplate {
	out := make([]*TaskTemplate, 0, len(st.TaskOrder))
	for _, id := range st.TaskOrder {
		if t, ok := st.Tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// PutBook inserts a book project, tracking insertion order.
func (st *AppState) PutBook(b *BookProject) {
	if _, exists := st.BookProjects[b.ID]; !exists {
		st.BookOrder = append(st.BookOrder, b.ID)
	}
	st.BookProjects[b.ID] = b
}

// BooksInOrder returns book projects in insertion order.
func (st *AppState) BooksInOrder() []*BookProject {
	out := make([]*BookProject, 0, len(st.BookOrder))
	for _, id := range st.BookOrder {
		if b, ok := st.BookProjects[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

// ActiveBook returns the first not-completed book project, or nil.
// "Active" is a query-time filter, not a stored flag.
func (st *AppState) ActiveBook() *BookProject {
	for _, b := range st.BooksInOrder() {
		if !b.IsCompleted {
			return b
		}
	}
	return nil
}

// PutGoal inserts a material goal, tracking insertion order.
func (st *AppState) PutGoal(g *MaterialGoal) {
	if _, exists := st.MaterialGoals[g.ID]; !exists {
		st.GoalOrder = append(st.GoalOrder, g.ID)
	}
	st.MaterialGoals[g.ID] = g
}

// GoalsInOrder returns material goals in insertion order.
func (st *AppState) GoalsInOrder() []*MaterialGoal {
	out := make([]*MaterialGoal, 0, len(st.GoalOrder))
	for _, id := range st.GoalOrder {
		if g, ok := st.MaterialGoals[id]; ok {
			out = append(out, g)
		}
	}
	return out
}

// EnsureDailyLog returns the routine log for the given day, creating it
// lazily on first access.
func (st *AppState) EnsureDailyLog(day string) *DailyRoutineLog {
	if log, ok := st.DailyLogs[day]; ok {
		return log
	}
	log := &DailyRoutineLog{Date: day}
	st.DailyLogs[day] = log
	return log
}

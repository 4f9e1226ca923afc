package state

// DefaultStatNames is the fixed starter skill set seeded into a fresh
// aggregate.
var DefaultStatNames = []string{
	"yazılım",
	"yazarlık",
	"liderlik",
	"satış",
	"içerik üretme",
	"entelektüellik",
	"plancılık",
	"farkındalık",
}

// DefaultSettings returns the documented configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		MonthlyIncomeTarget:  10000.0,
		ZikrDailyTarget:      100,
		MinAmcaPerDay:        1,
		WakePenaltyPerMinute: 1.0,
	}
}

// NewAppState builds a fresh aggregate with the default stat set and
// settings. Derived profile fields (level, level name) are left at
// their zero values; the engine normalizes them on construction.
func NewAppState() *AppState {
	stats := make(map[string]*Stat, len(DefaultStatNames))
	for _, name := range DefaultStatNames {
		stats[name] = &Stat{Name: name}
	}
	return &AppState{
		Profile:       Profile{Username: "oyuncu"},
		Stats:         stats,
		Tasks:         map[string]*TaskTemplate{},
		Sessions:      map[string]*TimerSession{},
		BookProjects:  map[string]*BookProject{},
		MaterialGoals: map[string]*MaterialGoal{},
		DailyLogs:     map[string]*DailyRoutineLog{},
		Settings:      DefaultSettings(),
	}
}

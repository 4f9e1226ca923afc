package engine

import "github.com/iliskimuhendisi/gamicipline/internal/state"

const (
	// XPPerLevel is the flat band size: level = 1 + xp/500, no cap.
	XPPerLevel = 500

	// SecondsPerStatLevel is one skill level per 10 practiced hours.
	SecondsPerStatLevel = 36000
)

// levelNames are the human-readable tiers. Levels past the end clamp
// to the last name, levels below 1 clamp to the first.
var levelNames = []string{
	"Çırak",
	"Uyanan",
	"Disiplin Çömezi",
	"Yolcu",
	"Savaşçı",
	"Muhafız",
	"Usta",
	"Büyük Usta",
	"Efsane",
	"Bilge",
}

// LevelFromXP returns the level for an XP total. Level 1 covers 0-499
// XP, level 2 covers 500-999, and so on with no upper bound.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/XPPerLevel
}

// LevelName returns the tier name for a level, clamped into the list.
func LevelName(level int) string {
	if level < 1 {
		return levelNames[0]
	}
	idx := level - 1
	if idx >= len(levelNames) {
		idx = len(levelNames) - 1
	}
	return levelNames[idx]
}

// RecalcLevel rewrites the cached derived fields from the current xp.
// Every xp mutation in this package funnels through grantXP, which
// calls this; external collaborators editing xp directly must call it
// too.
func RecalcLevel(p *state.Profile) {
	p.Level = LevelFromXP(p.XP)
	p.LevelName = LevelName(p.Level)
}

// StatLevel returns the skill level derived from accumulated seconds.
func StatLevel(s *state.Stat) int {
	if s.TotalSeconds < 0 {
		return 1
	}
	return 1 + s.TotalSeconds/SecondsPerStatLevel
}

// StatProgress returns the fraction of the current skill level already
// practiced, always in [0, 1).
func StatProgress(s *state.Stat) float64 {
	if s.TotalSeconds < 0 {
		return 0
	}
	return float64(s.TotalSeconds%SecondsPerStatLevel) / float64(SecondsPerStatLevel)
}

// XPToNextLevel returns how much xp is missing until the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gamicipline theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask    = "📋"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconBadge   = "🏆"
	IconBolt    = "⚡"
	IconTimer   = "⏱️"
	IconFire    = "🔥"
	IconSnow    = "❄️"
	IconWallet  = "💰"
	IconBook    = "📖"
	IconBeads   = "📿"
	IconSun     = "🌅"
	IconGoal    = "🎯"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLoop    = "🔁"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("SEVİYE ATLADIN")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StreakText renders the streak with freezes appended when any remain.
func StreakText(days int, freezes int) string {
	s := fmt.Sprintf("%s %d gün", IconFire, days)
	if freezes > 0 {
		s += Muted.Render(fmt.Sprintf(" (%s %d)", IconSnow, freezes))
	}
	return s
}

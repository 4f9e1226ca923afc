package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
	"github.com/iliskimuhendisi/gamicipline/internal/state"
	"github.com/iliskimuhendisi/gamicipline/internal/ui"
)

type dashboardModel struct {
	svc *engine.Service

	width  int
	height int

	now      time.Time
	selected int

	xpBar   progress.Model
	statBar progress.Model

	lastLog string
}

type tickMsg time.Time

func newDashboardModel(svc *engine.Service) dashboardModel {
	xp := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	xp.Width = 30
	stat := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	stat.Width = 16
	return dashboardModel{
		svc:     svc,
		now:     time.Now(),
		xpBar:   xp,
		statBar: stat,
		lastLog: "Hazır.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			due := m.svc.TasksDueOn(m.now)
			if m.selected < len(due)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			return m.toggleTimer(), nil
		}
	}
	return m, nil
}

// toggleTimer starts a session on the selected due task, or stops the
// running one.
func (m dashboardModel) toggleTimer() dashboardModel {
	due := m.svc.TasksDueOn(m.now)
	if m.selected < 0 || m.selected >= len(due) {
		m.lastLog = "Bugün için görev yok."
		return m
	}
	task := due[m.selected]
	if sess := m.svc.ActiveSession(task.ID); sess != nil {
		stopped := m.svc.StopTimerAt(sess.ID, m.now)
		mins := stopped.DurationSeconds / 60
		m.lastLog = fmt.Sprintf("%s durdu: %d dk, +%d XP", task.Title, mins, task.XPReward)
		return m
	}
	m.svc.StartTimerAt(task.ID, m.now)
	m.lastLog = task.Title + " için sayaç başladı."
	return m
}

func (m dashboardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderAgenda()
	footer := "\n" + ui.Dim.Render(m.lastLog)

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 22 {
			leftW = 22
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	p := m.svc.State().Profile
	bar := m.xpBar.ViewAs(float64(p.XP%engine.XPPerLevel) / float64(engine.XPPerLevel))
	return fmt.Sprintf("%s  %s | Seviye %d (%s) | XP %d %s | %s",
		ui.Heading(ui.IconBolt, "Gamicipline"),
		p.Username, p.Level, p.LevelName, p.XP, bar,
		ui.StreakText(p.StreakDays, p.StreakFreezes))
}

func (m dashboardModel) renderSidebar() string {
	st := m.svc.State()
	lines := []string{ui.H2.Render("Beceriler")}
	for _, name := range state.DefaultStatNames {
		s, ok := st.Stats[name]
		if !ok {
			continue
		}
		bar := m.statBar.ViewAs(engine.StatProgress(s))
		lines = append(lines, fmt.Sprintf("%-16s S%-2d %s", name, engine.StatLevel(s), bar))
	}
	lines = append(lines, "")
	lines = append(lines, ui.H2.Render("Günlük rutin"))
	log := st.EnsureDailyLog(state.DateKey(m.now))
	lines = append(lines, fmt.Sprintf("%s zikir: %d / %d", ui.IconBeads, log.ZikrCount, st.Settings.ZikrDailyTarget))
	lines = append(lines, fmt.Sprintf("%s amca: %d / %d", ui.IconLoop, log.AmcaCount, st.Settings.MinAmcaPerDay))
	lines = append(lines, fmt.Sprintf("%s gelir: %.2f", ui.IconWallet, log.IncomeAmount))
	if log.WakePenalty > 0 {
		lines = append(lines, ui.Bad.Render(fmt.Sprintf("%s ceza: -%.0f", ui.IconSun, log.WakePenalty)))
	}
	lines = append(lines, "")
	lines = append(lines, ui.H2.Render("Tuşlar"))
	lines = append(lines, ui.Muted.Render("- ↑/↓ veya j/k: gezin"))
	lines = append(lines, ui.Muted.Render("- enter/boşluk: sayaç aç/kapat"))
	lines = append(lines, ui.Muted.Render("- q: çık"))
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderAgenda() string {
	due := m.svc.TasksDueOn(m.now)
	completed := map[string]bool{}
	for _, c := range m.svc.CompletionsOn(m.now) {
		completed[c.TaskID] = true
	}

	out := []string{ui.H2.Render("Bugünün görevleri " + m.now.Format("15:04:05"))}
	if len(due) == 0 {
		out = append(out, ui.Muted.Render("(bugün görev yok)"))
		return strings.Join(out, "\n")
	}
	if m.selected >= len(due) {
		m.selected = len(due) - 1
	}
	for i, t := range due {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mins := m.svc.MinutesLoggedOn(t.ID, m.now, m.now)
		target := ""
		if t.TargetMinutes != nil {
			target = fmt.Sprintf(" / %d dk", *t.TargetMinutes)
		}
		mark := "  "
		if completed[t.ID] {
			mark = ui.IconDone + " "
		} else if m.svc.ActiveSession(t.ID) != nil {
			mark = ui.IconTimer + " "
		}
		line := fmt.Sprintf("%s%s%s (%d dk%s, +%d XP)", cursor, mark, t.Title, mins, target, t.XPReward)
		if sess := m.svc.ActiveSession(t.ID); sess != nil {
			elapsed := m.now.Sub(sess.StartTime).Round(time.Second)
			if elapsed < 0 {
				elapsed = 0
			}
			line += " " + ui.Good.Render(elapsed.String())
		}
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

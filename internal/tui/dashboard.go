package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iliskimuhendisi/gamicipline/internal/engine"
)

// RunDashboard drives the live dashboard until the user quits. The
// service state is mutated in place; the caller persists it afterwards.
func RunDashboard(svc *engine.Service, out io.Writer) error {
	m := newDashboardModel(svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/dealgrid/internal/database"
)

// MainModel is the root bubbletea model. It owns global concerns (quit,
// window size) and delegates everything else to the dashboard.
type MainModel struct {
	dashboard     DashboardModel
	width, height int
}

func NewMainModel(ctx context.Context, repo database.Repository) MainModel {
	return MainModel{dashboard: NewDashboardModel(ctx, repo)}
}

func (m MainModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	newDash, cmd := m.dashboard.Update(msg)
	m.dashboard = newDash.(DashboardModel)
	return m, cmd
}

func (m MainModel) View() string {
	return m.dashboard.View()
}

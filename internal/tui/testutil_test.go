package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/dealgrid/internal/database"
)

// newTestModel builds a dashboard over a mock repository seeded with the
// demo pipeline. Tests add their own expectations for mutating calls.
func newTestModel(t *testing.T) (DashboardModel, *database.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := database.NewMockRepository(ctrl)
	repo.EXPECT().GetSetting(gomock.Any(), gomock.Any()).Return("", false).AnyTimes()
	repo.EXPECT().LoadViewState(gomock.Any()).Return(database.ViewState{}).AnyTimes()
	repo.EXPECT().GetDeals(gomock.Any()).Return(database.DemoDeals(), nil).AnyTimes()
	repo.EXPECT().SaveViewState(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	m := NewDashboardModel(context.Background(), repo)
	m.width, m.height = 140, 40
	return m, repo
}

func press(m DashboardModel, msgs ...tea.Msg) DashboardModel {
	for _, msg := range msgs {
		nm, _ := m.Update(msg)
		m = nm.(DashboardModel)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/dealgrid/internal/database"
)

func newTestMainModel(t *testing.T) MainModel {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := database.NewMockRepository(ctrl)
	repo.EXPECT().GetSetting(gomock.Any(), gomock.Any()).Return("", false).AnyTimes()
	repo.EXPECT().LoadViewState(gomock.Any()).Return(database.ViewState{}).AnyTimes()
	repo.EXPECT().GetDeals(gomock.Any()).Return(database.DemoDeals(), nil).AnyTimes()
	repo.EXPECT().SaveViewState(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return NewMainModel(context.Background(), repo)
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestMainModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected ctrl+c to quit")
	}
}

func TestWindowSizePropagates(t *testing.T) {
	m := newTestMainModel(t)
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = nm.(MainModel)
	if m.width != 100 || m.dashboard.width != 100 {
		t.Errorf("window size not propagated: root=%d dashboard=%d", m.width, m.dashboard.width)
	}
}

func TestRootViewDelegates(t *testing.T) {
	m := newTestMainModel(t)
	if m.View() == "" {
		t.Error("expected non-empty view")
	}
}

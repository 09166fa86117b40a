package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/export"
	"github.com/akyairhashvil/dealgrid/internal/grid"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampScroll()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilterMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		case modeDateEdit:
			return m.updateDateEditMode(msg)
		case modeConfirmDelete:
			return m.updateConfirmMode(msg)
		}
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m DashboardModel) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.registry.Handle(m, key); handled {
		return next, cmd
	}
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// newDashboardRegistry wires every normal-mode key to its handler.
func newDashboardRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "up", Description: "move", Handler: handleNavigation})
	for _, key := range []string{"down", "left", "right"} {
		r.Register(KeyBinding{Key: key, Handler: handleNavigation})
	}
	r.Register(KeyBinding{Key: "enter", Description: "edit", Handler: handleEnter})
	r.Register(KeyBinding{Key: "esc", Description: "back", Handler: handleEscape})
	r.Register(KeyBinding{Key: " ", Description: "check", Handler: handleCheckbox})
	r.Register(KeyBinding{Key: "v", Handler: handleSelect})
	r.Register(KeyBinding{Key: "x", Handler: handleToggleSelect})
	r.Register(KeyBinding{Key: "V", Description: "range", Handler: handleRangeSelect})
	r.Register(KeyBinding{Key: "a", Description: "group sel", Handler: handleGroupSelect})
	r.Register(KeyBinding{Key: "c", Handler: handleClearSelection})
	r.Register(KeyBinding{Key: "s", Description: "sort", Handler: handleSort})
	r.Register(KeyBinding{Key: "S", Description: "multi-sort", Handler: handleSort})
	r.Register(KeyBinding{Key: "g", Description: "group", Handler: handleGroupCycle})
	r.Register(KeyBinding{Key: "/", Description: "filter", Handler: handleFilterStart})
	r.Register(KeyBinding{Key: "f", Description: "fav", Handler: handleFavorite})
	r.Register(KeyBinding{Key: "tab", Description: "expand", Handler: handleRowExpand})
	r.Register(KeyBinding{Key: "z", Description: "collapse", Handler: handleGroupExpand})
	r.Register(KeyBinding{Key: "n", Description: "new", Handler: handleNewDeal})
	r.Register(KeyBinding{Key: "d", Description: "dup", Handler: handleDuplicate})
	r.Register(KeyBinding{Key: "D", Description: "del", Handler: handleDeleteStart})
	r.Register(KeyBinding{Key: "w", Description: "stage", Handler: handleStatusCycle})
	r.Register(KeyBinding{Key: "o", Description: "owner", Handler: handleOwnerCycle})
	r.Register(KeyBinding{Key: "e", Description: "close date", Handler: handleDateEditStart})
	r.Register(KeyBinding{Key: "R", Handler: handleColumnsReset})
	r.Register(KeyBinding{Key: "H", Description: "hide col", Handler: handleColumnVisibility})
	r.Register(KeyBinding{Key: "P", Description: "pin", Handler: handleColumnPin})
	r.Register(KeyBinding{Key: "+", Handler: handleColumnResize})
	r.Register(KeyBinding{Key: "-", Handler: handleColumnResize})
	r.Register(KeyBinding{Key: "[", Handler: handleColumnMove})
	r.Register(KeyBinding{Key: "]", Handler: handleColumnMove})
	r.Register(KeyBinding{Key: "u", Handler: handleColumnsShowAll})
	r.Register(KeyBinding{Key: "U", Handler: handleColumnsUnpinAll})
	r.Register(KeyBinding{Key: "t", Description: "theme", Handler: handleThemeToggle})
	r.Register(KeyBinding{Key: "ctrl+e", Description: "csv", Handler: handleExportCSV})
	r.Register(KeyBinding{Key: "ctrl+r", Description: "pdf", Handler: handleExportPDF})
	return r
}

func handleNavigation(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	dirs := map[string]grid.Direction{
		"up": grid.Up, "down": grid.Down, "left": grid.Left, "right": grid.Right,
	}
	dir, ok := dirs[key]
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.Move(m.view, dir)
	m.ensureFocusVisible()
	return m, nil, true
}

func handleEnter(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	st, edit, committed := m.grid.EnterKey(m.view)
	m.grid = st
	if committed {
		m.applyEdit(edit)
		return m, nil, true
	}
	if m.grid.Editing != nil {
		m.editInput.SetValue(m.grid.Buffer)
		m.editInput.CursorEnd()
		m.editInput.Focus()
		m.mode = modeEdit
	}
	return m, nil, true
}

func handleEscape(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.grid = m.grid.EscapeKey()
	return m, nil, true
}

func handleCheckbox(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.SetRowChecked(deal.ID, !m.grid.Selected[deal.ID])
	return m, nil, true
}

func handleSelect(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.ClickRow(m.view, deal.ID, grid.Modifiers{})
	return m, nil, true
}

func handleToggleSelect(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.ClickRow(m.view, deal.ID, grid.Modifiers{Ctrl: true})
	return m, nil, true
}

func handleRangeSelect(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.ClickRow(m.view, deal.ID, grid.Modifiers{Shift: true})
	return m, nil, true
}

func handleGroupSelect(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.grid.Focus == nil {
		return m, nil, false
	}
	gi := m.grid.Focus.Group
	m.grid = m.grid.SetGroupSelected(m.view, gi, !m.grid.GroupFullySelected(m.view, gi))
	return m, nil, true
}

func handleClearSelection(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.grid = m.grid.ClearSelection()
	return m, nil, true
}

func handleSort(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	col, ok := m.focusedColumn()
	if !ok || !col.Sortable {
		return m, nil, false
	}
	m.sorts = query.CycleSort(m.sorts, col.Key, key == "S")
	m.refreshView()
	m.persistView()
	return m, nil, true
}

var groupCycle = []query.GroupBy{
	query.GroupByDefault, query.GroupByNone, query.GroupByStatus,
	query.GroupByOwner, query.GroupByCompany, query.GroupBySource,
}

func handleGroupCycle(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	for i, g := range groupCycle {
		if g == m.groupBy {
			m.groupBy = groupCycle[(i+1)%len(groupCycle)]
			break
		}
	}
	m.refreshView()
	return m, nil, true
}

func handleFilterStart(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.mode = modeFilter
	m.filterInput.Focus()
	return m, textinput.Blink, true
}

func handleFavorite(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.ToggleFavorite(deal.ID)
	return m, nil, true
}

func handleRowExpand(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.grid = m.grid.ToggleRow(deal.ID)
	m.clampScroll()
	return m, nil, true
}

func handleGroupExpand(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.grid.Focus == nil || m.grid.Focus.Group >= len(m.view.Groups) {
		return m, nil, false
	}
	m.grid = m.grid.ToggleGroup(m.view.Groups[m.grid.Focus.Group].Name)
	m.clampScroll()
	return m, nil, true
}

func handleNewDeal(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal := models.Deal{
		DealName:    "New Deal",
		Status:      models.StatusNew,
		Probability: 50,
	}
	stored, err := m.repo.InsertDeal(m.ctx, deal)
	if err != nil {
		util.LogError("insert deal", err)
		m.Message = fmt.Sprintf("Create failed: %v", err)
		return m, nil, true
	}
	m.reloadDeals()
	m.refreshView()
	m.Message = fmt.Sprintf("Created %q", stored.DealName)
	return m, nil, true
}

func handleDuplicate(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	dup, err := m.repo.DuplicateDeal(m.ctx, deal.ID)
	if err != nil {
		util.LogError("duplicate deal", err)
		m.Message = fmt.Sprintf("Duplicate failed: %v", err)
		return m, nil, true
	}
	m.reloadDeals()
	m.refreshView()
	m.Message = fmt.Sprintf("Duplicated as %q", dup.DealName)
	return m, nil, true
}

func handleDeleteStart(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	ids := m.grid.SelectedIDs(m.view)
	if len(ids) == 0 {
		deal, ok := m.focusedDeal()
		if !ok {
			return m, nil, false
		}
		ids = []string{deal.ID}
	}
	m.pendingDelete = ids
	m.mode = modeConfirmDelete
	return m, nil, true
}

var statusCycle = []models.DealStatus{
	models.StatusNew, models.StatusQualified, models.StatusProposal,
	models.StatusWon, models.StatusLost,
}

func handleStatusCycle(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	for i, s := range statusCycle {
		if s == deal.Status {
			deal.Status = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}
	if err := m.repo.UpdateDeal(m.ctx, deal); err != nil {
		util.LogError("update deal", err)
		m.Message = fmt.Sprintf("Update failed: %v", err)
		return m, nil, true
	}
	m.reloadDeals()
	m.refreshView()
	return m, nil, true
}

// handleOwnerCycle reassigns the focused deal to the next distinct owner in
// the collection, a typed setter rather than a free-text edit.
func handleOwnerCycle(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	owners := distinctOwners(m.deals)
	if len(owners) < 2 {
		return m, nil, true
	}
	for i, o := range owners {
		if o == deal.Owner {
			deal.Owner = owners[(i+1)%len(owners)]
			break
		}
	}
	if err := m.repo.UpdateDeal(m.ctx, deal); err != nil {
		util.LogError("update deal", err)
		m.Message = fmt.Sprintf("Update failed: %v", err)
		return m, nil, true
	}
	m.reloadDeals()
	m.refreshView()
	return m, nil, true
}

func distinctOwners(deals []models.Deal) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range deals {
		if d.Owner != "" && !seen[d.Owner] {
			seen[d.Owner] = true
			out = append(out, d.Owner)
		}
	}
	return out
}

func handleDateEditStart(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	deal, ok := m.focusedDeal()
	if !ok {
		return m, nil, false
	}
	m.dateEditID = deal.ID
	m.editInput.SetValue(deal.ExpectedCloseDate)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.mode = modeDateEdit
	return m, textinput.Blink, true
}

func handleColumnsReset(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cols = columns.Defaults()
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleColumnVisibility(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	col, ok := m.focusedColumn()
	if !ok {
		return m, nil, false
	}
	m.cols = columns.ToggleVisibility(m.cols, col.Key)
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleColumnPin(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	col, ok := m.focusedColumn()
	if !ok {
		return m, nil, false
	}
	m.cols = columns.TogglePin(m.cols, col.Key)
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleColumnResize(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	col, ok := m.focusedColumn()
	if !ok {
		return m, nil, false
	}
	delta := 40
	if key == "-" {
		delta = -40
	}
	m.cols = columns.Resize(m.cols, col.Key, col.Width+delta)
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleColumnMove(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	col, ok := m.focusedColumn()
	if !ok {
		return m, nil, false
	}
	from := -1
	for i, c := range m.cols {
		if c.Key == col.Key {
			from = i
			break
		}
	}
	if from < 0 {
		return m, nil, false
	}
	to := from + 1
	if key == "[" {
		to = from - 1
	}
	m.cols = columns.Reorder(m.cols, from, to)
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleColumnsShowAll(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cols = columns.ShowAll(m.cols)
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleColumnsUnpinAll(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.cols = columns.UnpinAll(m.cols)
	m.refreshView()
	m.persistView()
	return m, nil, true
}

func handleThemeToggle(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.themeName == "default" {
		m.themeName = "dracula"
	} else {
		m.themeName = "default"
	}
	SetTheme(m.themeName)
	if err := m.repo.SetSetting(m.ctx, config.ThemeKey, m.themeName); err != nil {
		util.LogError("save theme", err)
	}
	return m, nil, true
}

func handleExportCSV(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	path, err := export.CSVToFile(m.view.Groups, m.view.Columns)
	if err != nil {
		util.LogError("export csv", err)
		m.Message = fmt.Sprintf("Export failed: %v", err)
	} else {
		m.Message = fmt.Sprintf("Export saved: %s", path)
	}
	return m, nil, true
}

func handleExportPDF(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	path, err := export.PDFToFile(m.view.Groups, m.view.Columns)
	if err != nil {
		util.LogError("export pdf", err)
		m.Message = fmt.Sprintf("Export failed: %v", err)
	} else {
		m.Message = fmt.Sprintf("Export saved: %s", path)
	}
	return m, nil, true
}

func (m DashboardModel) focusedColumn() (columns.ColumnConfig, bool) {
	if m.grid.Focus == nil || m.grid.Focus.Col < 0 || m.grid.Focus.Col >= len(m.view.Columns) {
		return columns.ColumnConfig{}, false
	}
	return m.view.Columns[m.grid.Focus.Col], true
}

// applyEdit writes a committed cell edit through to the store and re-derives.
func (m *DashboardModel) applyEdit(e grid.Edit) {
	for i := range m.deals {
		if m.deals[i].ID != e.DealID {
			continue
		}
		models.Set(&m.deals[i], e.Field, e.Raw)
		if err := m.repo.UpdateDeal(m.ctx, m.deals[i]); err != nil {
			util.LogError("update deal", err)
			m.Message = fmt.Sprintf("Update failed: %v", err)
		}
		break
	}
	m.refreshView()
}

func (m DashboardModel) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyFilterQuery(m.filterInput.Value())
		m.filterInput.Blur()
		m.mode = modeNormal
		m.refreshView()
		return m, nil
	case "esc":
		m.filterInput.Blur()
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.grid = m.grid.SetBuffer(m.editInput.Value())
		st, edit, committed := m.grid.CommitEdit()
		m.grid = st
		if committed {
			m.applyEdit(edit)
		}
		m.editInput.Blur()
		m.mode = modeNormal
		return m, nil
	case "esc":
		m.grid = m.grid.CancelEdit()
		m.editInput.Blur()
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.grid = m.grid.SetBuffer(m.editInput.Value())
	return m, cmd
}

func (m DashboardModel) updateDateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyEdit(grid.Edit{
			DealID: m.dateEditID,
			Field:  models.FieldExpectedCloseDate,
			Raw:    strings.TrimSpace(m.editInput.Value()),
		})
		m.dateEditID = ""
		m.editInput.Blur()
		m.mode = modeNormal
		return m, nil
	case "esc":
		m.dateEditID = ""
		m.editInput.Blur()
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		ids := m.pendingDelete
		if err := m.repo.DeleteDeals(m.ctx, ids); err != nil {
			util.LogError("delete deals", err)
			m.Message = fmt.Sprintf("Delete failed: %v", err)
		} else {
			m.grid = m.grid.DropSelected(ids)
			m.reloadDeals()
			m.Message = fmt.Sprintf("Deleted %d deal(s)", len(ids))
		}
		m.pendingDelete = nil
		m.mode = modeNormal
		m.refreshView()
		return m, nil
	default:
		m.pendingDelete = nil
		m.mode = modeNormal
		return m, nil
	}
}

func (m DashboardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll -= 3
		m.clampScroll()
	case tea.MouseButtonWheelDown:
		m.scroll += 3
		m.clampScroll()
	case tea.MouseButtonLeft:
		return m.handleClick(msg), nil
	}
	return m, nil
}

// handleClick maps a click to the header, a group header, or a row cell
// using the same layout the renderer draws from.
func (m DashboardModel) handleClick(msg tea.MouseMsg) DashboardModel {
	if msg.Y == headerLines-1 {
		ci, ok := m.colAt(msg.X)
		if !ok || !m.view.Columns[ci].Sortable {
			return m
		}
		m.sorts = query.CycleSort(m.sorts, m.view.Columns[ci].Key, msg.Shift)
		m.refreshView()
		m.persistView()
		return m
	}
	if msg.Y < headerLines {
		return m
	}
	layout := m.bodyLayout()
	idx := m.scroll + msg.Y - headerLines
	if idx < 0 || idx >= len(layout) {
		return m
	}
	ref := layout[idx]
	switch ref.kind {
	case lineGroupHeader:
		m.grid = m.grid.ToggleGroup(m.view.Groups[ref.group].Name)
		m.clampScroll()
	case lineRow:
		deal, ok := m.view.DealAt(ref.group, ref.row)
		if !ok {
			return m
		}
		if ci, ok := m.colAt(msg.X); ok {
			m.grid = m.grid.FocusCell(m.view, grid.Coord{Group: ref.group, Row: ref.row, Col: ci})
		}
		m.grid = m.grid.ClickRow(m.view, deal.ID, grid.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift})
	}
	return m
}

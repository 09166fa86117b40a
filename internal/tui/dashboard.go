package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/database"
	"github.com/akyairhashvil/dealgrid/internal/grid"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

// Input modes. Normal mode routes keys through the handler registry; the
// other modes capture keystrokes into a text input or a confirm prompt.
type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
	modeEdit
	modeDateEdit
	modeConfirmDelete
)

// DashboardModel is the deals grid screen. The deal collection, the filter,
// sort and group config, and the column registry are the inputs; the derived
// view and the interaction state are recomputed from them after every change.
type DashboardModel struct {
	ctx  context.Context
	repo database.Repository

	deals   []models.Deal
	filter  query.FilterConfig
	sorts   []query.SortKey
	groupBy query.GroupBy
	cols    []columns.ColumnConfig

	grid grid.State
	view grid.View

	mode          inputMode
	filterInput   textinput.Model
	editInput     textinput.Model
	pendingDelete []string
	dateEditID    string

	registry   *HandlerRegistry
	seenGroups map[string]bool

	themeName     string
	Message       string
	err           error
	width, height int
	scroll        int
}

func NewDashboardModel(ctx context.Context, repo database.Repository) DashboardModel {
	fi := textinput.New()
	fi.Placeholder = `status:won owner:"Sam Jones" min:1000 max:90000 free text`
	fi.Width = 60

	ei := textinput.New()
	ei.Width = 30

	m := DashboardModel{
		ctx:         ctx,
		repo:        repo,
		filterInput: fi,
		editInput:   ei,
		groupBy:     query.GroupByDefault,
		grid:        grid.NewState(),
		seenGroups:  make(map[string]bool),
		themeName:   "default",
	}

	if name, ok := repo.GetSetting(ctx, config.ThemeKey); ok {
		m.themeName = name
	}
	SetTheme(m.themeName)

	vs := repo.LoadViewState(ctx)
	m.sorts = vs.Sorts
	if len(vs.Columns) > 0 {
		m.cols = vs.Columns
	} else {
		m.cols = columns.Defaults()
	}

	m.registry = newDashboardRegistry()
	m.reloadDeals()
	m.refreshView()
	return m
}

func (m *DashboardModel) reloadDeals() {
	deals, err := m.repo.GetDeals(m.ctx)
	if err != nil {
		util.LogError("load deals", err)
		m.err = err
		return
	}
	m.deals = deals
}

// refreshView re-derives the grouped view and reconciles the interaction
// state against it. Groups appearing for the first time start expanded.
func (m *DashboardModel) refreshView() {
	groups := query.Derive(m.deals, m.filter, m.sorts, m.groupBy)
	for _, g := range groups {
		if !m.seenGroups[g.Name] {
			m.seenGroups[g.Name] = true
			m.grid.ExpandedGroups[g.Name] = true
		}
	}
	m.view = grid.View{Groups: groups, Columns: columns.Display(m.cols)}
	m.grid = m.grid.Reconcile(m.view)
	m.clampScroll()
}

// persistView snapshots the sort config and column registry. The write is
// fire-and-forget: a failed save only logs.
func (m *DashboardModel) persistView() {
	err := m.repo.SaveViewState(m.ctx, database.ViewState{Sorts: m.sorts, Columns: m.cols})
	if err != nil {
		util.LogError("save view state", err)
	}
}

func (m *DashboardModel) applyFilterQuery(raw string) {
	q := util.ParseFilterQuery(raw)
	f := query.FilterConfig{
		Owners:   q.Owner,
		ValueMin: q.Min,
		ValueMax: q.Max,
	}
	for _, s := range q.Status {
		f.Statuses = append(f.Statuses, models.DealStatus(s))
	}
	if len(q.Text) > 0 {
		f.Search = strings.Join(q.Text, " ")
	}
	m.filter = f
}

// focusedDeal resolves the deal under the focus coordinate, if any.
func (m DashboardModel) focusedDeal() (models.Deal, bool) {
	if m.grid.Focus == nil {
		return models.Deal{}, false
	}
	return m.view.DealAt(m.grid.Focus.Group, m.grid.Focus.Row)
}

// Body layout. Rendering and mouse resolution both walk the same line
// sequence, so a click can be mapped back to the group or row it landed on.

type lineKind int

const (
	lineGroupHeader lineKind = iota
	lineRow
	lineActivity
	lineNotes
)

type lineRef struct {
	kind  lineKind
	group int
	row   int
	act   int
}

func (m DashboardModel) bodyLayout() []lineRef {
	var out []lineRef
	for gi := range m.view.Groups {
		g := &m.view.Groups[gi]
		out = append(out, lineRef{kind: lineGroupHeader, group: gi})
		if !m.grid.ExpandedGroups[g.Name] {
			continue
		}
		for ri := range g.Deals {
			out = append(out, lineRef{kind: lineRow, group: gi, row: ri})
			if m.grid.ExpandedRows[g.Deals[ri].ID] {
				if g.Deals[ri].Notes != "" {
					out = append(out, lineRef{kind: lineNotes, group: gi, row: ri})
				}
				for ai := range g.Deals[ri].Activities {
					out = append(out, lineRef{kind: lineActivity, group: gi, row: ri, act: ai})
				}
			}
		}
	}
	return out
}

// Fixed chrome around the scrolling body.
const (
	headerLines = 3 // title, filter line, column headers
	footerLines = 2 // totals bar, help/message line
)

func (m DashboardModel) bodyHeight() int {
	h := m.height - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *DashboardModel) clampScroll() {
	max := len(m.bodyLayout()) - m.bodyHeight()
	if max < 0 {
		max = 0
	}
	m.scroll = util.Clamp(m.scroll, 0, max)
}

// ensureFocusVisible scrolls the body so the focused row stays on screen.
func (m *DashboardModel) ensureFocusVisible() {
	if m.grid.Focus == nil {
		return
	}
	layout := m.bodyLayout()
	for i, ref := range layout {
		if ref.kind == lineRow && ref.group == m.grid.Focus.Group && ref.row == m.grid.Focus.Row {
			if i < m.scroll {
				m.scroll = i
			} else if i >= m.scroll+m.bodyHeight() {
				m.scroll = i - m.bodyHeight() + 1
			}
			return
		}
	}
}

// Terminal cell widths. Column widths are stored in the registry's pixel
// scale; the terminal renders them at an eighth of that.
const rowGutterWidth = 6 // checkbox, favorite marker, expansion caret

func colWidth(c columns.ColumnConfig) int {
	w := c.Width / 8
	if w < 8 {
		w = 8
	}
	return w
}

// colAt resolves a terminal x offset to a display column index.
func (m DashboardModel) colAt(x int) (int, bool) {
	x -= rowGutterWidth
	if x < 0 {
		return 0, false
	}
	for i, c := range m.view.Columns {
		w := colWidth(c) + 1
		if x < w {
			return i, true
		}
		x -= w
	}
	return 0, false
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

var groupByLabels = map[query.GroupBy]string{
	query.GroupByDefault: "stage split",
	query.GroupByNone:    "none",
	query.GroupByStatus:  "status",
	query.GroupByOwner:   "owner",
	query.GroupByCompany: "company",
	query.GroupBySource:  "source",
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")
	b.WriteString(m.renderColumnHeaders())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString(m.renderTotals())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m DashboardModel) renderTitle() string {
	total := len(m.deals)
	shown := len(query.Flatten(m.view.Groups))
	title := fmt.Sprintf("Deal Pipeline  %d/%d deals  grouping: %s",
		shown, total, groupByLabels[m.groupBy])
	if n := len(m.grid.SelectedIDs(m.view)); n > 0 {
		title += fmt.Sprintf("  selected: %d", n)
	}
	return CurrentTheme.Header.Render(title)
}

func (m DashboardModel) renderFilterLine() string {
	if m.mode == modeFilter {
		return "Filter: " + m.filterInput.View()
	}
	var parts []string
	if len(m.filter.Statuses) > 0 {
		var names []string
		for _, s := range m.filter.Statuses {
			names = append(names, s.Label())
		}
		parts = append(parts, "status: "+strings.Join(names, ","))
	}
	if len(m.filter.Owners) > 0 {
		parts = append(parts, "owner: "+strings.Join(m.filter.Owners, ","))
	}
	if m.filter.ValueMin != nil {
		parts = append(parts, fmt.Sprintf("min: %s", models.FormatCurrency(*m.filter.ValueMin)))
	}
	if m.filter.ValueMax != nil {
		parts = append(parts, fmt.Sprintf("max: %s", models.FormatCurrency(*m.filter.ValueMax)))
	}
	if m.filter.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.filter.Search))
	}
	if len(parts) == 0 {
		return CurrentTheme.Dim.Render("No filters. Press / to filter.")
	}
	return CurrentTheme.Highlight.Render(strings.Join(parts, "  "))
}

func (m DashboardModel) renderColumnHeaders() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowGutterWidth))
	for _, c := range m.view.Columns {
		title := c.Title
		if marker := SortMarker(m.sorts, c.Key); marker != "" {
			title += " " + marker
		}
		style := CurrentTheme.ColumnHeader
		if c.Pinned {
			style = CurrentTheme.PinnedHeader
		}
		b.WriteString(style.Render(padCell(title, colWidth(c))))
		b.WriteString(" ")
	}
	return b.String()
}

func (m DashboardModel) renderBody() string {
	layout := m.bodyLayout()
	height := m.bodyHeight()
	var b strings.Builder
	for i := m.scroll; i < len(layout) && i < m.scroll+height; i++ {
		ref := layout[i]
		switch ref.kind {
		case lineGroupHeader:
			b.WriteString(m.renderGroupHeader(ref.group))
		case lineRow:
			b.WriteString(m.renderRow(ref.group, ref.row))
		case lineActivity:
			b.WriteString(m.renderActivity(ref.group, ref.row, ref.act))
		case lineNotes:
			b.WriteString(m.renderNotes(ref.group, ref.row))
		}
		b.WriteString("\n")
	}
	if len(layout) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("Nothing to show."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderGroupHeader(gi int) string {
	g := &m.view.Groups[gi]
	caret := "▸"
	if m.grid.ExpandedGroups[g.Name] {
		caret = "▾"
	}
	check := " "
	if m.grid.GroupFullySelected(m.view, gi) {
		check = "✓"
	}
	line := fmt.Sprintf("%s [%s] %s (%d)  %s",
		caret, check, g.Name, g.Total, models.FormatCurrency(g.TotalValue))
	return CurrentTheme.GroupHeader.Render(line)
}

func (m DashboardModel) renderRow(gi, ri int) string {
	deal, ok := m.view.DealAt(gi, ri)
	if !ok {
		return ""
	}
	selected := m.grid.Selected[deal.ID]

	check := " "
	if selected {
		check = "x"
	}
	fav := " "
	if m.grid.Favorites[deal.ID] {
		fav = "★"
	}
	caret := " "
	if len(deal.Activities) > 0 {
		caret = "▸"
		if m.grid.ExpandedRows[deal.ID] {
			caret = "▾"
		}
	}
	gutter := fmt.Sprintf("[%s]%s%s ", check, CurrentTheme.Favorite.Render(fav), caret)

	var b strings.Builder
	b.WriteString(gutter)
	for ci, c := range m.view.Columns {
		b.WriteString(m.renderCell(&deal, gi, ri, ci, c.Key, colWidth(c), selected))
		b.WriteString(" ")
	}
	return b.String()
}

func (m DashboardModel) renderCell(deal *models.Deal, gi, ri, ci int, field models.Field, width int, selected bool) string {
	editing := m.grid.Editing != nil &&
		m.grid.Editing.DealID == deal.ID && m.grid.Editing.Field == field
	if editing {
		return CurrentTheme.EditingCell.Render(padCell(m.editInput.View(), width))
	}

	text := padCell(models.Format(deal, field), width)
	focused := m.grid.Focus != nil &&
		m.grid.Focus.Group == gi && m.grid.Focus.Row == ri && m.grid.Focus.Col == ci
	switch {
	case focused:
		return CurrentTheme.FocusedCell.Render(text)
	case selected:
		return CurrentTheme.SelectedRow.Render(text)
	case field == models.FieldStatus:
		return StatusStyle(deal.Status).Render(text)
	default:
		return CurrentTheme.Cell.Render(text)
	}
}

func (m DashboardModel) renderActivity(gi, ri, ai int) string {
	deal, ok := m.view.DealAt(gi, ri)
	if !ok || ai >= len(deal.Activities) {
		return ""
	}
	a := deal.Activities[ai]
	line := fmt.Sprintf("      · %s %s %s (%s)", a.Date, a.Type, a.Description, a.User)
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return CurrentTheme.Activity.Render(line)
}

func (m DashboardModel) renderNotes(gi, ri int) string {
	deal, ok := m.view.DealAt(gi, ri)
	if !ok {
		return ""
	}
	line := "      note: " + deal.Notes
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return CurrentTheme.Activity.Render(line)
}

func (m DashboardModel) renderTotals() string {
	return CurrentTheme.Totals.Render(FormatTotals(query.Aggregate(query.Flatten(m.view.Groups))))
}

func (m DashboardModel) renderFooter() string {
	switch m.mode {
	case modeConfirmDelete:
		return CurrentTheme.Highlight.Render(
			fmt.Sprintf("Delete %d deal(s)? (y/n)", len(m.pendingDelete)))
	case modeEdit:
		return CurrentTheme.Dim.Render("editing: enter to commit, esc to cancel")
	case modeDateEdit:
		return "Close date (YYYY-MM-DD): " + m.editInput.View()
	case modeFilter:
		return CurrentTheme.Dim.Render("filter: enter to apply, esc to close")
	}
	if m.Message != "" {
		return CurrentTheme.Highlight.Render(m.Message)
	}
	help := m.registry.Help()
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, "…")
	}
	return CurrentTheme.Dim.Render(help)
}

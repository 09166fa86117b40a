package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

// StatusStyle maps a pipeline stage to its themed style.
func StatusStyle(s models.DealStatus) lipgloss.Style {
	switch s {
	case models.StatusNew:
		return CurrentTheme.StatusNew
	case models.StatusQualified:
		return CurrentTheme.StatusQualified
	case models.StatusProposal:
		return CurrentTheme.StatusProposal
	case models.StatusWon:
		return CurrentTheme.StatusWon
	case models.StatusLost:
		return CurrentTheme.StatusLost
	}
	return CurrentTheme.Cell
}

// SortMarker renders the header indicator for a column: direction arrow plus
// the key's position when the config holds more than one key.
func SortMarker(sorts []query.SortKey, key models.Field) string {
	for i, s := range sorts {
		if s.Key != key {
			continue
		}
		arrow := "↑"
		if s.Direction == query.Desc {
			arrow = "↓"
		}
		if len(sorts) > 1 {
			return fmt.Sprintf("%s%d", arrow, i+1)
		}
		return arrow
	}
	return ""
}

// FormatTotals renders the totals bar figures.
func FormatTotals(t query.Totals) string {
	if t.Count == 0 {
		return "No deals match the current filters"
	}
	return fmt.Sprintf("%d deals  |  Total: %s  |  Weighted: %s  |  Avg prob: %.0f%%",
		t.Count, models.FormatCurrency(t.ValueSum),
		models.FormatCurrency(t.WeightedValue), t.AvgProb)
}

// padCell fits text to an exact display width, truncating with an ellipsis
// when it is too long.
func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	out := ansi.Truncate(text, width, "…")
	if pad := width - ansi.StringWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}

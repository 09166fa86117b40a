package tui

import (
	"testing"

	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

func TestSortMarker(t *testing.T) {
	single := []query.SortKey{{Key: models.FieldValue, Direction: query.Desc}}
	if got := SortMarker(single, models.FieldValue); got != "↓" {
		t.Errorf("single-key marker = %q", got)
	}
	if got := SortMarker(single, models.FieldOwner); got != "" {
		t.Errorf("unsorted column marker = %q", got)
	}

	multi := []query.SortKey{
		{Key: models.FieldOwner, Direction: query.Asc},
		{Key: models.FieldValue, Direction: query.Desc},
	}
	if got := SortMarker(multi, models.FieldValue); got != "↓2" {
		t.Errorf("multi-key marker = %q", got)
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("abc", 5); got != "abc  " {
		t.Errorf("padCell short = %q", got)
	}
	if got := padCell("abcdefgh", 5); got != "abcd…" {
		t.Errorf("padCell long = %q", got)
	}
	if got := padCell("abc", 0); got != "" {
		t.Errorf("padCell zero width = %q", got)
	}
}

func TestFormatTotalsEmpty(t *testing.T) {
	if got := FormatTotals(query.Totals{}); got != "No deals match the current filters" {
		t.Errorf("empty totals = %q", got)
	}
}

// Package columns manages the grid's column registry. Registry order is the
// authored order; the displayed sequence puts visible pinned columns first.
// All operations are pure and return a new registry.
package columns

import (
	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

// ColumnConfig describes one grid column.
type ColumnConfig struct {
	Key       models.Field `json:"key"`
	Title     string       `json:"title"`
	Width     int          `json:"width"`
	Visible   bool         `json:"visible"`
	Sortable  bool         `json:"sortable"`
	Resizable bool         `json:"resizable"`
	Pinned    bool         `json:"pinned"`
}

// Defaults is the factory registry order.
func Defaults() []ColumnConfig {
	return []ColumnConfig{
		{Key: models.FieldDealName, Title: "Deal Name", Width: 200, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldCompany, Title: "Company", Width: 150, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldOwner, Title: "Owner", Width: 120, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldStatus, Title: "Status", Width: 100, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldValue, Title: "Value", Width: 120, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldProbability, Title: "Probability", Width: 100, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldExpectedCloseDate, Title: "Close Date", Width: 120, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldLastActivity, Title: "Last Activity", Width: 120, Visible: true, Sortable: true, Resizable: true},
		{Key: models.FieldSource, Title: "Source", Width: 120, Visible: true, Sortable: true, Resizable: true},
	}
}

func clone(cols []ColumnConfig) []ColumnConfig {
	return append([]ColumnConfig(nil), cols...)
}

// ToggleVisibility flips one column's visible flag. Registry order is unchanged.
func ToggleVisibility(cols []ColumnConfig, key models.Field) []ColumnConfig {
	out := clone(cols)
	for i := range out {
		if out[i].Key == key {
			out[i].Visible = !out[i].Visible
		}
	}
	return out
}

// Reorder moves the entry at from to position to, preserving all other
// relative orders. Out-of-range indices leave the registry unchanged.
func Reorder(cols []ColumnConfig, from, to int) []ColumnConfig {
	out := clone(cols)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]ColumnConfig{moved}, out[to:]...)...)
	return out
}

// Resize sets a column's width, clamped to the minimum.
func Resize(cols []ColumnConfig, key models.Field, width int) []ColumnConfig {
	out := clone(cols)
	for i := range out {
		if out[i].Key == key && out[i].Resizable {
			out[i].Width = util.Clamp(width, config.MinColumnWidth, 1<<15)
		}
	}
	return out
}

// TogglePin flips a column's pinned flag without touching registry order.
func TogglePin(cols []ColumnConfig, key models.Field) []ColumnConfig {
	out := clone(cols)
	for i := range out {
		if out[i].Key == key {
			out[i].Pinned = !out[i].Pinned
		}
	}
	return out
}

// ShowAll makes every column visible.
func ShowAll(cols []ColumnConfig) []ColumnConfig {
	out := clone(cols)
	for i := range out {
		out[i].Visible = true
	}
	return out
}

// UnpinAll clears every pinned flag.
func UnpinAll(cols []ColumnConfig) []ColumnConfig {
	out := clone(cols)
	for i := range out {
		out[i].Pinned = false
	}
	return out
}

// Display is the effective column sequence: visible pinned columns in
// registry order, then visible unpinned columns in registry order. Focus
// coordinates index into this sequence, never into the raw registry.
func Display(cols []ColumnConfig) []ColumnConfig {
	out := make([]ColumnConfig, 0, len(cols))
	for _, c := range cols {
		if c.Visible && c.Pinned {
			out = append(out, c)
		}
	}
	for _, c := range cols {
		if c.Visible && !c.Pinned {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the registry entry for key.
func Find(cols []ColumnConfig, key models.Field) (ColumnConfig, bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return ColumnConfig{}, false
}

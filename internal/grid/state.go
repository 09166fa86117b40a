// Package grid holds the interaction state of the deals grid: row selection,
// the focused cell, the in-progress edit, and row/group expansion. The state
// slices are orthogonal but interact, so every transition is a pure
// (State, event) -> State function over the current derived view, which keeps
// the whole machine testable without a terminal.
package grid

import (
	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

// View is the derived structure a transition interprets events against:
// the grouped deals plus the displayed column sequence. Focus coordinates
// are indices into exactly these two sequences.
type View struct {
	Groups  []query.DealGroup
	Columns []columns.ColumnConfig
}

// DealAt resolves a (group, row) pair, if it exists.
func (v View) DealAt(group, row int) (models.Deal, bool) {
	if group < 0 || group >= len(v.Groups) {
		return models.Deal{}, false
	}
	g := v.Groups[group]
	if row < 0 || row >= len(g.Deals) {
		return models.Deal{}, false
	}
	return g.Deals[row], true
}

// Coord is the 2-D focus coordinate into the derived view.
type Coord struct {
	Group, Row, Col int
}

// EditPointer identifies the cell being edited. It is keyed by deal id, not
// by coordinate, so a re-derivation cannot silently retarget the edit.
type EditPointer struct {
	DealID string
	Field  models.Field
}

// Edit is a committed edit handed back to the caller for application to the
// deal collection.
type Edit struct {
	DealID string
	Field  models.Field
	Raw    string
}

// Modifiers are the click modifier flags.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// Direction of an arrow-key move.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// State is the full interaction state. Values are immutable from the
// caller's perspective: transitions return a new State and share unmodified
// sets with the old one.
type State struct {
	Selected       map[string]bool
	Anchor         string // last explicitly selected row id
	Focus          *Coord
	Editing        *EditPointer
	Buffer         string
	ExpandedRows   map[string]bool
	ExpandedGroups map[string]bool
	Favorites      map[string]bool
}

// NewState returns the empty interaction state with the given groups
// expanded by default.
func NewState(expandedGroups ...string) State {
	s := State{
		Selected:       map[string]bool{},
		ExpandedRows:   map[string]bool{},
		ExpandedGroups: map[string]bool{},
		Favorites:      map[string]bool{},
	}
	for _, g := range expandedGroups {
		s.ExpandedGroups[g] = true
	}
	return s
}

func cloneSet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k, v := range set {
		if v {
			out[k] = true
		}
	}
	return out
}

// ClickRow applies the row-click selection rules.
//
// Plain click replaces the selection and moves the anchor. Ctrl-click
// toggles membership and moves the anchor. Shift-click unions the flattened
// display-order range between the anchor and the clicked row into the
// selection without moving the anchor, so consecutive shift-clicks extend
// from the same origin.
func (s State) ClickRow(v View, dealID string, mods Modifiers) State {
	switch {
	case mods.Ctrl:
		out := s
		out.Selected = cloneSet(s.Selected)
		if out.Selected[dealID] {
			delete(out.Selected, dealID)
		} else {
			out.Selected[dealID] = true
		}
		out.Anchor = dealID
		return out
	case mods.Shift:
		if s.Anchor == "" {
			return s.selectSingle(dealID)
		}
		flat := query.Flatten(v.Groups)
		anchorIdx, clickIdx := -1, -1
		for i := range flat {
			if flat[i].ID == s.Anchor {
				anchorIdx = i
			}
			if flat[i].ID == dealID {
				clickIdx = i
			}
		}
		if anchorIdx < 0 || clickIdx < 0 {
			return s.selectSingle(dealID)
		}
		lo, hi := anchorIdx, clickIdx
		if lo > hi {
			lo, hi = hi, lo
		}
		out := s
		out.Selected = cloneSet(s.Selected)
		for i := lo; i <= hi; i++ {
			out.Selected[flat[i].ID] = true
		}
		return out
	default:
		return s.selectSingle(dealID)
	}
}

func (s State) selectSingle(dealID string) State {
	out := s
	out.Selected = map[string]bool{dealID: true}
	out.Anchor = dealID
	return out
}

// SetRowChecked sets one row's membership, as a checkbox does, and moves
// the anchor to it.
func (s State) SetRowChecked(dealID string, checked bool) State {
	out := s
	out.Selected = cloneSet(s.Selected)
	if checked {
		out.Selected[dealID] = true
	} else {
		delete(out.Selected, dealID)
	}
	out.Anchor = dealID
	return out
}

// SetGroupSelected adds or removes every deal of one group, leaving rows
// outside the group untouched.
func (s State) SetGroupSelected(v View, group int, selected bool) State {
	if group < 0 || group >= len(v.Groups) {
		return s
	}
	out := s
	out.Selected = cloneSet(s.Selected)
	for _, d := range v.Groups[group].Deals {
		if selected {
			out.Selected[d.ID] = true
		} else {
			delete(out.Selected, d.ID)
		}
	}
	return out
}

// GroupFullySelected reports whether every deal of a non-empty group is selected.
func (s State) GroupFullySelected(v View, group int) bool {
	if group < 0 || group >= len(v.Groups) || len(v.Groups[group].Deals) == 0 {
		return false
	}
	for _, d := range v.Groups[group].Deals {
		if !s.Selected[d.ID] {
			return false
		}
	}
	return true
}

// ClearSelection empties the selection and drops the anchor.
func (s State) ClearSelection() State {
	out := s
	out.Selected = map[string]bool{}
	out.Anchor = ""
	return out
}

// DropSelected removes the given ids from the selection and, if the anchor
// is among them, drops the anchor. Used after deletes.
func (s State) DropSelected(ids []string) State {
	out := s
	out.Selected = cloneSet(s.Selected)
	for _, id := range ids {
		delete(out.Selected, id)
		if out.Anchor == id {
			out.Anchor = ""
		}
	}
	return out
}

// SelectedIDs returns the selected ids in flattened display order.
func (s State) SelectedIDs(v View) []string {
	var out []string
	for _, d := range query.Flatten(v.Groups) {
		if s.Selected[d.ID] {
			out = append(out, d.ID)
		}
	}
	return out
}

// ToggleRow flips one row's expansion, independent of selection and focus.
func (s State) ToggleRow(dealID string) State {
	out := s
	out.ExpandedRows = cloneSet(s.ExpandedRows)
	if out.ExpandedRows[dealID] {
		delete(out.ExpandedRows, dealID)
	} else {
		out.ExpandedRows[dealID] = true
	}
	return out
}

// ToggleGroup flips one group's expansion.
func (s State) ToggleGroup(name string) State {
	out := s
	out.ExpandedGroups = cloneSet(s.ExpandedGroups)
	if out.ExpandedGroups[name] {
		delete(out.ExpandedGroups, name)
	} else {
		out.ExpandedGroups[name] = true
	}
	return out
}

// ToggleFavorite flips one deal's favorite mark.
func (s State) ToggleFavorite(dealID string) State {
	out := s
	out.Favorites = cloneSet(s.Favorites)
	if out.Favorites[dealID] {
		delete(out.Favorites, dealID)
	} else {
		out.Favorites[dealID] = true
	}
	return out
}

package grid

import "github.com/akyairhashvil/dealgrid/internal/models"

// FocusCell points the focus at an explicit coordinate. Coordinates outside
// the view clear the focus instead of dangling.
func (s State) FocusCell(v View, c Coord) State {
	out := s
	if _, ok := v.DealAt(c.Group, c.Row); !ok || c.Col < 0 || c.Col >= len(v.Columns) {
		out.Focus = nil
		return out
	}
	out.Focus = &c
	return out
}

// ClearFocus drops the focus coordinate.
func (s State) ClearFocus() State {
	out := s
	out.Focus = nil
	return out
}

// Move advances the focus one step. Rows cross group boundaries (down past a
// group's last row lands on row 0 of the next group, up mirrors that);
// columns clamp at the displayed sequence's edges. A move with no focused
// cell snaps to the view origin. Structural boundaries are no-ops.
func (s State) Move(v View, dir Direction) State {
	if len(v.Groups) == 0 || len(v.Columns) == 0 {
		return s
	}
	out := s
	if s.Focus == nil {
		if _, ok := v.DealAt(0, 0); !ok {
			// First group may be empty; fall through to the first
			// group that has rows.
			for gi := range v.Groups {
				if len(v.Groups[gi].Deals) > 0 {
					out.Focus = &Coord{Group: gi}
					return out
				}
			}
			return s
		}
		out.Focus = &Coord{}
		return out
	}

	c := *s.Focus
	switch dir {
	case Left:
		if c.Col > 0 {
			c.Col--
		}
	case Right:
		if c.Col < len(v.Columns)-1 {
			c.Col++
		}
	case Down:
		if c.Row < len(v.Groups[c.Group].Deals)-1 {
			c.Row++
		} else {
			for gi := c.Group + 1; gi < len(v.Groups); gi++ {
				if len(v.Groups[gi].Deals) > 0 {
					c.Group, c.Row = gi, 0
					break
				}
			}
		}
	case Up:
		if c.Row > 0 {
			c.Row--
		} else {
			for gi := c.Group - 1; gi >= 0; gi-- {
				if len(v.Groups[gi].Deals) > 0 {
					c.Group, c.Row = gi, len(v.Groups[gi].Deals)-1
					break
				}
			}
		}
	}
	out.Focus = &c
	return out
}

// FocusedField returns the column field under the focus, if any.
func (s State) FocusedField(v View) (models.Field, bool) {
	if s.Focus == nil || s.Focus.Col < 0 || s.Focus.Col >= len(v.Columns) {
		return "", false
	}
	return v.Columns[s.Focus.Col].Key, true
}

// Reconcile remaps the focus and editing pointers after the derived view
// changed shape. Dangling coordinates are clamped into the new bounds, or
// cleared when the view has no rows at all; the editing pointer is dropped
// when its deal is no longer visible. Every mutation that re-derives the
// view must pass the state through here.
func (s State) Reconcile(v View) State {
	out := s

	if out.Focus != nil {
		c := *out.Focus
		if len(v.Columns) == 0 || !hasRows(v) {
			out.Focus = nil
		} else {
			if c.Col >= len(v.Columns) {
				c.Col = len(v.Columns) - 1
			}
			if c.Group >= len(v.Groups) {
				c.Group = len(v.Groups) - 1
			}
			for c.Group > 0 && len(v.Groups[c.Group].Deals) == 0 {
				c.Group--
			}
			if len(v.Groups[c.Group].Deals) == 0 {
				out.Focus = nil
			} else {
				if c.Row >= len(v.Groups[c.Group].Deals) {
					c.Row = len(v.Groups[c.Group].Deals) - 1
				}
				out.Focus = &c
			}
		}
	}

	if out.Editing != nil {
		found := false
		for gi := range v.Groups {
			for ri := range v.Groups[gi].Deals {
				if v.Groups[gi].Deals[ri].ID == out.Editing.DealID {
					found = true
				}
			}
		}
		if !found {
			out.Editing = nil
			out.Buffer = ""
		}
	}
	return out
}

func hasRows(v View) bool {
	for _, g := range v.Groups {
		if len(g.Deals) > 0 {
			return true
		}
	}
	return false
}

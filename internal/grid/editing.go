package grid

import (
	"strconv"

	"github.com/akyairhashvil/dealgrid/internal/models"
)

// StartEdit begins editing one cell, seeding the buffer with the cell's
// current value. Non-editable fields are refused.
func (s State) StartEdit(dealID string, field models.Field, seed string) State {
	if !models.Editable(field) {
		return s
	}
	out := s
	out.Editing = &EditPointer{DealID: dealID, Field: field}
	out.Buffer = seed
	return out
}

// SetBuffer replaces the transient edit buffer.
func (s State) SetBuffer(text string) State {
	out := s
	out.Buffer = text
	return out
}

// CommitEdit finishes the in-progress edit and hands the raw buffer back to
// the caller, which applies it to the deal via models.Set (so numeric parse
// fallback lives with the field table, not here). Returns false when no
// edit is in progress.
func (s State) CommitEdit() (State, Edit, bool) {
	if s.Editing == nil {
		return s, Edit{}, false
	}
	e := Edit{DealID: s.Editing.DealID, Field: s.Editing.Field, Raw: s.Buffer}
	out := s
	out.Editing = nil
	out.Buffer = ""
	return out, e, true
}

// CancelEdit discards the buffer and exits edit mode without touching the deal.
func (s State) CancelEdit() State {
	out := s
	out.Editing = nil
	out.Buffer = ""
	return out
}

// EnterKey implements the Enter transition: begin editing the focused cell
// when it is editable, or commit the edit already in progress. The returned
// Edit is valid only when committed is true.
func (s State) EnterKey(v View) (State, Edit, bool) {
	if s.Editing != nil {
		return s.CommitEdit()
	}
	if s.Focus == nil {
		return s, Edit{}, false
	}
	deal, ok := v.DealAt(s.Focus.Group, s.Focus.Row)
	if !ok {
		return s, Edit{}, false
	}
	field, ok := s.FocusedField(v)
	if !ok || !models.Editable(field) {
		return s, Edit{}, false
	}
	seed := models.Format(&deal, field)
	if field == models.FieldValue {
		// Seed the raw number, not the currency rendering.
		seed = trimNumber(deal.Value)
	} else if field == models.FieldProbability {
		seed = trimNumber(float64(deal.Probability))
	}
	return s.StartEdit(deal.ID, field, seed), Edit{}, false
}

// EscapeKey cancels the edit if one is in progress, otherwise clears focus.
func (s State) EscapeKey() State {
	if s.Editing != nil {
		return s.CancelEdit()
	}
	return s.ClearFocus()
}

func trimNumber(f float64) string {
	// Whole amounts render without a decimal tail.
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package grid

import (
	"testing"

	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

func TestMoveSnapsToOrigin(t *testing.T) {
	v := testView()
	s := NewState().Move(v, Down)
	if s.Focus == nil || *s.Focus != (Coord{0, 0, 0}) {
		t.Fatalf("focus = %v, want origin", s.Focus)
	}
}

func TestMoveClampsAtEdges(t *testing.T) {
	v := testView()
	s := NewState().FocusCell(v, Coord{0, 0, 0})

	if got := s.Move(v, Up); *got.Focus != (Coord{0, 0, 0}) {
		t.Fatalf("ArrowUp at origin moved focus to %v", got.Focus)
	}
	if got := s.Move(v, Left); *got.Focus != (Coord{0, 0, 0}) {
		t.Fatalf("ArrowLeft at origin moved focus to %v", got.Focus)
	}

	last := Coord{Group: 1, Row: 1, Col: len(v.Columns) - 1}
	s = s.FocusCell(v, last)
	if got := s.Move(v, Down); *got.Focus != last {
		t.Fatalf("ArrowDown at end moved focus to %v", got.Focus)
	}
	if got := s.Move(v, Right); *got.Focus != last {
		t.Fatalf("ArrowRight at end moved focus to %v", got.Focus)
	}
}

func TestMoveCrossesGroupBoundary(t *testing.T) {
	v := testView()
	s := NewState().FocusCell(v, Coord{Group: 0, Row: 2, Col: 3})

	s = s.Move(v, Down)
	if *s.Focus != (Coord{Group: 1, Row: 0, Col: 3}) {
		t.Fatalf("down across boundary: %v", s.Focus)
	}
	s = s.Move(v, Up)
	if *s.Focus != (Coord{Group: 0, Row: 2, Col: 3}) {
		t.Fatalf("up across boundary: %v", s.Focus)
	}
}

func TestMoveSkipsEmptyGroup(t *testing.T) {
	v := testView()
	v.Groups = append(v.Groups[:1], append([]query.DealGroup{{Name: "Empty", Key: "empty"}}, v.Groups[1:]...)...)

	s := NewState().FocusCell(v, Coord{Group: 0, Row: 2, Col: 0}).Move(v, Down)
	if *s.Focus != (Coord{Group: 2, Row: 0, Col: 0}) {
		t.Fatalf("down over empty group: %v", s.Focus)
	}
	s = s.Move(v, Up)
	if *s.Focus != (Coord{Group: 0, Row: 2, Col: 0}) {
		t.Fatalf("up over empty group: %v", s.Focus)
	}
}

func TestFocusCellRejectsOutOfRange(t *testing.T) {
	v := testView()
	s := NewState().FocusCell(v, Coord{Group: 5, Row: 0, Col: 0})
	if s.Focus != nil {
		t.Fatalf("focus = %v, want nil", s.Focus)
	}
}

func TestReconcileClampsFocus(t *testing.T) {
	v := testView()
	s := NewState().FocusCell(v, Coord{Group: 1, Row: 1, Col: len(v.Columns) - 1})

	// Shrink the view: one group, one row, three columns.
	small := View{
		Groups:  []query.DealGroup{{Name: "All Deals", Key: "all", Deals: v.Groups[1].Deals[:1]}},
		Columns: v.Columns[:3],
	}
	s = s.Reconcile(small)
	if s.Focus == nil || *s.Focus != (Coord{Group: 0, Row: 0, Col: 2}) {
		t.Fatalf("reconciled focus = %v", s.Focus)
	}
}

func TestReconcileClearsFocusOnEmptyView(t *testing.T) {
	v := testView()
	s := NewState().FocusCell(v, Coord{0, 0, 0})
	empty := View{Groups: []query.DealGroup{{Name: "Active Deals", Key: "active"}}, Columns: v.Columns}
	s = s.Reconcile(empty)
	if s.Focus != nil {
		t.Fatalf("focus = %v, want nil on empty view", s.Focus)
	}
}

func TestReconcileDropsEditingWhenDealLeavesView(t *testing.T) {
	v := testView()
	s := NewState().StartEdit("r0", models.FieldDealName, "Deal r0")
	withoutR0 := View{
		Groups:  []query.DealGroup{{Name: "Active Deals", Key: "active", Deals: v.Groups[0].Deals[1:]}},
		Columns: v.Columns,
	}
	s = s.Reconcile(withoutR0)
	if s.Editing != nil || s.Buffer != "" {
		t.Fatalf("editing pointer survived re-derivation: %+v %q", s.Editing, s.Buffer)
	}

	s = NewState().StartEdit("r1", models.FieldDealName, "Deal r1").Reconcile(withoutR0)
	if s.Editing == nil {
		t.Fatalf("editing pointer dropped although the deal is still visible")
	}
}

func TestFocusedField(t *testing.T) {
	v := testView()
	s := NewState().FocusCell(v, Coord{Group: 0, Row: 0, Col: 0})
	f, ok := s.FocusedField(v)
	if !ok || f != models.FieldDealName {
		t.Fatalf("focused field = %v %v", f, ok)
	}
	if _, ok := NewState().FocusedField(v); ok {
		t.Fatalf("unfocused state reported a field")
	}
}

func TestMoveOnViewWithoutColumns(t *testing.T) {
	v := testView()
	v.Columns = nil
	s := NewState().Move(v, Down)
	if s.Focus != nil {
		t.Fatalf("focus = %v, want nil with no columns", s.Focus)
	}
}

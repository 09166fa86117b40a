package grid

import (
	"reflect"
	"testing"

	"github.com/akyairhashvil/dealgrid/internal/columns"
	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/query"
)

// testView builds a two-group view: rows r0..r2 in the first group,
// r3..r4 in the second, with the default column set displayed.
func testView() View {
	mk := func(id string) models.Deal {
		return models.Deal{ID: id, DealName: "Deal " + id, Value: 100}
	}
	return View{
		Groups: []query.DealGroup{
			{Name: "Active Deals", Key: "active", Deals: []models.Deal{mk("r0"), mk("r1"), mk("r2")}, Total: 3},
			{Name: "Closed Won", Key: "won", Deals: []models.Deal{mk("r3"), mk("r4")}, Total: 2},
		},
		Columns: columns.Display(columns.Defaults()),
	}
}

func selected(s State) []string {
	return s.SelectedIDs(testView())
}

func TestPlainClickReplacesSelection(t *testing.T) {
	v := testView()
	s := NewState()
	s = s.ClickRow(v, "r0", Modifiers{})
	s = s.ClickRow(v, "r2", Modifiers{})
	if !reflect.DeepEqual(selected(s), []string{"r2"}) {
		t.Fatalf("selected = %v, want [r2]", selected(s))
	}
	if s.Anchor != "r2" {
		t.Fatalf("anchor = %q, want r2", s.Anchor)
	}
}

func TestCtrlClickToggles(t *testing.T) {
	v := testView()
	s := NewState()
	s = s.ClickRow(v, "r0", Modifiers{})
	s = s.ClickRow(v, "r2", Modifiers{Ctrl: true})
	if !reflect.DeepEqual(selected(s), []string{"r0", "r2"}) {
		t.Fatalf("selected = %v, want [r0 r2]", selected(s))
	}
	s = s.ClickRow(v, "r0", Modifiers{Ctrl: true})
	if !reflect.DeepEqual(selected(s), []string{"r2"}) {
		t.Fatalf("selected = %v, want [r2]", selected(s))
	}
	if s.Anchor != "r0" {
		t.Fatalf("anchor = %q, want r0", s.Anchor)
	}
}

func TestShiftClickSelectsRange(t *testing.T) {
	v := testView()
	s := NewState()
	s = s.ClickRow(v, "r1", Modifiers{})
	s = s.ClickRow(v, "r3", Modifiers{Shift: true})
	want := []string{"r1", "r2", "r3"}
	if !reflect.DeepEqual(selected(s), want) {
		t.Fatalf("selected = %v, want %v", selected(s), want)
	}
}

func TestShiftClickPreservesAnchor(t *testing.T) {
	v := testView()
	s := NewState()
	s = s.ClickRow(v, "r1", Modifiers{})
	s = s.ClickRow(v, "r3", Modifiers{Shift: true})
	if s.Anchor != "r1" {
		t.Fatalf("anchor moved to %q, want r1", s.Anchor)
	}
	// A second shift-click extends from the original anchor.
	s = s.ClickRow(v, "r0", Modifiers{Shift: true})
	want := []string{"r0", "r1", "r2", "r3"}
	if !reflect.DeepEqual(selected(s), want) {
		t.Fatalf("selected = %v, want %v", selected(s), want)
	}
}

func TestShiftClickWithoutAnchorActsPlain(t *testing.T) {
	v := testView()
	s := NewState().ClickRow(v, "r3", Modifiers{Shift: true})
	if !reflect.DeepEqual(selected(s), []string{"r3"}) {
		t.Fatalf("selected = %v, want [r3]", selected(s))
	}
	if s.Anchor != "r3" {
		t.Fatalf("anchor = %q, want r3", s.Anchor)
	}
}

func TestShiftClickRangeCrossesGroups(t *testing.T) {
	v := testView()
	s := NewState()
	s = s.ClickRow(v, "r4", Modifiers{})
	s = s.ClickRow(v, "r2", Modifiers{Shift: true})
	want := []string{"r2", "r3", "r4"}
	if !reflect.DeepEqual(selected(s), want) {
		t.Fatalf("selected = %v, want %v", selected(s), want)
	}
}

func TestGroupSelectAllIsScoped(t *testing.T) {
	v := testView()
	s := NewState().ClickRow(v, "r4", Modifiers{})
	s = s.SetGroupSelected(v, 0, true)
	want := []string{"r0", "r1", "r2", "r4"}
	if !reflect.DeepEqual(selected(s), want) {
		t.Fatalf("selected = %v, want %v", selected(s), want)
	}
	if !s.GroupFullySelected(v, 0) {
		t.Fatalf("group 0 should be fully selected")
	}
	s = s.SetGroupSelected(v, 0, false)
	if !reflect.DeepEqual(selected(s), []string{"r4"}) {
		t.Fatalf("selected = %v, want [r4]", selected(s))
	}
}

func TestClearSelection(t *testing.T) {
	v := testView()
	s := NewState().ClickRow(v, "r0", Modifiers{}).ClearSelection()
	if len(s.Selected) != 0 || s.Anchor != "" {
		t.Fatalf("state not cleared: %v %q", s.Selected, s.Anchor)
	}
}

func TestDropSelectedClearsAnchor(t *testing.T) {
	v := testView()
	s := NewState().ClickRow(v, "r0", Modifiers{})
	s = s.ClickRow(v, "r1", Modifiers{Ctrl: true})
	s = s.DropSelected([]string{"r1"})
	if !reflect.DeepEqual(selected(s), []string{"r0"}) {
		t.Fatalf("selected = %v, want [r0]", selected(s))
	}
	if s.Anchor != "" {
		t.Fatalf("anchor = %q, want cleared", s.Anchor)
	}
}

func TestTransitionsDoNotAliasState(t *testing.T) {
	v := testView()
	before := NewState().ClickRow(v, "r0", Modifiers{})
	_ = before.ClickRow(v, "r1", Modifiers{Ctrl: true})
	if !reflect.DeepEqual(selected(before), []string{"r0"}) {
		t.Fatalf("transition mutated the prior state: %v", selected(before))
	}
}

func TestToggleRowAndGroupOrthogonal(t *testing.T) {
	v := testView()
	s := NewState("Active Deals")
	s = s.ClickRow(v, "r0", Modifiers{})
	s = s.ToggleRow("r0")
	if !s.ExpandedRows["r0"] {
		t.Fatalf("row not expanded")
	}
	if !reflect.DeepEqual(selected(s), []string{"r0"}) {
		t.Fatalf("expansion disturbed selection: %v", selected(s))
	}
	s = s.ToggleRow("r0")
	if s.ExpandedRows["r0"] {
		t.Fatalf("row still expanded after second toggle")
	}
	s = s.ToggleGroup("Active Deals")
	if s.ExpandedGroups["Active Deals"] {
		t.Fatalf("group still expanded")
	}
}

func TestToggleFavorite(t *testing.T) {
	s := NewState().ToggleFavorite("r1")
	if !s.Favorites["r1"] {
		t.Fatalf("favorite not set")
	}
	if s.ToggleFavorite("r1").Favorites["r1"] {
		t.Fatalf("favorite not cleared")
	}
}

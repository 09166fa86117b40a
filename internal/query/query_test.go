package query

import (
	"reflect"
	"testing"

	"github.com/akyairhashvil/dealgrid/internal/models"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

func sampleDeals() []models.Deal {
	return []models.Deal{
		{ID: "1", DealName: "Google", Company: "Google", Owner: "Steven Scott", Status: models.StatusQualified, Value: 70000, Probability: 75},
		{ID: "2", DealName: "Apple deal", Company: "Apple", Owner: "Sam Jones", Status: models.StatusProposal, Value: 55000, Probability: 60},
		{ID: "3", DealName: "Amazon deal", Company: "Amazon", Owner: "Robert Thompson", Status: models.StatusProposal, Value: 100000, Probability: 100},
		{ID: "4", DealName: "Amazon deal", Company: "Amazon", Owner: "Robert Thompson", Status: models.StatusWon, Value: 55000, Probability: 25},
		{ID: "5", DealName: "Apple deal", Company: "Apple", Owner: "kian jack", Status: models.StatusWon, Value: 30000, Probability: 80},
	}
}

func ids(deals []models.Deal) []string {
	out := make([]string, len(deals))
	for i, d := range deals {
		out[i] = d.ID
	}
	return out
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	deals := sampleDeals()
	got := Filter(deals, FilterConfig{})
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("empty filter ids = %v", ids(got))
	}
	// Never returns the input slice itself.
	got[0].ID = "mutated"
	if deals[0].ID != "1" {
		t.Fatalf("filter aliased its input")
	}
}

func TestFilterConjunction(t *testing.T) {
	f := FilterConfig{
		Statuses: []models.DealStatus{models.StatusProposal},
		Owners:   []string{"Robert Thompson"},
		ValueMin: util.Ptr(60000.0),
	}
	got := Filter(sampleDeals(), f)
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Fatalf("ids = %v, want [3]", ids(got))
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	got := Filter(sampleDeals(), FilterConfig{Search: "KIAN"})
	if !reflect.DeepEqual(ids(got), []string{"5"}) {
		t.Fatalf("ids = %v, want [5]", ids(got))
	}
	// Search spans dealName, company, and owner.
	got = Filter(sampleDeals(), FilterConfig{Search: "amazon"})
	if !reflect.DeepEqual(ids(got), []string{"3", "4"}) {
		t.Fatalf("ids = %v, want [3 4]", ids(got))
	}
}

func TestFilterComposition(t *testing.T) {
	// filter(filter(D, C1), C2) == filter(D, C1 AND C2) for independent clauses.
	c1 := FilterConfig{Statuses: []models.DealStatus{models.StatusProposal, models.StatusWon}}
	c2 := FilterConfig{ValueMax: util.Ptr(56000.0)}
	both := FilterConfig{Statuses: c1.Statuses, ValueMax: c2.ValueMax}

	chained := Filter(Filter(sampleDeals(), c1), c2)
	combined := Filter(sampleDeals(), both)
	if !reflect.DeepEqual(ids(chained), ids(combined)) {
		t.Fatalf("chained %v != combined %v", ids(chained), ids(combined))
	}
}

func TestSortStableOnTies(t *testing.T) {
	deals := []models.Deal{
		{ID: "1", Value: 100},
		{ID: "2", Value: 100},
		{ID: "3", Value: 50},
	}
	got := Sort(deals, []SortKey{{Key: models.FieldValue, Direction: Desc}})
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3"}) {
		t.Fatalf("ids = %v, want [1 2 3]", ids(got))
	}
}

func TestSortMultiKey(t *testing.T) {
	got := Sort(sampleDeals(), []SortKey{
		{Key: models.FieldCompany, Direction: Asc},
		{Key: models.FieldValue, Direction: Desc},
	})
	if !reflect.DeepEqual(ids(got), []string{"3", "4", "2", "5", "1"}) {
		t.Fatalf("ids = %v, want [3 4 2 5 1]", ids(got))
	}
}

func TestSortEmptyConfigKeepsOrder(t *testing.T) {
	got := Sort(sampleDeals(), nil)
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("ids = %v", ids(got))
	}
}

func TestCycleSortPlainClick(t *testing.T) {
	var sorts []SortKey
	sorts = CycleSort(sorts, models.FieldValue, false)
	if !reflect.DeepEqual(sorts, []SortKey{{Key: models.FieldValue, Direction: Asc}}) {
		t.Fatalf("after 1st click: %v", sorts)
	}
	sorts = CycleSort(sorts, models.FieldValue, false)
	if !reflect.DeepEqual(sorts, []SortKey{{Key: models.FieldValue, Direction: Desc}}) {
		t.Fatalf("after 2nd click: %v", sorts)
	}
	sorts = CycleSort(sorts, models.FieldValue, false)
	if len(sorts) != 0 {
		t.Fatalf("after 3rd click: %v, want empty", sorts)
	}
}

func TestCycleSortPlainClickReplacesConfig(t *testing.T) {
	sorts := []SortKey{{Key: models.FieldOwner, Direction: Desc}}
	sorts = CycleSort(sorts, models.FieldValue, false)
	if !reflect.DeepEqual(sorts, []SortKey{{Key: models.FieldValue, Direction: Asc}}) {
		t.Fatalf("plain click should replace config, got %v", sorts)
	}
}

func TestCycleSortShiftClick(t *testing.T) {
	sorts := []SortKey{{Key: models.FieldOwner, Direction: Asc}}
	sorts = CycleSort(sorts, models.FieldValue, true)
	want := []SortKey{
		{Key: models.FieldOwner, Direction: Asc},
		{Key: models.FieldValue, Direction: Asc},
	}
	if !reflect.DeepEqual(sorts, want) {
		t.Fatalf("shift append: %v, want %v", sorts, want)
	}
	sorts = CycleSort(sorts, models.FieldValue, true)
	if sorts[1].Direction != Desc {
		t.Fatalf("shift flip: %v", sorts)
	}
	sorts = CycleSort(sorts, models.FieldValue, true)
	want = []SortKey{{Key: models.FieldOwner, Direction: Asc}}
	if !reflect.DeepEqual(sorts, want) {
		t.Fatalf("shift remove: %v, want %v", sorts, want)
	}
}

func TestDeriveDefaultGrouping(t *testing.T) {
	groups := Derive(sampleDeals(), FilterConfig{}, nil, GroupByDefault)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Name != "Active Deals" || !reflect.DeepEqual(ids(groups[0].Deals), []string{"1", "2", "3"}) {
		t.Fatalf("active group: %s %v", groups[0].Name, ids(groups[0].Deals))
	}
	if groups[1].Name != "Closed Won" || !reflect.DeepEqual(ids(groups[1].Deals), []string{"4", "5"}) {
		t.Fatalf("won group: %s %v", groups[1].Name, ids(groups[1].Deals))
	}
	if groups[0].Total != 3 || groups[0].TotalValue != 225000 {
		t.Fatalf("active totals: %d %v", groups[0].Total, groups[0].TotalValue)
	}
}

func TestDerivePartition(t *testing.T) {
	deals := sampleDeals()
	groups := Derive(deals, FilterConfig{}, nil, GroupByOwner)

	seen := map[string]int{}
	var valueSum float64
	for _, g := range groups {
		for _, d := range g.Deals {
			seen[d.ID]++
		}
		valueSum += g.TotalValue
	}
	if len(seen) != len(deals) {
		t.Fatalf("union covers %d deals, want %d", len(seen), len(deals))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("deal %s appears %d times", id, n)
		}
	}
	var want float64
	for _, d := range deals {
		want += d.Value
	}
	if valueSum != want {
		t.Fatalf("group value sum = %v, want %v", valueSum, want)
	}
}

func TestDeriveGroupOrderFirstOccurrence(t *testing.T) {
	groups := Derive(sampleDeals(), FilterConfig{}, nil, GroupByCompany)
	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	if !reflect.DeepEqual(names, []string{"Google", "Apple", "Amazon"}) {
		t.Fatalf("group order = %v", names)
	}
}

func TestDeriveGroupByNone(t *testing.T) {
	groups := Derive(sampleDeals(), FilterConfig{}, nil, GroupByNone)
	if len(groups) != 1 || groups[0].Name != "All Deals" || groups[0].Total != 5 {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	deals := sampleDeals()
	f := FilterConfig{Search: "deal"}
	sorts := []SortKey{{Key: models.FieldValue, Direction: Desc}}
	a := Derive(deals, f, sorts, GroupByStatus)
	b := Derive(deals, f, sorts, GroupByStatus)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("derive is not deterministic")
	}
}

func TestAggregate(t *testing.T) {
	got := Aggregate(sampleDeals())
	if got.Count != 5 {
		t.Fatalf("Count = %d", got.Count)
	}
	if got.ValueSum != 310000 {
		t.Fatalf("ValueSum = %v", got.ValueSum)
	}
	if got.WeightedValue != 70000*0.75+55000*0.6+100000+55000*0.25+30000*0.8 {
		t.Fatalf("WeightedValue = %v", got.WeightedValue)
	}
	if got.AvgProb != 68 {
		t.Fatalf("AvgProb = %v", got.AvgProb)
	}

	empty := Aggregate(nil)
	if empty.Count != 0 || empty.AvgProb != 0 {
		t.Fatalf("empty aggregate = %+v", empty)
	}
}

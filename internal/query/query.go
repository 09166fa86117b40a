// Package query derives the grouped grid view from the raw deal collection.
// Everything here is a pure transformation: inputs are never mutated and the
// same inputs always produce the same view, so callers can re-derive eagerly
// on every state change.
package query

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/dealgrid/internal/models"
)

// Direction orders a single sort key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortKey is one entry of the sort config; slice order is priority order.
type SortKey struct {
	Key       models.Field `json:"key"`
	Direction Direction    `json:"direction"`
}

// FilterConfig is a conjunction of optional clauses. A zero clause imposes
// no constraint.
type FilterConfig struct {
	Statuses []models.DealStatus
	Owners   []string
	ValueMin *float64
	ValueMax *float64
	Search   string
}

// Empty reports whether no clause is set.
func (f FilterConfig) Empty() bool {
	return len(f.Statuses) == 0 && len(f.Owners) == 0 &&
		f.ValueMin == nil && f.ValueMax == nil && f.Search == ""
}

// GroupBy selects the partitioning of the view.
type GroupBy string

const (
	// GroupByDefault splits the pipeline into Active Deals / Closed Won.
	GroupByDefault GroupBy = ""
	// GroupByNone yields a single All Deals bucket.
	GroupByNone    GroupBy = "none"
	GroupByStatus  GroupBy = "status"
	GroupByOwner   GroupBy = "owner"
	GroupByCompany GroupBy = "company"
	GroupBySource  GroupBy = "source"
)

// DealGroup is one bucket of the derived view. Recomputed on every derive,
// never persisted.
type DealGroup struct {
	Name       string
	Key        string
	Deals      []models.Deal
	Total      int
	TotalValue float64
}

// Matches reports whether a deal satisfies every present filter clause.
func (f FilterConfig) Matches(d *models.Deal) bool {
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, d.Status) {
		return false
	}
	if len(f.Owners) > 0 && !containsFold(f.Owners, d.Owner) {
		return false
	}
	if f.ValueMin != nil && d.Value < *f.ValueMin {
		return false
	}
	if f.ValueMax != nil && d.Value > *f.ValueMax {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(d.DealName), q) &&
			!strings.Contains(strings.ToLower(d.Company), q) &&
			!strings.Contains(strings.ToLower(d.Owner), q) {
			return false
		}
	}
	return true
}

func containsStatus(set []models.DealStatus, s models.DealStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(set []string, s string) bool {
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// Filter returns the deals satisfying the filter, preserving relative order.
func Filter(deals []models.Deal, f FilterConfig) []models.Deal {
	if f.Empty() {
		return append([]models.Deal(nil), deals...)
	}
	out := make([]models.Deal, 0, len(deals))
	for i := range deals {
		if f.Matches(&deals[i]) {
			out = append(out, deals[i])
		}
	}
	return out
}

// Sort returns a stably multi-key-sorted copy of deals. An empty sort config
// preserves insertion order.
func Sort(deals []models.Deal, sorts []SortKey) []models.Deal {
	out := append([]models.Deal(nil), deals...)
	if len(sorts) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		for _, s := range sorts {
			cmp := models.Compare(&out[i], &out[j], s.Key)
			if cmp == 0 {
				continue
			}
			if s.Direction == Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return out
}

// Derive runs the full pipeline: filter, sort, then group. Group iteration
// order is first-occurrence order within the filtered, sorted sequence.
func Derive(deals []models.Deal, f FilterConfig, sorts []SortKey, groupBy GroupBy) []DealGroup {
	visible := Sort(Filter(deals, f), sorts)

	switch groupBy {
	case GroupByDefault:
		active := make([]models.Deal, 0, len(visible))
		won := make([]models.Deal, 0)
		for _, d := range visible {
			if d.Status.Active() {
				active = append(active, d)
			} else if d.Status == models.StatusWon {
				won = append(won, d)
			}
		}
		return []DealGroup{
			makeGroup("Active Deals", "active", active),
			makeGroup("Closed Won", "won", won),
		}
	case GroupByNone:
		return []DealGroup{makeGroup("All Deals", "all", visible)}
	}

	var groups []DealGroup
	index := make(map[string]int)
	for _, d := range visible {
		key := groupKey(&d, groupBy)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DealGroup{Name: groupName(&d, groupBy, key), Key: key})
		}
		groups[i].Deals = append(groups[i].Deals, d)
	}
	for i := range groups {
		groups[i].Total = len(groups[i].Deals)
		groups[i].TotalValue = sumValue(groups[i].Deals)
	}
	return groups
}

func groupKey(d *models.Deal, groupBy GroupBy) string {
	switch groupBy {
	case GroupByStatus:
		return string(d.Status)
	case GroupByOwner:
		return d.Owner
	case GroupByCompany:
		return d.Company
	case GroupBySource:
		return d.Source
	}
	return ""
}

func groupName(d *models.Deal, groupBy GroupBy, key string) string {
	if groupBy == GroupByStatus {
		return d.Status.Label()
	}
	return key
}

func makeGroup(name, key string, deals []models.Deal) DealGroup {
	return DealGroup{
		Name:       name,
		Key:        key,
		Deals:      deals,
		Total:      len(deals),
		TotalValue: sumValue(deals),
	}
}

func sumValue(deals []models.Deal) float64 {
	var sum float64
	for i := range deals {
		sum += deals[i].Value
	}
	return sum
}

// Flatten concatenates the groups' deals in display order. Range selection
// and exports operate on this sequence.
func Flatten(groups []DealGroup) []models.Deal {
	var out []models.Deal
	for i := range groups {
		out = append(out, groups[i].Deals...)
	}
	return out
}

// Totals are the aggregate figures for the totals bar.
type Totals struct {
	Count         int
	ValueSum      float64
	WeightedValue float64
	AvgProb       float64
}

// Aggregate computes the totals over a deal sequence.
func Aggregate(deals []models.Deal) Totals {
	t := Totals{Count: len(deals)}
	if len(deals) == 0 {
		return t
	}
	var probSum int
	for i := range deals {
		t.ValueSum += deals[i].Value
		t.WeightedValue += deals[i].WeightedValue()
		probSum += deals[i].Probability
	}
	t.AvgProb = float64(probSum) / float64(len(deals))
	return t
}

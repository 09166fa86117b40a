package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Field names a single Deal attribute. Field values double as column keys
// and as the persisted sort keys.
type Field string

const (
	FieldDealName          Field = "dealName"
	FieldCompany           Field = "company"
	FieldOwner             Field = "owner"
	FieldStatus            Field = "status"
	FieldValue             Field = "value"
	FieldProbability       Field = "probability"
	FieldExpectedCloseDate Field = "expectedCloseDate"
	FieldLastActivity      Field = "lastActivity"
	FieldSource            Field = "source"
	FieldNotes             Field = "notes"
)

// fieldSpec gathers the typed accessors for one field so that sorting,
// formatting and edits never fall back to runtime duck-typing.
type fieldSpec struct {
	compare  func(a, b *Deal) int
	format   func(d *Deal) string
	set      func(d *Deal, raw string)
	editable bool
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var fieldSpecs = map[Field]fieldSpec{
	FieldDealName: {
		compare:  func(a, b *Deal) int { return compareStrings(a.DealName, b.DealName) },
		format:   func(d *Deal) string { return d.DealName },
		set:      func(d *Deal, raw string) { d.DealName = raw },
		editable: true,
	},
	FieldCompany: {
		compare:  func(a, b *Deal) int { return compareStrings(a.Company, b.Company) },
		format:   func(d *Deal) string { return d.Company },
		set:      func(d *Deal, raw string) { d.Company = raw },
		editable: true,
	},
	FieldOwner: {
		compare:  func(a, b *Deal) int { return compareStrings(a.Owner, b.Owner) },
		format:   func(d *Deal) string { return d.Owner },
		set:      func(d *Deal, raw string) { d.Owner = raw },
		editable: true,
	},
	FieldStatus: {
		compare: func(a, b *Deal) int { return compareStrings(string(a.Status), string(b.Status)) },
		format:  func(d *Deal) string { return d.Status.Label() },
	},
	FieldValue: {
		compare:  func(a, b *Deal) int { return compareFloats(a.Value, b.Value) },
		format:   func(d *Deal) string { return FormatCurrency(d.Value) },
		set:      func(d *Deal, raw string) { d.Value = parseNumber(raw) },
		editable: true,
	},
	FieldProbability: {
		compare:  func(a, b *Deal) int { return compareFloats(float64(a.Probability), float64(b.Probability)) },
		format:   func(d *Deal) string { return strconv.Itoa(d.Probability) + "%" },
		set:      func(d *Deal, raw string) { d.Probability = int(parseNumber(raw)) },
		editable: true,
	},
	FieldExpectedCloseDate: {
		// ISO dates order lexically.
		compare: func(a, b *Deal) int { return strings.Compare(a.ExpectedCloseDate, b.ExpectedCloseDate) },
		format:  func(d *Deal) string { return d.ExpectedCloseDate },
		set:     func(d *Deal, raw string) { d.ExpectedCloseDate = raw },
	},
	FieldLastActivity: {
		compare: func(a, b *Deal) int { return strings.Compare(a.LastActivity, b.LastActivity) },
		format:  func(d *Deal) string { return d.LastActivity },
	},
	FieldSource: {
		compare:  func(a, b *Deal) int { return compareStrings(a.Source, b.Source) },
		format:   func(d *Deal) string { return d.Source },
		set:      func(d *Deal, raw string) { d.Source = raw },
		editable: true,
	},
	FieldNotes: {
		compare: func(a, b *Deal) int { return compareStrings(a.Notes, b.Notes) },
		format:  func(d *Deal) string { return d.Notes },
		set:     func(d *Deal, raw string) { d.Notes = raw },
	},
}

// parseNumber mirrors the edit-commit contract: malformed numeric input
// silently coerces to zero instead of failing the commit.
func parseNumber(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}

// KnownField reports whether f names a Deal attribute.
func KnownField(f Field) bool {
	_, ok := fieldSpecs[f]
	return ok
}

// Editable reports whether f accepts inline free-text edits.
func Editable(f Field) bool {
	return fieldSpecs[f].editable
}

// Compare orders two deals by one field. Unknown fields compare equal so a
// stale persisted sort key degrades to a no-op instead of a panic.
func Compare(a, b *Deal, f Field) int {
	spec, ok := fieldSpecs[f]
	if !ok {
		return 0
	}
	return spec.compare(a, b)
}

// Format renders one field of a deal for display.
func Format(d *Deal, f Field) string {
	spec, ok := fieldSpecs[f]
	if !ok {
		return ""
	}
	return spec.format(d)
}

// Set writes a raw edit buffer into one field of a deal, applying the
// field's parse rules. Setting a non-settable field is a no-op.
func Set(d *Deal, f Field, raw string) {
	spec, ok := fieldSpecs[f]
	if !ok || spec.set == nil {
		return
	}
	spec.set(d, raw)
}

// FormatCurrency renders a whole-dollar amount, e.g. "$70,000".
func FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(int64(amount+0.5), 10)
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	if neg {
		return fmt.Sprintf("-$%s", b.String())
	}
	return "$" + b.String()
}

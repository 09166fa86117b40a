package models

// DealStatus enumerates the pipeline stages of a deal.
type DealStatus string

const (
	StatusNew       DealStatus = "new"
	StatusQualified DealStatus = "qualified"
	StatusProposal  DealStatus = "proposal"
	StatusWon       DealStatus = "won"
	StatusLost      DealStatus = "lost"
)

// Active reports whether the stage counts toward the open pipeline.
// Won and lost deals are closed.
func (s DealStatus) Active() bool {
	switch s {
	case StatusNew, StatusQualified, StatusProposal:
		return true
	}
	return false
}

// Label returns the display name for a stage.
func (s DealStatus) Label() string {
	switch s {
	case StatusNew:
		return "Discovery"
	case StatusQualified:
		return "Qualified"
	case StatusProposal:
		return "Proposal"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	}
	return string(s)
}

// Deal represents a single sales opportunity.
type Deal struct {
	ID                string
	DealName          string
	Company           string
	Owner             string
	Status            DealStatus
	Value             float64 // whole currency units
	Probability       int     // 0-100
	ExpectedCloseDate string  // ISO date
	LastActivity      string  // ISO date
	Source            string
	Notes             string
	Activities        []Activity
}

// WeightedValue is the deal value scaled by its close probability.
func (d Deal) WeightedValue() float64 {
	return d.Value * float64(d.Probability) / 100
}

// ActivityType enumerates logged interaction kinds.
type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityNote    ActivityType = "note"
)

// Activity is one logged interaction on a deal. Immutable once created;
// slice order is chronological display order.
type Activity struct {
	ID          string
	Type        ActivityType
	Description string
	Date        string // ISO date
	User        string
}

package config

// Deal stages.
const (
	StatusNew       = "new"
	StatusQualified = "qualified"
	StatusProposal  = "proposal"
	StatusWon       = "won"
	StatusLost      = "lost"
)

// Activity types.
const (
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
	ActivityNote    = "note"
)

// Column layout limits.
const (
	MinColumnWidth     = 60
	DefaultColumnWidth = 120
)

// Settings keys.
const (
	ViewStateKey    = "deals-table-view"
	ViewStateSchema = 1
	ThemeKey        = "theme"
)

// Database/application settings.
const (
	AppName    = "dealgrid"
	DBFileName = "dealgrid.db"
)

package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name            string
	Base            lipgloss.Style
	Border          lipgloss.Color
	Header          lipgloss.Style
	ColumnHeader    lipgloss.Style
	PinnedHeader    lipgloss.Style
	GroupHeader     lipgloss.Style
	Cell            lipgloss.Style
	SelectedRow     lipgloss.Style
	FocusedCell     lipgloss.Style
	EditingCell     lipgloss.Style
	Favorite        lipgloss.Style
	StatusNew       lipgloss.Style
	StatusQualified lipgloss.Style
	StatusProposal  lipgloss.Style
	StatusWon       lipgloss.Style
	StatusLost      lipgloss.Style
	Activity        lipgloss.Style
	Totals          lipgloss.Style
	Input           lipgloss.Style
	Dim             lipgloss.Style
	Highlight       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:            "Default",
		Base:            lipgloss.NewStyle().Margin(1, 2),
		Border:          lipgloss.Color("63"),
		Header:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		ColumnHeader:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Underline(true),
		PinnedHeader:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true).Underline(true),
		GroupHeader:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Cell:            lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectedRow:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		FocusedCell:     lipgloss.NewStyle().Reverse(true).Bold(true),
		EditingCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22")),
		Favorite:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusNew:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		StatusQualified: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		StatusProposal:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StatusWon:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusLost:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Activity:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Totals:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Dim:             lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:            "Dracula",
		Base:            lipgloss.NewStyle().Margin(1, 2),
		Border:          lipgloss.Color("62"),
		Header:          lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		ColumnHeader:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
		PinnedHeader:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true).Underline(true),
		GroupHeader:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Cell:            lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		SelectedRow:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("60")),
		FocusedCell:     lipgloss.NewStyle().Reverse(true).Bold(true),
		EditingCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("55")),
		Favorite:        lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		StatusNew:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		StatusQualified: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		StatusProposal:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		StatusWon:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		StatusLost:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Activity:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),
		Totals:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Input:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Dim:             lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:       lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

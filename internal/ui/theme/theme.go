// Package theme holds the colors and shared styles of the terminal quiz.
package theme

import "charm.land/lipgloss/v2"

// Palette: neon arcade colors over a navy cabinet.
var (
	Primary      = lipgloss.Color("#8B5CF6")
	Secondary    = lipgloss.Color("#14B8A6")
	Accent       = lipgloss.Color("#F97316")
	Success      = lipgloss.Color("#22C55E")
	Error        = lipgloss.Color("#F43F5E")
	Text         = lipgloss.Color("#F8FAFC")
	TextDim      = lipgloss.Color("#94A3B8")
	BgDark       = lipgloss.Color("#0F172A")
	BgCard       = lipgloss.Color("#1E293B")
	Border       = lipgloss.Color("#334155")
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

var (
	Hint   = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Dimmed = lipgloss.NewStyle().Foreground(TextDim)
	// Status renders a rejected event in the footer.
	Status = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Option styles used by the answer list.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

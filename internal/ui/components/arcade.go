package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// ButtonWidth is the width of a bordered menu button.
const ButtonWidth = 22

const marqueeArt = `  ██████╗ ██╗   ██╗██╗███████╗███████╗██╗   ██╗
 ██╔═══██╗██║   ██║██║╚══███╔╝╚══███╔╝╚██╗ ██╔╝
 ██║   ██║██║   ██║██║  ███╔╝   ███╔╝  ╚████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝   ███╔╝    ╚██╔╝
 ╚██████╔╝╚██████╔╝██║███████╗███████╗   ██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚══════╝   ╚═╝`

// MarqueeWidth is the column count of the full block-letter marquee.
const MarqueeWidth = 48

// Marquee returns the QUIZZY block letters, or a spaced-out single line
// when compact.
func Marquee(compact bool) string {
	if compact {
		return "Q · U · I · Z · Z · Y"
	}
	return marqueeArt
}

var (
	buttonBase = lipgloss.NewStyle().
			Width(ButtonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
	buttonIdle     = buttonBase.Foreground(theme.Text)
	buttonDisabled = buttonBase.Foreground(theme.TextDim)
	buttonLit      = buttonBase.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)

	lineLit  = lipgloss.NewStyle().Bold(true).Foreground(theme.BgDark).Background(theme.ArcadeYellow)
	lineIdle = lipgloss.NewStyle().Foreground(theme.Text)
)

// ContentWidth is the inner width shared by every box inside the cabinet,
// kept between 20 and 60 columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame centers content inside a double border filling the area.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard boxes content in a rounded border cw columns wide.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeMenu draws the menu centered in cw: bordered buttons normally,
// one plain line per item when compact.
func ArcadeMenu(m Menu, cw int, compact bool) string {
	disabled := m.DisabledSet()
	rows := make([]string, len(m.Items))
	for i, label := range m.Labels() {
		lit := i == m.Selected && !disabled[i]
		switch {
		case compact && lit:
			rows[i] = lineLit.Render(" ▸ " + label + " ")
		case compact && disabled[i]:
			rows[i] = theme.Dimmed.Render("   " + label)
		case compact:
			rows[i] = lineIdle.Render("   " + label)
		case lit:
			rows[i] = buttonLit.Render("▸ " + label)
		case disabled[i]:
			rows[i] = buttonDisabled.Render(label)
		default:
			rows[i] = buttonIdle.Render(label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}

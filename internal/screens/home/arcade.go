package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

var (
	marqueeStyle  = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	topicStyle    = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	lastStyle     = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	statsBox      = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.ArcadeCyan).
			Align(lipgloss.Center).
			Padding(0, 1)
)

func centered(s string, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}

func renderTitle(cw int, compact bool) string {
	return centered(marqueeStyle.Render(components.Marquee(compact)), cw)
}

// renderStatsBar shows the catalog size and the last finished run.
func renderStatsBar(topics, questions int, last *LastResult, cw int, compact bool) string {
	var stats string
	if compact {
		stats = topicStyle.Render(fmt.Sprintf("★%d", topics)) + " " +
			questionStyle.Render(fmt.Sprintf("?%d", questions)) + " " +
			lastText(last, true)
	} else {
		stats = topicStyle.Render(fmt.Sprintf("★ %d TOPICS", topics)) + "  " +
			questionStyle.Render(fmt.Sprintf("? %d QUESTIONS", questions)) + "  " +
			lastText(last, false)
	}
	return statsBox.Width(cw - 2).Render(stats)
}

func lastText(last *LastResult, compact bool) string {
	switch {
	case last == nil && compact:
		return theme.Dimmed.Render("⚡-")
	case last == nil:
		return theme.Dimmed.Render("⚡ NO RUNS YET")
	case compact:
		return lastStyle.Render(fmt.Sprintf("⚡%d%%", last.Percentage))
	default:
		return lastStyle.Render(fmt.Sprintf("⚡ LAST %d/%d", last.Score, last.Total))
	}
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return centered(RenderMascot(variant), cw)
}

// renderEmptyNote replaces the topic buttons when the catalog is empty.
func renderEmptyNote(cw int) string {
	return centered(lipgloss.NewStyle().Foreground(theme.Accent).
		Render("⚠ No topics loaded (see quizzy --help for --catalog)"), cw)
}

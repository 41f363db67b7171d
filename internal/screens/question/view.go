package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

var (
	topicStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	scoreStyle = lipgloss.NewStyle().Foreground(theme.Success)
	ruleStyle  = lipgloss.NewStyle().Foreground(theme.Border)
	rightStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	wrongStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
)

func progressLine(position, total int) string {
	return fmt.Sprintf("Question %d of %d", position+1, total)
}

// center renders s in a full-width centered line.
func center(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// render draws the info line, the question card and either the answer
// hint or the feedback for the chosen option.
func (s *QuestionScreen) render(width, height int) string {
	left := topicStyle.Render("  Topic: " + s.question.TopicName)
	right := theme.Dimmed.Render(s.Progress()) + "   " + scoreStyle.Render(fmt.Sprintf("Score: %d", s.Score()))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-4, 2)

	lines := []string{
		left + strings.Repeat(" ", gap) + right,
		ruleStyle.Render(strings.Repeat("─", max(width-4, 0))),
		center(components.ProgressBar(s.question.Position, s.question.Total, min(width-4, 60)), width),
		"",
		center(components.ArcadeCard(s.choice.View(), components.ContentWidth(width)), width),
	}
	if s.feedback == nil {
		lines = append(lines, center(theme.Dimmed.Render(
			fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(s.question.Options))), width))
	} else {
		lines = append(lines, s.renderFeedback(width)...)
	}
	return strings.Join(lines, "\n")
}

func (s *QuestionScreen) renderFeedback(width int) []string {
	fb := s.feedback
	var lines []string
	if fb.WasCorrect {
		lines = append(lines, center(rightStyle.Render("Correct!"), width))
	} else {
		lines = append(lines, center(wrongStyle.Render("Not quite"), width))
		if fb.CorrectIndex >= 0 && fb.CorrectIndex < len(s.question.Options) {
			lines = append(lines, center(theme.Dimmed.Render(fmt.Sprintf("Correct answer: %s) %s",
				components.OptionLabel(fb.CorrectIndex), s.question.Options[fb.CorrectIndex])), width))
		}
	}
	return append(lines, "", center(theme.Hint.Render("Press Enter for next question"), width))
}

package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/layout"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

var restartKey = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("r", "Restart"),
)

// ResultsScreen displays the final score of a finished quiz.
type ResultsScreen struct {
	topicName string
	results   quiz.ShowResults
	menu      components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(topicName string, r quiz.ShowResults) *ResultsScreen {
	return &ResultsScreen{
		topicName: topicName,
		results:   r,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "RESTART", Action: func() tea.Cmd { return screen.Emit(screen.RestartMsg{}) }},
			{Label: "HOME", Action: func() tea.Cmd { return screen.Emit(screen.GoHomeMsg{}) }},
		}),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Select, restartKey, k.Home, k.Quit)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, restartKey) {
		return s, screen.Emit(screen.RestartMsg{})
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.results
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s complete!", s.topicName)))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("You scored %d out of %d", r.Score, r.Total)) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(percentColor(r.Percentage)).Bold(true).Render(
			fmt.Sprintf("%d%%", r.Percentage)) +
		"\n\n" +
		components.ProgressBar(r.Score, r.Total, cw-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(card, cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(verdict(r.Percentage))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeMenu(s.menu, cw, false)))

	return b.String()
}

func verdict(pct int) string {
	switch {
	case pct == 100:
		return "Flawless!"
	case pct >= 50:
		return "Nicely done."
	default:
		return "Give it another go."
	}
}

func percentColor(pct int) color.Color {
	switch {
	case pct == 100:
		return theme.Success
	case pct >= 50:
		return theme.ArcadeYellow
	default:
		return theme.Error
	}
}

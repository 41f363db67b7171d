// Package layout draws the frame shared by every screen of the terminal
// quiz: a header bar, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// Smallest terminal the quiz will draw in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HintsFor lists the help of each enabled binding, in order. Bindings
// without help text are skipped.
func HintsFor(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if h := b.Help(); b.Enabled() && h.Key != "" {
			hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
		}
	}
	return hints
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nQuizzy needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height))
}

var (
	barStyle = lipgloss.NewStyle().
			Background(theme.BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border)
	brandStyle    = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	progressStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	hintKeyStyle  = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hintDescStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// RenderHeader draws the brand on the left, title in the middle and
// progress (possibly empty) on the right.
func RenderHeader(title, progress string, width int) string {
	left := brandStyle.Render("  Quizzy")
	center := titleStyle.Render(title)
	right := progressStyle.Render(progress)

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return barStyle.Width(width).Render(line)
}

// RenderFooter draws the key hints, or status instead of them when set.
func RenderFooter(hints []KeyHint, status string, width int) string {
	if status != "" {
		return barStyle.Width(width).Render("  " + theme.Status.Render("! "+status))
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = hintKeyStyle.Render(h.Key) + " " + hintDescStyle.Render(h.Description)
	}
	return barStyle.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer. body is called with the
// space left between the two bars.
func RenderFrame(header, footer string, width, height int, body func(width, height int) string) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body(width, bodyHeight))
	return header + "\n" + content + "\n" + footer
}

package components

import (
	"strings"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// ProgressBar draws done out of total as a filled track width cells wide
// (at least 4).
func ProgressBar(done, total, width int) string {
	width = max(width, 4)
	filled := 0
	if total > 0 {
		filled = min(max(width*done/total, 0), width)
	}
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", width-filled))
}

package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// MascotVariant is the mood of the home screen mascot.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	// MascotCelebrating follows a perfect run.
	MascotCelebrating
	// MascotEncouraging follows a run below half marks.
	MascotEncouraging
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ? ? │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ✓ ✓ │
└─╥═╥─┘
  ╚═╝`

const mascotEncouraging = `┌─────┐
│ ◉ ◉ │ !
│  ~  │
│ ? ? │
└─────┘`

var mascots = map[MascotVariant]struct {
	art string
	fg  color.Color
}{
	MascotIdle:        {mascotIdle, theme.Primary},
	MascotCelebrating: {mascotCelebrating, theme.ArcadeYellow},
	MascotEncouraging: {mascotEncouraging, theme.Accent},
}

// RenderMascot draws the mascot art for variant, falling back to idle.
func RenderMascot(variant MascotVariant) string {
	m, ok := mascots[variant]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}

// mascotFor picks the variant matching the last finished quiz.
func mascotFor(last *LastResult) MascotVariant {
	switch {
	case last == nil:
		return MascotIdle
	case last.Percentage == 100:
		return MascotCelebrating
	case last.Percentage < 50:
		return MascotEncouraging
	default:
		return MascotIdle
	}
}

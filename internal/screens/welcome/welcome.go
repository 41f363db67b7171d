// Package welcome is the attract screen shown when the terminal quiz starts.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

const frameInterval = 100 * time.Millisecond

// Frames at which each part of the attract screen lights up.
const (
	sparkleFrame = 5
	marqueeFrame = 15
	// blinkFrames is the half period of the "press any key" blink.
	blinkFrames = 5
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ▽  │  │
  │  ├─────┤  │
  │  │ ? ? │  │
  │  └─────┘  │
  ╰───────────╯`

var sparkles = []string{"★", "✦"}

var (
	mascotStyle  = lipgloss.NewStyle().Foreground(theme.Primary)
	marqueeStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	taglineStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
)

type frameMsg time.Time

// WelcomeScreen animates until any key is pressed, then asks for home.
type WelcomeScreen struct {
	frames int
	done   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frames++
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, screen.Emit(screen.GoHomeMsg{})
	}
	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	lines := strings.Split(mascotStyle.Render(mascotArt), "\n")
	if w.frames >= sparkleFrame {
		a := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkles[w.frames%len(sparkles)])
		b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkles[(w.frames+1)%len(sparkles)])
		for i := 0; i < len(lines); i += 3 {
			lines[i] = a + "  " + lines[i] + "  " + b
			a, b = b, a
		}
	}
	sections := []string{strings.Join(lines, "\n")}

	if w.frames >= marqueeFrame {
		prompt := ""
		if (w.frames/blinkFrames)%2 == 0 {
			prompt = promptStyle.Render("PRESS ANY KEY")
		}
		sections = append(sections,
			"",
			marqueeStyle.Render(components.Marquee(width < components.MarqueeWidth+4)),
			"",
			taglineStyle.Render("How much do you really know?"),
			"",
			prompt,
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/content"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/layout"
)

// LastResult summarizes the most recent finished quiz of this process.
type LastResult struct {
	TopicName  string
	Score      int
	Total      int
	Percentage int
}

// HomeScreen lists the catalog topics.
type HomeScreen struct {
	menu          components.Menu
	topicCount    int
	questionCount int
	last          *LastResult
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen for catalog. last may be nil.
func New(catalog *content.Catalog, last *LastResult) *HomeScreen {
	topics := catalog.Topics()

	items := make([]components.MenuItem, 0, len(topics)+1)
	var questionCount int
	for _, t := range topics {
		id := t.ID
		questionCount += t.Len()
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(t.Name),
			Action: func() tea.Cmd {
				return screen.Emit(screen.SelectTopicMsg{ID: id})
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "EXIT GAME",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	menu := components.NewMenu(items)
	return &HomeScreen{
		menu:          menu,
		topicCount:    len(topics),
		questionCount: questionCount,
		last:          last,
		mascotVariant: mascotFor(last),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer bars.
	compact := height+8 < 30 || width < 100
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.topicCount, h.questionCount, h.last, cw, compact))
	if h.topicCount == 0 {
		sections = append(sections, renderEmptyNote(cw))
	}
	// Bordered buttons are three rows tall.
	flat := compact || len(h.menu.Items)*3 > height/2
	sections = append(sections, components.ArcadeMenu(h.menu, cw, flat))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	choose := k.Choose
	choose.SetHelp("1-9", "Pick topic")
	return layout.HintsFor(k.Up, k.Select, choose, k.Quit)
}

package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one button of a Menu. Disabled items are shown but skipped.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of buttons driven by Keys. It is drawn with
// ArcadeMenu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if i, ok := m.next(-1, 1); ok {
		m.Selected = i
	}
	return m
}

func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

func (m Menu) DisabledSet() map[int]bool {
	set := make(map[int]bool)
	for i, item := range m.Items {
		if item.Disabled {
			set[i] = true
		}
	}
	return set
}

// next finds the first enabled item after from in direction dir.
func (m Menu) next(from, dir int) (int, bool) {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return 0, false
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if i, ok := m.next(m.Selected, -1); ok {
			m.Selected = i
		}
	case key.Matches(kmsg, Keys.Down):
		if i, ok := m.next(m.Selected, 1); ok {
			m.Selected = i
		}
	case key.Matches(kmsg, Keys.Select):
		return m, m.activate(m.Selected)
	case key.Matches(kmsg, Keys.Choose):
		if i, ok := DigitIndex(kmsg.String()); ok && i < len(m.Items) && !m.Items[i].Disabled {
			m.Selected = i
			return m, m.activate(i)
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// Package tui hosts the gallery program demonstrating composed
// components: it renders the kit and hot-swaps themes so class-name
// recompilation per theme identity can be observed live.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdhuntington/react-compose/pkg/theme"
)

type keyMap struct {
	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Theme, k.Help, k.Quit}}
}

var defaultKeys = keyMap{
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model contains the Bubbletea state for the component gallery.
type Model struct {
	themes     []*theme.Theme
	themeIndex int
	keys       keyMap
	help       help.Model
	width      int
	quitting   bool
}

// NewModel constructs a gallery model cycling through the given themes.
// The first theme is made current immediately.
func NewModel(themes []*theme.Theme) Model {
	if len(themes) == 0 {
		themes = []*theme.Theme{theme.Default()}
	}
	theme.Set(themes[0])

	return Model{
		themes: themes,
		keys:   defaultKeys,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// CurrentTheme returns the theme the gallery is rendering with.
func (m Model) CurrentTheme() *theme.Theme {
	return m.themes[m.themeIndex]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.themeIndex = (m.themeIndex + 1) % len(m.themes)
			theme.Set(m.themes[m.themeIndex])
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}

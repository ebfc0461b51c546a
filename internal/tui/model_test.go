package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdhuntington/react-compose/pkg/theme"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelInstallsFirstTheme(t *testing.T) {
	first := theme.Default()
	NewModel([]*theme.Theme{first, theme.Dark()})

	assert.Same(t, first, theme.Current())
}

func TestThemeKeyCyclesThemes(t *testing.T) {
	themes := []*theme.Theme{theme.Default(), theme.Dark()}
	m := NewModel(themes)

	next, _ := m.Update(keyMsg('t'))
	model, ok := next.(Model)
	require.True(t, ok)

	assert.Same(t, themes[1], model.CurrentTheme())
	assert.Same(t, themes[1], theme.Current(), "cycling should swap the global theme")

	wrapped, _ := model.Update(keyMsg('t'))
	assert.Same(t, themes[0], wrapped.(Model).CurrentTheme())
}

func TestQuitKey(t *testing.T) {
	m := NewModel([]*theme.Theme{theme.Default()})

	next, cmd := m.Update(keyMsg('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.(Model).View(), "quitting model should render nothing")
}

func TestViewRendersGallery(t *testing.T) {
	m := NewModel([]*theme.Theme{theme.Default()})

	view := m.View()
	assert.Contains(t, view, "Theme: default")
	assert.Contains(t, view, "press t to switch themes")
	assert.Contains(t, view, "Save")
}

func TestGallerySharedWithNonInteractivePath(t *testing.T) {
	theme.Set(theme.Default())
	out := Gallery("default")

	assert.Contains(t, out, "Theme: default")
	assert.Contains(t, out, "Delete")
	assert.Contains(t, out, "pipeline completed")
}

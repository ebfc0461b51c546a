package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jdhuntington/react-compose/pkg/compose"
	"github.com/jdhuntington/react-compose/pkg/kit"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(Gallery(m.CurrentTheme().Name))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Gallery renders every kit component once. It is shared with the
// non-interactive code path.
func Gallery(themeName string) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		kit.Button.Render(compose.Props{Content: "Save"}),
		" ",
		kit.DangerButton.Render(compose.Props{Content: "Delete"}),
		" ",
		kit.GhostButton.Render(compose.Props{Content: "Cancel"}),
	)

	alerts := strings.Join([]string{
		kit.SuccessAlert.Render(compose.Props{Content: "pipeline completed"}),
		kit.ErrorAlert.Render(compose.Props{Content: "compile failed"}),
		kit.WarningAlert.Render(compose.Props{Content: "cache is stale"}),
		kit.InfoAlert.Render(compose.Props{Content: "3 components composed"}),
	}, "\n")

	card := kit.Card.Render(compose.Props{
		Content: "Composed components resolve their slots and style classes " +
			"from the current theme on every render.",
		Extra: map[string]any{
			"title":  "Theme: " + themeName,
			"footer": "press t to switch themes",
		},
	})

	return strings.Join([]string{card, buttons, alerts}, "\n\n")
}

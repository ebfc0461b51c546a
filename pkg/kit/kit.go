// Package kit provides ready-made composed components: Button, Card, and
// Alert, each built with compose and styled through the default
// stylesheet registry. They double as working examples of layered
// composition; wrap any of them with compose.Compose to restyle or
// retarget their slots.
package kit

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jdhuntington/react-compose/pkg/compose"
	"github.com/jdhuntington/react-compose/pkg/stylesheet"
)

// slotStyle resolves a slot's class list against the default registry.
func slotStyle(props compose.Props, key string) lipgloss.Style {
	return stylesheet.DefaultRegistry().Style(props.SlotProps[key].ClassName)
}

// extraText reads a per-render string out of Props.Extra.
func extraText(props compose.Props, key string) string {
	value, _ := props.Extra[key].(string)
	return value
}

// slotText renders a slot value to text. Strings pass through,
// renderables are invoked with empty props, and anything else falls back
// to its Stringer form or nothing.
func slotText(props compose.Props, key string) string {
	switch value := props.Slots[key].(type) {
	case nil:
		return ""
	case string:
		return value
	case compose.Renderable:
		return value.Render(compose.Props{})
	case fmt.Stringer:
		return value.String()
	default:
		return ""
	}
}

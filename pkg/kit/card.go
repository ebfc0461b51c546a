package kit

import (
	"strings"

	"github.com/jdhuntington/react-compose/pkg/compose"
	"github.com/jdhuntington/react-compose/pkg/stylesheet"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

func renderCard(props compose.Props) string {
	var sections []string
	if title := extraText(props, "title"); title != "" {
		sections = append(sections, slotStyle(props, "title").Render(title))
	}
	if props.Content != "" {
		sections = append(sections, slotStyle(props, "body").Render(props.Content))
	}
	if footer := extraText(props, "footer"); footer != "" {
		sections = append(sections, slotStyle(props, "footer").Render(footer))
	}
	return slotStyle(props, "root").Render(strings.Join(sections, "\n"))
}

// Card is a bordered container around its Content. Per-render "title" and
// "footer" strings travel in Props.Extra; the slot assignment itself is
// owned by composition and the theme.
var Card = compose.Compose(compose.RenderFunc(renderCard), compose.Options{
	Name: "card",
	Tokens: func(t *theme.Theme) compose.Tokens {
		return compose.Tokens{
			"surface":   t.TokenString(theme.TokenColorSurface, "#f9fafb"),
			"onSurface": t.TokenString(theme.TokenColorOnSurface, "#111827"),
			"accent":    t.TokenString(theme.TokenColorPrimary, "#3b82f6"),
			"borderFg":  t.TokenString(theme.TokenColorBorder, "#cbd5e1"),
			"border":    t.TokenString(theme.TokenBorderVariant, "rounded"),
		}
	},
	Styles: func(t *theme.Theme, tokens compose.Tokens) map[string]stylesheet.Rules {
		return map[string]stylesheet.Rules{
			"root": {
				"background":       tokens["surface"],
				"foreground":       tokens["onSurface"],
				"border":           tokens["border"],
				"borderForeground": tokens["borderFg"],
				"padding":          1,
			},
			"title":  {"bold": true, "foreground": tokens["accent"]},
			"body":   {"foreground": tokens["onSurface"]},
			"footer": {"faint": true},
		}
	},
})

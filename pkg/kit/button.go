package kit

import (
	"github.com/jdhuntington/react-compose/pkg/compose"
	"github.com/jdhuntington/react-compose/pkg/stylesheet"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

func renderButton(props compose.Props) string {
	label := slotStyle(props, "label").Render(props.Content)
	if icon := slotText(props, "icon"); icon != "" {
		label = slotStyle(props, "icon").Render(icon+" ") + label
	}
	return slotStyle(props, "root").Render(label)
}

func buttonTokens(accentToken, textToken string) compose.TokensFunc {
	return func(t *theme.Theme) compose.Tokens {
		return compose.Tokens{
			"accent":     t.TokenString(accentToken, "#3b82f6"),
			"accentText": t.TokenString(textToken, "#f8fafc"),
			"border":     t.TokenString(theme.TokenBorderVariant, "rounded"),
		}
	}
}

func buttonStyles(t *theme.Theme, tokens compose.Tokens) map[string]stylesheet.Rules {
	return map[string]stylesheet.Rules{
		"root": {
			"background": tokens["accent"],
			"foreground": tokens["accentText"],
			"border":     tokens["border"],
			"paddingX":   2,
		},
		"label": {"bold": true},
		"icon":  {"bold": true},
	}
}

// Button is the base button component. Render it with the label as
// Content; assign the "icon" slot to prefix the label.
var Button = compose.Compose(compose.RenderFunc(renderButton), compose.Options{
	Name:   "button",
	Tokens: buttonTokens(theme.TokenColorPrimary, theme.TokenColorOnPrimary),
	Styles: buttonStyles,
})

// DangerButton restyles Button with the theme's danger color.
var DangerButton = compose.Compose(Button, compose.Options{
	Name:   "danger-button",
	Tokens: buttonTokens(theme.TokenColorDanger, theme.TokenColorOnPrimary),
})

// GhostButton strips the button background down to an outline.
var GhostButton = compose.Compose(Button, compose.Options{
	Name: "ghost-button",
	Styles: func(t *theme.Theme, tokens compose.Tokens) map[string]stylesheet.Rules {
		return map[string]stylesheet.Rules{
			"root": {
				"foreground": tokens["accent"],
				"border":     tokens["border"],
				"paddingX":   2,
			},
		}
	},
})

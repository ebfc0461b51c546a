package kit

import (
	"github.com/jdhuntington/react-compose/pkg/compose"
	"github.com/jdhuntington/react-compose/pkg/stylesheet"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

func renderAlert(props compose.Props) string {
	message := slotStyle(props, "message").Render(props.Content)
	if icon := slotText(props, "icon"); icon != "" {
		message = slotStyle(props, "icon").Render(icon+" ") + message
	}
	return slotStyle(props, "root").Render(message)
}

func alertOptions(name, colorToken, icon string) compose.Options {
	return compose.Options{
		Name:  name,
		Slots: compose.Slots{"icon": icon},
		Tokens: func(t *theme.Theme) compose.Tokens {
			return compose.Tokens{
				"tone":   t.TokenString(colorToken, "#64748b"),
				"onTone": t.TokenString(theme.TokenColorOnPrimary, "#f8fafc"),
			}
		},
		Styles: func(t *theme.Theme, tokens compose.Tokens) map[string]stylesheet.Rules {
			return map[string]stylesheet.Rules{
				"root": {
					"background": tokens["tone"],
					"foreground": tokens["onTone"],
					"border":     "normal",
					"paddingX":   1,
				},
				"icon":    {"bold": true},
				"message": {},
			}
		},
	}
}

// Alert is the neutral base alert; the variant components below recompose
// it with tone-specific tokens and icons.
var Alert = compose.Compose(
	compose.RenderFunc(renderAlert),
	alertOptions("alert", theme.TokenColorInfo, ""),
)

// SuccessAlert renders its message in the theme's success tone.
var SuccessAlert = compose.Compose(Alert, alertOptions("success-alert", theme.TokenColorSuccess, "✓"))

// ErrorAlert renders its message in the theme's danger tone.
var ErrorAlert = compose.Compose(Alert, alertOptions("error-alert", theme.TokenColorDanger, "✗"))

// WarningAlert renders its message in the theme's warning tone.
var WarningAlert = compose.Compose(Alert, alertOptions("warning-alert", theme.TokenColorWarning, "⚠"))

// InfoAlert renders its message in the theme's info tone.
var InfoAlert = compose.Compose(Alert, alertOptions("info-alert", theme.TokenColorInfo, "ℹ"))

package theme

// Token names used by the built-in themes and the kit components. Custom
// themes are free to define additional tokens; generators simply read
// whatever they need.
const (
	TokenColorPrimary   = "colorPrimary"
	TokenColorSecondary = "colorSecondary"
	TokenColorSurface   = "colorSurface"
	TokenColorOnPrimary = "colorOnPrimary"
	TokenColorOnSurface = "colorOnSurface"
	TokenColorSuccess   = "colorSuccess"
	TokenColorWarning   = "colorWarning"
	TokenColorDanger    = "colorDanger"
	TokenColorInfo      = "colorInfo"
	TokenColorMuted     = "colorMuted"
	TokenColorBorder    = "colorBorder"
	TokenPaddingSmall   = "paddingSmall"
	TokenPaddingMedium  = "paddingMedium"
	TokenBorderVariant  = "borderVariant"
)

// Default returns the built-in light theme. Each call allocates a fresh
// instance; hold on to the result if identity matters.
func Default() *Theme {
	return &Theme{
		Name:       "default",
		Components: map[string]map[string]any{},
		Tokens: map[string]any{
			TokenColorPrimary:   "#3b82f6",
			TokenColorSecondary: "#a855f7",
			TokenColorSurface:   "#f9fafb",
			TokenColorOnPrimary: "#f8fafc",
			TokenColorOnSurface: "#111827",
			TokenColorSuccess:   "#22c55e",
			TokenColorWarning:   "#eab308",
			TokenColorDanger:    "#ef4444",
			TokenColorInfo:      "#06b6d4",
			TokenColorMuted:     "#64748b",
			TokenColorBorder:    "#cbd5e1",
			TokenPaddingSmall:   1,
			TokenPaddingMedium:  2,
			TokenBorderVariant:  "rounded",
		},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	t := Default()
	t.Name = "dark"
	t.Tokens[TokenColorPrimary] = "#60a5fa"
	t.Tokens[TokenColorSecondary] = "#c084fc"
	t.Tokens[TokenColorSurface] = "#111827"
	t.Tokens[TokenColorOnPrimary] = "#0b1120"
	t.Tokens[TokenColorOnSurface] = "#f9fafb"
	t.Tokens[TokenColorMuted] = "#94a3b8"
	t.Tokens[TokenColorBorder] = "#334155"
	return t
}

// Package compose lets component authors layer styling and slot behavior
// onto renderables.
//
// Compose wraps a base renderable with an option layer carrying a name,
// slot assignments, and theme-parameterized token and style generators.
// Wrapping a composed component stacks another layer; at render time the
// stack is folded into one slot assignment and one set of style classes,
// with the current theme able to override slot choices by component name.
// The innermost base renderable is always invoked exactly once per render
// with the fully merged props, however deep the composition goes.
//
//	button := compose.Compose(compose.RenderFunc(renderButton), compose.Options{
//	    Name:  "button",
//	    Slots: compose.Slots{"icon": "▶"},
//	    Styles: func(t *theme.Theme, tokens compose.Tokens) map[string]stylesheet.Rules {
//	        return map[string]stylesheet.Rules{
//	            "root": {"background": t.TokenString(theme.TokenColorPrimary, "")},
//	        }
//	    },
//	})
//	primary := compose.Compose(button, compose.Options{Name: "primary-button"})
//
// Resolution degrades instead of failing: missing names fall back to a
// placeholder, a missing theme produces neutral results plus a warning
// diagnostic, and nil generator fields simply contribute nothing.
package compose

import (
	"github.com/rs/zerolog"

	"github.com/jdhuntington/react-compose/pkg/stylesheet"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

// unnamedPlaceholder substitutes for a component composed without a
// name. It only affects class-name prefixes and diagnostics.
const unnamedPlaceholder = "unnamed-component"

// Composer bundles the external collaborators composition depends on:
// the theme accessor, the style compiler, and a diagnostics logger.
type Composer struct {
	themeFn  func() *theme.Theme
	compiler stylesheet.Compiler
	log      zerolog.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithThemeAccessor sets the accessor consulted once per render for the
// current theme.
func WithThemeAccessor(fn func() *theme.Theme) ComposerOption {
	return func(c *Composer) {
		c.themeFn = fn
	}
}

// WithCompiler sets the style compiler.
func WithCompiler(compiler stylesheet.Compiler) ComposerOption {
	return func(c *Composer) {
		c.compiler = compiler
	}
}

// WithLogger sets the logger receiving non-fatal diagnostics.
func WithLogger(log zerolog.Logger) ComposerOption {
	return func(c *Composer) {
		c.log = log
	}
}

// New creates a Composer. Defaults: the global theme manager, the default
// lipgloss compiler, and a no-op logger.
func New(opts ...ComposerOption) *Composer {
	c := &Composer{
		themeFn:  theme.Current,
		compiler: stylesheet.DefaultCompiler(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose wraps base with an option layer and returns the composed
// component. If base is itself composed, its stack is extended; the
// original innermost renderable is threaded through unchanged.
func (c *Composer) Compose(base Renderable, opts Options) *Component {
	stack := buildStack(base, opts)

	direct := base
	if composed, ok := base.(*Component); ok {
		direct = composed.direct
	}

	name, defaultTheme := mergeStack(stack)
	if name == "" {
		c.log.Warn().Msg("compose: options carry no name, using placeholder")
		name = unnamedPlaceholder
	}

	shortcuts := make(Slots, len(opts.Slots))
	for key, value := range opts.Slots {
		shortcuts[key] = value
	}

	return &Component{
		composer:     c,
		stack:        stack,
		direct:       direct,
		name:         name,
		defaultTheme: defaultTheme,
		shortcuts:    shortcuts,
	}
}

// mergeStack reduces a stack to the metadata read at render time. Later
// layers win, matching slot and token override order; a layer that leaves
// a field unset does not clear an earlier layer's value.
func mergeStack(stack Stack) (name string, defaultTheme *theme.Theme) {
	for _, layer := range stack {
		if layer.Name != "" {
			name = layer.Name
		}
		if layer.DefaultTheme != nil {
			defaultTheme = layer.DefaultTheme
		}
	}
	return name, defaultTheme
}

var defaultComposer = New()

// Compose composes with the default Composer.
func Compose(base Renderable, opts Options) *Component {
	return defaultComposer.Compose(base, opts)
}

// SetDefaultLogger routes the default composer's diagnostics, including
// those of components already composed with it, to the given logger.
// Intended for program setup, before rendering begins.
func SetDefaultLogger(log zerolog.Logger) {
	defaultComposer.log = log
}

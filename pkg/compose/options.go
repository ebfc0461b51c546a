package compose

import (
	"github.com/jdhuntington/react-compose/pkg/stylesheet"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

// Renderable is anything that can be rendered with a props object. In
// this ecosystem renderables produce strings, in the manner of a terminal
// UI view function.
type Renderable interface {
	Render(props Props) string
}

// RenderFunc adapts a plain function to the Renderable interface.
type RenderFunc func(props Props) string

// Render implements Renderable.
func (fn RenderFunc) Render(props Props) string {
	return fn(props)
}

// Slots maps a slot key to its assigned value: a Renderable, a literal
// string, or any marker the base renderable knows how to interpret.
type Slots map[string]any

// SlotProps carries the per-slot properties handed to a base renderable.
// ClassName is a space-separated style class list resolvable through a
// stylesheet registry; Extra carries anything else the caller supplied.
type SlotProps struct {
	ClassName string
	Extra     map[string]any
}

// Props is the properties object passed through a render. The render
// wrapper copies it, replacing Slots and SlotProps with resolved values;
// all other fields pass through to the innermost renderable unchanged.
type Props struct {
	Content   string
	Slots     Slots
	SlotProps map[string]SlotProps
	Extra     map[string]any
}

// Tokens is a resolved token mapping: token name to theme-derived value.
type Tokens map[string]any

// TokensFunc derives token values from a theme. The theme may be nil;
// generators are responsible for defending against that.
type TokensFunc func(t *theme.Theme) Tokens

// StylesFunc derives per-slot style definitions from a theme and the
// already-resolved tokens.
type StylesFunc func(t *theme.Theme, tokens Tokens) map[string]stylesheet.Rules

// Options is one layer of composition configuration. Every field is
// optional; an absent field contributes nothing when the layer is merged.
type Options struct {
	// Name identifies the component. It prefixes generated class names
	// and keys theme-level slot overrides.
	Name string

	// Slots assigns slot values. Later layers override earlier ones on
	// key collision; theme overrides win over all layers.
	Slots Slots

	// Tokens generates token values from the current theme.
	Tokens TokensFunc

	// Styles generates per-slot style definitions.
	Styles StylesFunc

	// DefaultTheme is used when the theme accessor yields nothing.
	DefaultTheme *theme.Theme
}

// Stack is the ordered accumulation of option layers applied to a
// component, base-most first. A stack is never mutated once attached to a
// component; each compose call produces a fresh one.
type Stack []Options

// buildStack appends a new layer to a base's existing stack, or starts a
// fresh single-layer stack when the base is not composed.
func buildStack(base Renderable, opts Options) Stack {
	if composed, ok := base.(*Component); ok {
		stack := make(Stack, len(composed.stack)+1)
		copy(stack, composed.stack)
		stack[len(composed.stack)] = opts
		return stack
	}
	return Stack{opts}
}

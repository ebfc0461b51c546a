package compose

import (
	"strings"

	"github.com/jdhuntington/react-compose/pkg/stylesheet"
	"github.com/jdhuntington/react-compose/pkg/theme"
)

// Component is a composed renderable: the render wrapper plus its
// immutable composition metadata. It implements Renderable, so it can be
// composed again or rendered directly.
type Component struct {
	composer     *Composer
	stack        Stack
	direct       Renderable
	name         string
	defaultTheme *theme.Theme
	shortcuts    Slots
	cache        classCache
}

// Render resolves the current theme, slots, and style classes, then
// invokes the innermost base renderable once with the merged props.
func (c *Component) Render(props Props) string {
	t := c.composer.themeFn()
	if t == nil {
		t = c.defaultTheme
	}
	if t == nil {
		c.composer.log.Warn().
			Str("component", c.name).
			Msg("compose: no theme available, rendering with neutral results")
	}

	slots := ResolveSlots(c.name, c.stack, t)
	classes := c.classes(t)

	resolved := make(map[string]SlotProps, len(props.SlotProps)+len(classes))
	for key, slotProps := range props.SlotProps {
		resolved[key] = slotProps
	}
	for key, class := range classes {
		entry := resolved[key]
		entry.ClassName = strings.TrimSpace(entry.ClassName + " " + class)
		resolved[key] = entry
	}

	next := props
	next.Slots = slots
	next.SlotProps = resolved
	return c.direct.Render(next)
}

// classes returns the class-name mapping for a theme, computing and
// caching it on first use per theme identity. The sheet is attached on
// the cache-miss path only, so activation happens once per distinct
// computed style set.
func (c *Component) classes(t *theme.Theme) map[string]string {
	if cached, ok := c.cache.load(t); ok {
		return cached
	}

	tokens := ResolveTokens(c.stack, t)
	defs := foldStack(c.stack, func(layer Options) map[string]stylesheet.Rules {
		if layer.Styles == nil {
			return nil
		}
		return layer.Styles(t, tokens)
	})

	sheet := c.composer.compiler.Compile(defs, stylesheet.Options{
		ClassNamePrefix: c.name + "-",
	})
	sheet.Attach()

	classes := sheet.Classes()
	c.cache.store(t, classes)
	return classes
}

// Name returns the component's resolved name.
func (c *Component) Name() string {
	return c.name
}

// Stack returns a copy of the component's option stack, base-most layer
// first.
func (c *Component) Stack() Stack {
	stack := make(Stack, len(c.stack))
	copy(stack, c.stack)
	return stack
}

// DirectRender returns the original innermost renderable at the bottom of
// the composition chain.
func (c *Component) DirectRender() Renderable {
	return c.direct
}

// Slot returns the shortcut slot value copied from the final option
// layer, if one was declared.
func (c *Component) Slot(key string) (any, bool) {
	value, ok := c.shortcuts[key]
	return value, ok
}

// Slots returns a copy of the final option layer's slot shortcuts.
func (c *Component) Slots() Slots {
	slots := make(Slots, len(c.shortcuts))
	for key, value := range c.shortcuts {
		slots[key] = value
	}
	return slots
}

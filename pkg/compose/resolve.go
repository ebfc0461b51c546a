package compose

import "github.com/jdhuntington/react-compose/pkg/theme"

// foldStack merges one field across a stack, base-most first, later
// layers overwriting earlier ones on key collision. Tokens, styles, and
// slots all merge through this single utility so their override semantics
// cannot drift apart.
func foldStack[V any](stack Stack, field func(Options) map[string]V) map[string]V {
	merged := make(map[string]V)
	for _, layer := range stack {
		for key, value := range field(layer) {
			merged[key] = value
		}
	}
	return merged
}

// ResolveTokens folds the stack's token generators against a theme. A
// layer without a generator contributes nothing; an empty stack yields an
// empty mapping. The theme is passed to generators as-is, nil included.
func ResolveTokens(stack Stack, t *theme.Theme) Tokens {
	return Tokens(foldStack(stack, func(layer Options) map[string]any {
		if layer.Tokens == nil {
			return nil
		}
		return layer.Tokens(t)
	}))
}

// ResolveSlots folds the stack's slot assignments and then applies the
// theme's per-component overrides. Theme overrides always win over
// composition-supplied slots, letting a theme retarget any composed
// component's slots by name.
func ResolveSlots(name string, stack Stack, t *theme.Theme) Slots {
	slots := Slots(foldStack(stack, func(layer Options) map[string]any {
		return layer.Slots
	}))
	for key, value := range t.Overrides(name) {
		slots[key] = value
	}
	return slots
}

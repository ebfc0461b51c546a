package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMintsPrefixedClassNames(t *testing.T) {
	registry := NewRegistry()
	compiler := NewCompiler(registry)

	sheet := compiler.Compile(map[string]Rules{
		"root":  {"bold": true},
		"label": {},
	}, Options{ClassNamePrefix: "button-"})

	classes := sheet.Classes()
	require.Len(t, classes, 2)
	assert.Contains(t, classes["root"], "button-root-")
	assert.Contains(t, classes["label"], "button-label-")
}

func TestDistinctSheetsMintDistinctClasses(t *testing.T) {
	registry := NewRegistry()
	compiler := NewCompiler(registry)

	first := compiler.Compile(map[string]Rules{"root": {}}, Options{ClassNamePrefix: "button-"})
	second := compiler.Compile(map[string]Rules{"root": {}}, Options{ClassNamePrefix: "button-"})

	assert.NotEqual(t, first.Classes()["root"], second.Classes()["root"],
		"sheets compiled separately must not collide on class names")
}

func TestAttachRegistersClassesOnce(t *testing.T) {
	registry := NewRegistry()
	compiler := NewCompiler(registry)

	sheet := compiler.Compile(map[string]Rules{"root": {"bold": true}}, Options{ClassNamePrefix: "b-"})
	assert.Equal(t, 0, registry.Len(), "classes should not be visible before Attach")

	sheet.Attach()
	assert.Equal(t, 1, registry.Len())

	style, ok := registry.Lookup(sheet.Classes()["root"])
	require.True(t, ok)
	assert.True(t, style.GetBold())

	sheet.Attach()
	assert.Equal(t, 1, registry.Len(), "repeated Attach must not duplicate registrations")
}

func TestCompileRulesProperties(t *testing.T) {
	style := compileRules(Rules{
		"foreground": "#ff0000",
		"background": "#00ff00",
		"bold":       true,
		"italic":     true,
		"faint":      true,
		"padding":    2,
		"paddingX":   3,
		"border":     "rounded",
		"width":      20,
		"align":      "center",
	})

	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())
	assert.True(t, style.GetFaint())
	assert.Equal(t, 3, style.GetPaddingLeft(), "paddingX should override the all-sides padding")
	assert.Equal(t, 2, style.GetPaddingTop())
	assert.Equal(t, 20, style.GetWidth())
	assert.NotEmpty(t, style.GetForeground())
	assert.NotEmpty(t, style.GetBackground())
	assert.NotEqual(t, 0, style.GetBorderTopSize())
}

func TestCompileRulesIgnoresUnknownAndMalformed(t *testing.T) {
	style := compileRules(Rules{
		"foreground": 42,       // wrong type
		"padding":    "wide",   // wrong type
		"boxShadow":  "2px",    // unknown property
		"bold":       "please", // wrong type
	})

	assert.False(t, style.GetBold())
	assert.Equal(t, 0, style.GetPaddingLeft())
}

func TestCompileRulesNumericCoercion(t *testing.T) {
	// YAML-sourced rules arrive as untyped numbers.
	style := compileRules(Rules{"padding": float64(2), "width": int64(12)})
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 12, style.GetWidth())
}

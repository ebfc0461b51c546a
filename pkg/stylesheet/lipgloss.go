package stylesheet

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// LipglossCompiler compiles style rules into lipgloss styles and attaches
// them to a Registry.
//
// Recognized rule properties:
//
//	foreground, background, borderForeground  string color (hex or ANSI)
//	bold, italic, underline, faint, reverse   bool
//	padding, margin                           int, applied on all sides
//	paddingX, paddingY, marginX, marginY      int
//	border                                    "normal", "rounded", "thick",
//	                                          "double" or "none"
//	width, height                             int
//	align                                     "left", "center", "right"
//
// Unknown properties are ignored so themes and option layers can carry
// data the compiler does not understand.
type LipglossCompiler struct {
	registry *Registry
}

// NewCompiler returns a compiler attaching into the given registry.
func NewCompiler(registry *Registry) *LipglossCompiler {
	return &LipglossCompiler{registry: registry}
}

// DefaultCompiler returns a compiler attaching into the default registry.
func DefaultCompiler() *LipglossCompiler {
	return NewCompiler(DefaultRegistry())
}

// Compile builds a Sheet from per-slot rules. Class names are minted as
// "<prefix><slot>-<serial>" with one serial per compiled sheet.
func (c *LipglossCompiler) Compile(defs map[string]Rules, opts Options) Sheet {
	serial := c.registry.nextSerial()

	keys := make([]string, 0, len(defs))
	for key := range defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := &lipglossSheet{
		registry: c.registry,
		classes:  make(map[string]string, len(defs)),
		styles:   make(map[string]lipgloss.Style, len(defs)),
	}
	for _, key := range keys {
		class := fmt.Sprintf("%s%s-%d", opts.ClassNamePrefix, key, serial)
		s.classes[key] = class
		s.styles[class] = compileRules(defs[key])
	}
	return s
}

type lipglossSheet struct {
	registry *Registry
	classes  map[string]string
	styles   map[string]lipgloss.Style

	mu       sync.Mutex
	attached bool
}

func (s *lipglossSheet) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached {
		return
	}
	s.attached = true
	for class, style := range s.styles {
		s.registry.register(class, style)
	}
}

func (s *lipglossSheet) Classes() map[string]string {
	return s.classes
}

// ruleOrder fixes the application order: shorthands such as "padding"
// come before axis-specific properties so the specific ones win.
var ruleOrder = []string{
	"foreground", "background", "borderForeground",
	"bold", "italic", "underline", "faint", "reverse",
	"padding", "paddingX", "paddingY",
	"margin", "marginX", "marginY",
	"border", "width", "height", "align",
}

func compileRules(rules Rules) lipgloss.Style {
	style := lipgloss.NewStyle()

	for _, property := range ruleOrder {
		value, ok := rules[property]
		if !ok {
			continue
		}
		switch property {
		case "foreground":
			if color, ok := stringValue(value); ok {
				style = style.Foreground(lipgloss.Color(color))
			}
		case "background":
			if color, ok := stringValue(value); ok {
				style = style.Background(lipgloss.Color(color))
			}
		case "borderForeground":
			if color, ok := stringValue(value); ok {
				style = style.BorderForeground(lipgloss.Color(color))
			}
		case "bold":
			style = style.Bold(boolValue(value))
		case "italic":
			style = style.Italic(boolValue(value))
		case "underline":
			style = style.Underline(boolValue(value))
		case "faint":
			style = style.Faint(boolValue(value))
		case "reverse":
			style = style.Reverse(boolValue(value))
		case "padding":
			if n, ok := intValue(value); ok {
				style = style.Padding(n)
			}
		case "paddingX":
			if n, ok := intValue(value); ok {
				style = style.PaddingLeft(n).PaddingRight(n)
			}
		case "paddingY":
			if n, ok := intValue(value); ok {
				style = style.PaddingTop(n).PaddingBottom(n)
			}
		case "margin":
			if n, ok := intValue(value); ok {
				style = style.Margin(n)
			}
		case "marginX":
			if n, ok := intValue(value); ok {
				style = style.MarginLeft(n).MarginRight(n)
			}
		case "marginY":
			if n, ok := intValue(value); ok {
				style = style.MarginTop(n).MarginBottom(n)
			}
		case "border":
			style = style.Border(borderValue(value))
		case "width":
			if n, ok := intValue(value); ok {
				style = style.Width(n)
			}
		case "height":
			if n, ok := intValue(value); ok {
				style = style.Height(n)
			}
		case "align":
			style = style.Align(alignValue(value))
		}
	}

	return style
}

func stringValue(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func boolValue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

func intValue(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func borderValue(value any) lipgloss.Border {
	variant, _ := stringValue(value)
	switch variant {
	case "normal":
		return lipgloss.NormalBorder()
	case "rounded":
		return lipgloss.RoundedBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.Border{}
	}
}

func alignValue(value any) lipgloss.Position {
	alignment, _ := stringValue(value)
	switch alignment {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

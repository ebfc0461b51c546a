package stylesheet

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Registry maps attached class names to their lipgloss styles.
//
// Each attached sheet registers its classes exactly once; class names are
// minted with a per-sheet serial so distinct sheets never collide.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]lipgloss.Style
	serial  int
}

// NewRegistry allocates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]lipgloss.Style)}
}

func (r *Registry) nextSerial() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serial++
	return r.serial
}

func (r *Registry) register(class string, style lipgloss.Style) {
	r.mu.Lock()
	r.classes[class] = style
	r.mu.Unlock()
}

// Lookup returns the style registered under a single class name.
func (r *Registry) Lookup(class string) (lipgloss.Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	style, ok := r.classes[class]
	return style, ok
}

// Len reports the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}

// Style resolves a space-separated class list to one merged style. Later
// classes win on conflicting properties, matching the later-wins rule
// used everywhere else in composition. Unknown classes are skipped.
func (r *Registry) Style(classNames string) lipgloss.Style {
	fields := strings.Fields(classNames)

	resolved := make([]lipgloss.Style, 0, len(fields))
	for _, class := range fields {
		if style, ok := r.Lookup(class); ok {
			resolved = append(resolved, style)
		}
	}
	if len(resolved) == 0 {
		return lipgloss.NewStyle()
	}

	// Inherit keeps the receiver's properties, so fold from the last
	// class backwards to let later classes take precedence.
	merged := resolved[len(resolved)-1]
	for i := len(resolved) - 2; i >= 0; i-- {
		merged = merged.Inherit(resolved[i])
	}
	return merged
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the default
// compiler.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

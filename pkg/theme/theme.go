package theme

import "sync"

// Theme carries the appearance data consumed by composed components.
//
// Components maps a component name to per-slot overrides; an entry there
// forcibly retargets that component's slots regardless of how it was
// composed. Tokens holds arbitrary brand data read by token generator
// functions; the library itself assigns no meaning to its keys.
//
// Themes are handled by pointer and compared by identity: class-name
// caches key on the *Theme instance, so a theme must not be mutated once
// it is in use. To change appearance, build a new Theme and swap it in.
type Theme struct {
	Name       string
	Components map[string]map[string]any
	Tokens     map[string]any
}

// Token looks up a token value. Safe to call on a nil theme.
func (t *Theme) Token(name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	value, ok := t.Tokens[name]
	return value, ok
}

// TokenString looks up a token and returns it as a string, or fallback if
// the token is absent or not a string.
func (t *Theme) TokenString(name, fallback string) string {
	value, ok := t.Token(name)
	if !ok {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	return s
}

// Overrides returns the per-slot overrides registered for a component
// name, or nil when the theme carries none. Safe to call on a nil theme.
func (t *Theme) Overrides(component string) map[string]any {
	if t == nil {
		return nil
	}
	return t.Components[component]
}

// Manager coordinates access to the process's current theme.
//
// Unlike a value-copying holder, Manager hands out the stored *Theme
// unchanged: downstream caches key on theme identity, so the instance a
// caller set is the instance every reader observes.
type Manager struct {
	mu      sync.RWMutex
	current *Theme
}

// NewManager allocates a Manager holding the provided theme.
func NewManager(t *Theme) *Manager {
	return &Manager{current: t}
}

// Current returns the managed theme. May be nil if none was set.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set replaces the managed theme.
func (m *Manager) Set(t *Theme) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

var defaultManager = NewManager(Default())

// Current returns the global theme.
func Current() *Theme {
	return defaultManager.Current()
}

// Set replaces the global theme.
func Set(t *Theme) {
	defaultManager.Set(t)
}

package compose

import (
	"runtime"
	"sync"
	"weak"

	"github.com/jdhuntington/react-compose/pkg/theme"
)

// classCache memoizes resolved class-name mappings per theme identity.
//
// Entries are keyed by weak theme pointers so a cached theme stays
// collectible once nothing else references it; a cleanup evicts the entry
// when the theme is collected. The nil theme gets its own slot. The mutex
// exists for that cleanup, which runs off the render path.
type classCache struct {
	mu        sync.Mutex
	entries   map[weak.Pointer[theme.Theme]]map[string]string
	absent    map[string]string
	hasAbsent bool
}

func (c *classCache) load(t *theme.Theme) (map[string]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t == nil {
		return c.absent, c.hasAbsent
	}
	classes, ok := c.entries[weak.Make(t)]
	return classes, ok
}

func (c *classCache) store(t *theme.Theme, classes map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t == nil {
		c.absent = classes
		c.hasAbsent = true
		return
	}
	if c.entries == nil {
		c.entries = make(map[weak.Pointer[theme.Theme]]map[string]string)
	}
	key := weak.Make(t)
	c.entries[key] = classes
	runtime.AddCleanup(t, func(k weak.Pointer[theme.Theme]) {
		c.mu.Lock()
		delete(c.entries, k)
		c.mu.Unlock()
	}, key)
}

// len reports live entry count, counting the nil-theme slot.
func (c *classCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	if c.hasAbsent {
		n++
	}
	return n
}

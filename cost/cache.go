package cost

import (
	"fmt"
	"sync"
)

// Cache memoises the tables of one Propagator by depth. Tables are built
// incrementally from the deepest one already cached. Safe for concurrent use.
type Cache struct {
	prop   *Propagator
	mu     sync.Mutex
	tables []*Table // tables[k] has depth k
}

// NewCache returns an empty cache over p. A nil p selects Directional().
func NewCache(p *Propagator) *Cache {
	if p == nil {
		p = directional
	}

	return &Cache{prop: p}
}

// Get returns the table at depth n, building and storing any missing depths.
func (c *Cache) Get(n int) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.tables) == 0 {
		c.tables = append(c.tables, c.prop.Unit())
	}
	for len(c.tables) <= n {
		next, err := c.prop.Next(c.tables[len(c.tables)-1])
		if err != nil {
			return nil, err
		}
		c.tables = append(c.tables, next)
	}

	return c.tables[n], nil
}

// Len returns how many depths are cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tables)
}

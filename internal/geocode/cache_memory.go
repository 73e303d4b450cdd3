package geocode

import (
	"context"
	"sync"
)

// InMemoryCache keeps geocode entries in a map. It is used in tests and
// carries the same first-writer-wins semantics as the postgres cache.
type InMemoryCache struct {
	mu     sync.Mutex
	points map[string]Point
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		points: make(map[string]Point),
	}
}

func (c *InMemoryCache) Lookup(ctx context.Context, address string) (*Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	point, ok := c.points[address]
	if !ok {
		return nil, nil
	}
	return &point, nil
}

func (c *InMemoryCache) Store(ctx context.Context, address string, point Point) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.points[address]
	if ok {
		if existing != point {
			return ErrConflict
		}
		return nil
	}

	c.points[address] = point
	return nil
}

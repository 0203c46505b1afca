package decoration

import "github.com/LISSConsulting/LISSTech.Gutter/internal/grid"

// GridCache keeps the grid of a lined layout between passes.
type GridCache interface {
	// Get returns the grid built for spanCount and itemCount, or nil.
	Get(spanCount, itemCount int) *grid.Grid
	Put(spanCount, itemCount int, g *grid.Grid)
	Clear()
}

// InMemoryCache holds the last grid put in it.
type InMemoryCache struct {
	spanCount int
	itemCount int
	g         *grid.Grid
}

// NewInMemoryCache returns an empty cache.
func NewInMemoryCache() GridCache {
	return &InMemoryCache{}
}

// Get implements GridCache.
func (c *InMemoryCache) Get(spanCount, itemCount int) *grid.Grid {
	if c.g == nil || c.spanCount != spanCount || c.itemCount != itemCount {
		return nil
	}
	return c.g
}

// Put implements GridCache.
func (c *InMemoryCache) Put(spanCount, itemCount int, g *grid.Grid) {
	c.spanCount, c.itemCount, c.g = spanCount, itemCount, g
}

// Clear implements GridCache.
func (c *InMemoryCache) Clear() {
	c.g = nil
}

package test

import (
	"context"
	"strconv"
	"sync"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// MenuCacheStub is an in-memory menu cache with call counters.
type MenuCacheStub struct {
	mu      sync.Mutex
	entries map[string][]model.MenuItem

	GetErr        error
	SetErr        error
	InvalidateErr error

	Hits          int
	Misses        int
	Invalidations int
}

// Get returns cached items for filter.
func (c *MenuCacheStub) Get(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, false, c.GetErr
	}
	items, ok := c.entries[cacheKey(filter)]
	if ok {
		c.Hits++
	} else {
		c.Misses++
	}
	return items, ok, nil
}

// Set stores items for filter.
func (c *MenuCacheStub) Set(ctx context.Context, filter model.ItemFilter, items []model.MenuItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.SetErr != nil {
		return c.SetErr
	}
	if c.entries == nil {
		c.entries = make(map[string][]model.MenuItem)
	}
	c.entries[cacheKey(filter)] = items
	return nil
}

// Invalidate drops every entry.
func (c *MenuCacheStub) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidations++
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	c.entries = nil
	return nil
}

func cacheKey(filter model.ItemFilter) string {
	if filter.Available == nil {
		return "all"
	}
	return strconv.FormatBool(*filter.Available)
}

package menucache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polkiloo/bakery/internal/domain/model"
)

const keyPrefix = "menu_items_"

// Cache keeps catalog listings keyed by filter.
type Cache interface {
	Get(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, bool, error)
	Set(ctx context.Context, filter model.ItemFilter, items []model.MenuItem) error
	Invalidate(ctx context.Context) error
}

// RedisCache stores JSON encoded listings in Redis with a fixed lifetime.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache wraps an established client.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Key returns the cache key for a listing filter.
func Key(filter model.ItemFilter) string {
	if filter.Available == nil {
		return keyPrefix + "all"
	}
	return keyPrefix + "available_" + strconv.FormatBool(*filter.Available)
}

// Get returns the cached listing; the second result is false on a miss.
func (c *RedisCache) Get(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, bool, error) {
	raw, err := c.client.Get(ctx, Key(filter)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read menu cache: %w", err)
	}

	var items []model.MenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("decode menu cache: %w", err)
	}
	if items == nil {
		items = []model.MenuItem{}
	}
	return items, true, nil
}

// Set stores a listing for filter.
func (c *RedisCache) Set(ctx context.Context, filter model.ItemFilter, items []model.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode menu cache: %w", err)
	}
	if err := c.client.Set(ctx, Key(filter), string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("write menu cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan menu cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate menu cache: %w", err)
	}
	c.logger.Debug("menu cache invalidated", slog.Int("keys", len(keys)))
	return nil
}

// Close releases the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Noop is used when no Redis URL is configured. Every lookup misses.
type Noop struct{}

func (Noop) Get(context.Context, model.ItemFilter) ([]model.MenuItem, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, model.ItemFilter, []model.MenuItem) error { return nil }

func (Noop) Invalidate(context.Context) error { return nil }

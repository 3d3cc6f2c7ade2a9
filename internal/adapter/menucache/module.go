package menucache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
)

// Module exposes the menu cache to fx graph.
var Module = fx.Provide(newCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
}

func newCache(p cacheParams) (Cache, error) {
	if p.Config.RedisURL == "" {
		p.Logger.Info("menu cache disabled")
		return Noop{}, nil
	}

	opt, err := redis.ParseURL(p.Config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(p.Ctx, p.Config.StoreTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		p.Logger.Warn("redis unavailable, running without menu cache", slog.String("error", err.Error()))
		_ = client.Close()
		return Noop{}, nil
	}

	cache := NewRedisCache(client, p.Config.MenuCacheTTL, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return cache.Close()
		},
	})
	p.Logger.Info("menu cache enabled", slog.Duration("ttl", p.Config.MenuCacheTTL))
	return cache, nil
}

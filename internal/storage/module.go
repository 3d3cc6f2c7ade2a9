package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/domain/repository"
	"github.com/polkiloo/bakery/internal/storage/mongo"
	"github.com/polkiloo/bakery/internal/storage/postgres"
)

// Backend is a persistence implementation selected at startup.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close()
}

// Module wires the configured storage backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(
		func(b Backend) repository.ItemRepository { return b.Items() },
		func(b Backend) repository.OrderRepository { return b.Orders() },
		func(b Backend) repository.AnalyticsRepository { return b.Analytics() },
	),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var (
	openPostgres = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
		return postgres.New(ctx, cfg.DatabaseURI, logger)
	}
	openMongo = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
		return mongo.New(ctx, cfg.DatabaseURI, cfg.DatabaseName, logger)
	}
)

func newBackend(p backendParams) (Backend, error) {
	return Open(p.Ctx, p.Config, p.Logger)
}

// Open connects to the backend named by the database URI scheme.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	driver, err := cfg.StorageDriver()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	logger = logger.With(slog.String("driver", driver))
	switch driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverMongo:
		return openMongo(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}

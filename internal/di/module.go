package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/adapter/menucache"
	"github.com/polkiloo/bakery/internal/app"
	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/logger"
	"github.com/polkiloo/bakery/internal/server/http/handlers"
	"github.com/polkiloo/bakery/internal/server/http/router"
	"github.com/polkiloo/bakery/internal/storage"
	"github.com/polkiloo/bakery/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		menucache.Module,
		usecase.Module,
		fx.Provide(func(c menucache.Cache) usecase.MenuCache { return c }),
		fx.Provide(func(b storage.Backend) app.HealthChecker { return b }),
		fx.Provide(func(f *app.BakeryFacade) handlers.BakeryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

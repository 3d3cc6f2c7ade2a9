package app

import (
	"context"

	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/usecase"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// BakeryFacade is the single entry point the HTTP layer talks to.
type BakeryFacade struct {
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	analytics *usecase.AnalyticsUseCase
	health    HealthChecker
	driver    string
}

func NewBakeryFacade(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, analytics *usecase.AnalyticsUseCase, health HealthChecker, cfg *config.Config) *BakeryFacade {
	driver, _ := cfg.StorageDriver()
	return &BakeryFacade{catalog: catalog, orders: orders, analytics: analytics, health: health, driver: driver}
}

func (f *BakeryFacade) Items(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error) {
	return f.catalog.List(ctx, filter)
}

func (f *BakeryFacade) Item(ctx context.Context, id string) (*model.MenuItem, error) {
	return f.catalog.Get(ctx, id)
}

func (f *BakeryFacade) CreateItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	return f.catalog.Create(ctx, item)
}

func (f *BakeryFacade) UpdateItem(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error) {
	return f.catalog.Update(ctx, id, item)
}

func (f *BakeryFacade) DeleteItem(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *BakeryFacade) PlaceOrder(ctx context.Context, lines []model.OrderRequestLine, customer model.CustomerInfo) (*model.Order, error) {
	return f.orders.Place(ctx, lines, customer)
}

func (f *BakeryFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *BakeryFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *BakeryFacade) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *BakeryFacade) Analytics(ctx context.Context) (*model.SalesSummary, error) {
	return f.analytics.Summary(ctx)
}

func (f *BakeryFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// Driver names the storage backend in use.
func (f *BakeryFacade) Driver() string {
	return f.driver
}

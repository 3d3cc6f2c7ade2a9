package handlers

import (
	"context"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// CatalogFacade describes menu management used by item handlers.
type CatalogFacade interface {
	Items(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error)
	Item(ctx context.Context, id string) (*model.MenuItem, error)
	CreateItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, lines []model.OrderRequestLine, customer model.CustomerInfo) (*model.Order, error)
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// AnalyticsFacade provides the sales summary.
type AnalyticsFacade interface {
	Analytics(ctx context.Context) (*model.SalesSummary, error)
}

// HealthFacade reports store connectivity.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
	Driver() string
}

// BakeryFacade aggregates the full set of operations used across handlers.
type BakeryFacade interface {
	CatalogFacade
	OrderFacade
	AnalyticsFacade
	HealthFacade
}

package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for item endpoints.
type CatalogFacadeStub struct {
	ItemsFn  func(context.Context, model.ItemFilter) ([]model.MenuItem, error)
	ItemFn   func(context.Context, string) (*model.MenuItem, error)
	CreateFn func(context.Context, model.MenuItem) (*model.MenuItem, error)
	UpdateFn func(context.Context, string, model.MenuItem) (*model.MenuItem, error)
	DeleteFn func(context.Context, string) error
}

// Items delegates to ItemsFn or returns a single croissant.
func (s CatalogFacadeStub) Items(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, filter)
	}
	return []model.MenuItem{{ID: "item-1", Name: "Croissant", Price: decimal.RequireFromString("3.50"), Available: true}}, nil
}

// Item delegates to ItemFn or echoes the id.
func (s CatalogFacadeStub) Item(ctx context.Context, id string) (*model.MenuItem, error) {
	if s.ItemFn != nil {
		return s.ItemFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Name: "Croissant", Price: decimal.RequireFromString("3.50"), Available: true}, nil
}

// CreateItem delegates to CreateFn or echoes the item with an id.
func (s CatalogFacadeStub) CreateItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	item.ID = "item-1"
	return &item, nil
}

// UpdateItem delegates to UpdateFn or echoes the item.
func (s CatalogFacadeStub) UpdateItem(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, item)
	}
	item.ID = id
	return &item, nil
}

// DeleteItem delegates to DeleteFn.
func (s CatalogFacadeStub) DeleteItem(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, []model.OrderRequestLine, model.CustomerInfo) (*model.Order, error)
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
}

// PlaceOrder delegates to PlaceFn or returns a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, lines []model.OrderRequestLine, customer model.CustomerInfo) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, lines, customer)
	}
	return &model.Order{ID: "order-1", Number: "ORD-20240501093015", Customer: customer, Status: model.OrderStatusPending}, nil
}

// Orders delegates to OrdersFn or returns nothing.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return nil, nil
}

// Order delegates to OrderFn or echoes the id.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

// UpdateOrderStatus delegates to UpdateStatusFn or echoes the status.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// AnalyticsFacadeStub returns a configured summary.
type AnalyticsFacadeStub struct {
	Summary *model.SalesSummary
	Err     error
}

// Analytics returns Summary or an empty report.
func (s AnalyticsFacadeStub) Analytics(context.Context) (*model.SalesSummary, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Summary != nil {
		return s.Summary, nil
	}
	return &model.SalesSummary{}, nil
}

// HealthFacadeStub reports a configured store state.
type HealthFacadeStub struct {
	Err        error
	DriverName string
}

// HealthCheck returns Err.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// Driver returns DriverName.
func (s HealthFacadeStub) Driver() string {
	return s.DriverName
}

// BakeryFacadeStub combines the individual stubs.
type BakeryFacadeStub struct {
	CatalogFacadeStub
	OrderFacadeStub
	AnalyticsFacadeStub
	HealthFacadeStub
}

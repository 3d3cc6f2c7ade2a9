package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// AnalyticsRepository aggregates sales figures over persisted orders.
type AnalyticsRepository interface {
	CountOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	RevenueByDay(ctx context.Context, limit int) ([]model.DailyRevenue, error)
	TopItems(ctx context.Context, limit int) ([]model.ItemSales, error)
}

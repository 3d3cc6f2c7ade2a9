package usecase

import (
	"context"

	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

const (
	// RevenueByDayLimit caps the per-day breakdown. Groups are taken in
	// ascending date order, so these are the oldest days, not the latest.
	RevenueByDayLimit = 14
	// TopItemsLimit caps the best sellers list.
	TopItemsLimit = 5
)

// AnalyticsUseCase builds sales summaries. Results are never cached.
type AnalyticsUseCase struct {
	analytics repository.AnalyticsRepository
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(analytics repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analytics: analytics}
}

// Summary recomputes the full report from persisted orders.
func (u *AnalyticsUseCase) Summary(ctx context.Context) (*model.SalesSummary, error) {
	count, err := u.analytics.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := u.analytics.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	byDay, err := u.analytics.RevenueByDay(ctx, RevenueByDayLimit)
	if err != nil {
		return nil, err
	}

	topItems, err := u.analytics.TopItems(ctx, TopItemsLimit)
	if err != nil {
		return nil, err
	}

	if byDay == nil {
		byDay = []model.DailyRevenue{}
	}
	if topItems == nil {
		topItems = []model.ItemSales{}
	}

	return &model.SalesSummary{
		TotalOrders:  count,
		TotalRevenue: revenue.Round(2),
		ByDay:        byDay,
		TopItems:     topItems,
	}, nil
}

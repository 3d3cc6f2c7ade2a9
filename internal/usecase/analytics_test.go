package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/test"
)

func TestAnalyticsUseCaseEmpty(t *testing.T) {
	uc := NewAnalyticsUseCase(test.NewMemoryStore().Analytics())

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalOrders != 0 || !summary.TotalRevenue.IsZero() {
		t.Fatalf("unexpected totals %+v", summary)
	}
	if summary.ByDay == nil || summary.TopItems == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}

func TestAnalyticsUseCaseSummary(t *testing.T) {
	store := test.NewMemoryStore()
	day1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	line := func(name string, qty int, price string) model.OrderLine {
		p := decimal.RequireFromString(price)
		return model.OrderLine{Name: name, Quantity: qty, UnitPrice: p, Subtotal: p.Mul(decimal.NewFromInt(int64(qty)))}
	}

	store.PutOrder(model.Order{ID: uuid.NewString(), CreatedAt: day1, TotalAmount: decimal.RequireFromString("7.00"),
		Lines: []model.OrderLine{line("Croissant", 2, "3.50")}})
	store.PutOrder(model.Order{ID: uuid.NewString(), CreatedAt: day1.Add(time.Hour), TotalAmount: decimal.RequireFromString("5.50"),
		Lines: []model.OrderLine{line("Croissant", 1, "3.50"), line("Bagel", 1, "2.00")}})
	store.PutOrder(model.Order{ID: uuid.NewString(), CreatedAt: day2, TotalAmount: decimal.RequireFromString("2.00"),
		Lines: []model.OrderLine{line("Bagel", 1, "2.00")}})

	summary, err := NewAnalyticsUseCase(store.Analytics()).Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalOrders != 3 {
		t.Fatalf("expected 3 orders, got %d", summary.TotalOrders)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("14.50")) {
		t.Fatalf("expected revenue 14.50, got %s", summary.TotalRevenue)
	}
	if len(summary.ByDay) != 2 || summary.ByDay[0].Date != "2024-05-01" || summary.ByDay[0].Orders != 2 {
		t.Fatalf("unexpected by day %+v", summary.ByDay)
	}
	if !summary.ByDay[0].Revenue.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("unexpected day revenue %s", summary.ByDay[0].Revenue)
	}
	if len(summary.TopItems) != 2 || summary.TopItems[0].Name != "Croissant" || summary.TopItems[0].Quantity != 3 {
		t.Fatalf("unexpected top items %+v", summary.TopItems)
	}
	if !summary.TopItems[1].Revenue.Equal(decimal.RequireFromString("4.00")) {
		t.Fatalf("unexpected bagel revenue %s", summary.TopItems[1].Revenue)
	}
}

func TestAnalyticsUseCasePropagatesError(t *testing.T) {
	store := test.NewMemoryStore()
	store.Err = domainErrors.ErrStoreUnavailable

	if _, err := NewAnalyticsUseCase(store.Analytics()).Summary(context.Background()); !errors.Is(err, domainErrors.ErrStoreUnavailable) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestAnalyticsUseCaseSummaryLimits(t *testing.T) {
	store := test.NewMemoryStore()
	first := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("1.25")
	for i := 19; i >= 0; i-- {
		qty := i + 1
		subtotal := price.Mul(decimal.NewFromInt(int64(qty)))
		store.PutOrder(model.Order{
			ID:          uuid.NewString(),
			CreatedAt:   first.AddDate(0, 0, i),
			TotalAmount: subtotal,
			Lines:       []model.OrderLine{{Name: fmt.Sprintf("Item %02d", i), Quantity: qty, UnitPrice: price, Subtotal: subtotal}},
		})
	}

	summary, err := NewAnalyticsUseCase(store.Analytics()).Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalOrders != 20 {
		t.Fatalf("expected 20 orders, got %d", summary.TotalOrders)
	}

	if len(summary.ByDay) != RevenueByDayLimit {
		t.Fatalf("expected %d days, got %d", RevenueByDayLimit, len(summary.ByDay))
	}
	if summary.ByDay[0].Date != "2024-05-01" || summary.ByDay[len(summary.ByDay)-1].Date != "2024-05-14" {
		t.Fatalf("expected the oldest 14 days, got %s..%s", summary.ByDay[0].Date, summary.ByDay[len(summary.ByDay)-1].Date)
	}
	for i := 1; i < len(summary.ByDay); i++ {
		if summary.ByDay[i-1].Date >= summary.ByDay[i].Date {
			t.Fatalf("by_day not ascending at %d: %+v", i, summary.ByDay)
		}
	}

	if len(summary.TopItems) != TopItemsLimit {
		t.Fatalf("expected %d top items, got %d", TopItemsLimit, len(summary.TopItems))
	}
	if summary.TopItems[0].Name != "Item 19" || summary.TopItems[0].Quantity != 20 {
		t.Fatalf("unexpected best seller %+v", summary.TopItems[0])
	}
	for i := 1; i < len(summary.TopItems); i++ {
		if summary.TopItems[i-1].Quantity <= summary.TopItems[i].Quantity {
			t.Fatalf("top_items not descending at %d: %+v", i, summary.TopItems)
		}
	}
}

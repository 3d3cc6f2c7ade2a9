package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

const ordersNS = "bakery.orders"

func orderBSON(id, status string, at time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "order_number", Value: "ORD-20240501090000"},
		{Key: "items", Value: bson.A{bson.D{
			{Key: "item_id", Value: "a"},
			{Key: "name", Value: "Croissant"},
			{Key: "unit_price", Value: 3.5},
			{Key: "quantity", Value: int32(2)},
			{Key: "subtotal", Value: 7.0},
		}}},
		{Key: "customer", Value: bson.D{
			{Key: "name", Value: "Ann"},
			{Key: "phone", Value: "555"},
			{Key: "fulfillment", Value: "delivery"},
		}},
		{Key: "status", Value: status},
		{Key: "total_amount", Value: 7.0},
		{Key: "created_at", Value: at},
		{Key: "updated_at", Value: at},
	}
}

func TestOrderRepository(t *testing.T) {
	mt := newMockTest(t)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mt.Run("create", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		order := model.Order{
			ID:     "o-1",
			Number: "ORD-20240501090000",
			Lines: []model.OrderLine{{ItemID: "a", Name: "Croissant", UnitPrice: decimal.RequireFromString("3.50"),
				Quantity: 2, Subtotal: decimal.RequireFromString("7.00")}},
			Customer:    model.CustomerInfo{Name: "Ann", Fulfillment: model.FulfillmentPickup},
			Status:      model.OrderStatusPending,
			TotalAmount: decimal.RequireFromString("7.00"),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created, err := repo.Create(context.Background(), order)
		if err != nil || created.ID != "o-1" {
			t.Fatalf("unexpected result %+v err=%v", created, err)
		}
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ordersNS, mtest.FirstBatch, orderBSON("o-1", "pending", now)))
		order, err := repo.GetByID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(order.Lines) != 1 || order.Lines[0].Quantity != 2 || !order.Lines[0].UnitPrice.Equal(decimal.RequireFromString("3.5")) {
			t.Fatalf("unexpected lines %+v", order.Lines)
		}
		if order.Customer.Fulfillment != model.FulfillmentDelivery || order.Customer.Phone == nil || order.Customer.Email != nil {
			t.Fatalf("unexpected customer %+v", order.Customer)
		}
		if order.Status != model.OrderStatusPending || !order.TotalAmount.Equal(decimal.NewFromInt(7)) {
			t.Fatalf("unexpected order %+v", order)
		}
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ordersNS, mtest.FirstBatch))
		if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ordersNS, mtest.FirstBatch,
			orderBSON("o-2", "completed", now.Add(time.Hour)),
			orderBSON("o-1", "pending", now),
		))
		orders, err := repo.List(context.Background(), model.OrderFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 2 || orders[0].ID != "o-2" {
			t.Fatalf("unexpected orders %+v", orders)
		}
	})

	mt.Run("list filtered failure", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad"}))
		status := model.OrderStatusPending
		if _, err := repo.List(context.Background(), model.OrderFilter{Status: &status}); err == nil {
			t.Fatal("expected error")
		}
	})

	mt.Run("update status", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		later := now.Add(time.Minute)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: orderBSON("o-1", "confirmed", later)}))
		order, err := repo.UpdateStatus(context.Background(), "o-1", model.OrderStatusConfirmed, later)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != model.OrderStatusConfirmed {
			t.Fatalf("unexpected status %s", order.Status)
		}
	})

	mt.Run("update status missing", func(mt *mtest.T) {
		repo := newStorage(mt.DB, discardLogger()).Orders()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		if _, err := repo.UpdateStatus(context.Background(), "missing", model.OrderStatusConfirmed, now); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfilment progress of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Fulfillment is the customer's chosen hand-over method.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

// Valid reports whether fulfillment is pickup or delivery.
func (f Fulfillment) Valid() bool {
	return f == FulfillmentPickup || f == FulfillmentDelivery
}

// CustomerInfo carries contact details captured with the order.
type CustomerInfo struct {
	Name        string
	Email       *string
	Phone       *string
	Address     *string
	Notes       *string
	Fulfillment Fulfillment
}

// OrderLine is a snapshot of a catalog item taken when the order was placed.
// Name and UnitPrice never follow later catalog changes.
type OrderLine struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// Order describes a customer order placed against the catalog.
type Order struct {
	ID          string
	Number      string
	Lines       []OrderLine
	Customer    CustomerInfo
	Status      OrderStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderFilter narrows order listings. Nil fields are not applied.
type OrderFilter struct {
	Status *OrderStatus
}

// OrderRequestLine is a single requested (item, quantity) pair.
type OrderRequestLine struct {
	ItemID   string
	Quantity int
}

package dto

import "time"

// OrderLineRequest asks for quantity units of one catalog item.
type OrderLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity" validate:"min=1"`
}

// CustomerRequest carries contact details for an order.
type CustomerRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
	Fulfillment string  `json:"fulfillment" validate:"omitempty,oneof=pickup delivery"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Items    []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	Customer CustomerRequest    `json:"customer"`
}

// StatusUpdateRequest is the body of PATCH /api/orders/{id}/status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// OrderLineResponse is a priced line as captured at placement time.
type OrderLineResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CustomerResponse mirrors the stored customer details.
type CustomerResponse struct {
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
	Fulfillment string  `json:"fulfillment"`
}

// OrderResponse represents a placed order.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	Items       []OrderLineResponse `json:"items"`
	Customer    CustomerResponse    `json:"customer"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

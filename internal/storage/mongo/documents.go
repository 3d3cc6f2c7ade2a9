package mongo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bakery/internal/domain/model"
)

type itemDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description *string   `bson:"description,omitempty"`
	Price       float64   `bson:"price"`
	ImageURL    *string   `bson:"image_url,omitempty"`
	Category    *string   `bson:"category,omitempty"`
	Available   bool      `bson:"available"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type lineDocument struct {
	ItemID    string  `bson:"item_id"`
	Name      string  `bson:"name"`
	UnitPrice float64 `bson:"unit_price"`
	Quantity  int     `bson:"quantity"`
	Subtotal  float64 `bson:"subtotal"`
}

type customerDocument struct {
	Name        string  `bson:"name"`
	Email       *string `bson:"email,omitempty"`
	Phone       *string `bson:"phone,omitempty"`
	Address     *string `bson:"address,omitempty"`
	Notes       *string `bson:"notes,omitempty"`
	Fulfillment string  `bson:"fulfillment"`
}

type orderDocument struct {
	ID          string           `bson:"_id"`
	Number      string           `bson:"order_number"`
	Items       []lineDocument   `bson:"items"`
	Customer    customerDocument `bson:"customer"`
	Status      string           `bson:"status"`
	TotalAmount float64          `bson:"total_amount"`
	CreatedAt   time.Time        `bson:"created_at"`
	UpdatedAt   time.Time        `bson:"updated_at"`
}

func toItemDocument(item model.MenuItem) itemDocument {
	return itemDocument{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.InexactFloat64(),
		ImageURL:    item.ImageURL,
		Category:    item.Category,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (d itemDocument) model() model.MenuItem {
	return model.MenuItem{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		ImageURL:    d.ImageURL,
		Category:    d.Category,
		Available:   d.Available,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func toOrderDocument(order model.Order) orderDocument {
	lines := make([]lineDocument, len(order.Lines))
	for i, l := range order.Lines {
		lines[i] = lineDocument{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.InexactFloat64(),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal.InexactFloat64(),
		}
	}
	c := order.Customer
	return orderDocument{
		ID:     order.ID,
		Number: order.Number,
		Items:  lines,
		Customer: customerDocument{
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			Address:     c.Address,
			Notes:       c.Notes,
			Fulfillment: string(c.Fulfillment),
		},
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.InexactFloat64(),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func (d orderDocument) model() model.Order {
	lines := make([]model.OrderLine, len(d.Items))
	for i, l := range d.Items {
		lines[i] = model.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: decimal.NewFromFloat(l.UnitPrice),
			Quantity:  l.Quantity,
			Subtotal:  decimal.NewFromFloat(l.Subtotal),
		}
	}
	c := d.Customer
	return model.Order{
		ID:     d.ID,
		Number: d.Number,
		Lines:  lines,
		Customer: model.CustomerInfo{
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			Address:     c.Address,
			Notes:       c.Notes,
			Fulfillment: model.Fulfillment(c.Fulfillment),
		},
		Status:      model.OrderStatus(d.Status),
		TotalAmount: decimal.NewFromFloat(d.TotalAmount),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

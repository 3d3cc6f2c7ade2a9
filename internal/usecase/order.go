package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

const orderNumberLayout = "20060102150405"

// OrderUseCase encapsulates order placement and status tracking.
type OrderUseCase struct {
	items  repository.ItemRepository
	orders repository.OrderRepository
	now    func() time.Time
	newID  func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(items repository.ItemRepository, orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{items: items, orders: orders, now: time.Now, newID: NewID}
}

// OrderNumber derives the human readable number from the placement time.
// Orders placed within the same second share a number.
func OrderNumber(t time.Time) string {
	return "ORD-" + t.UTC().Format(orderNumberLayout)
}

// Place prices the requested lines against the live catalog and persists the order.
// Nothing is written unless every line resolves to an available item.
func (u *OrderUseCase) Place(ctx context.Context, lines []model.OrderRequestLine, customer model.CustomerInfo) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}
	if err := normalizeCustomer(&customer); err != nil {
		return nil, err
	}

	ids := make([]string, len(lines))
	for i, line := range lines {
		id, err := ParseID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrValidation)
		}
		ids[i] = id
	}

	menu, err := u.items.FindAvailable(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	snapshot := make([]model.OrderLine, 0, len(lines))
	total := decimal.Zero
	for i, line := range lines {
		item, ok := byID[ids[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrItemUnavailable, line.ItemID)
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		snapshot = append(snapshot, model.OrderLine{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
	}

	now := timestamp(u.now)
	order := model.Order{
		ID:          u.newID(),
		Number:      OrderNumber(now),
		Lines:       snapshot,
		Customer:    customer,
		Status:      model.OrderStatusPending,
		TotalAmount: total.Round(2),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return u.orders.Create(ctx, order)
}

// List returns orders newest first, optionally filtered by status.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, *filter.Status)
	}
	return u.orders.List(ctx, filter)
}

// Get fetches a single order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, id)
}

// UpdateStatus moves an order to the given status. Any status may follow any other.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, status)
	}
	return u.orders.UpdateStatus(ctx, id, status, timestamp(u.now))
}

func normalizeCustomer(c *model.CustomerInfo) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: customer name is required", domainErrors.ErrValidation)
	}
	if c.Fulfillment == "" {
		c.Fulfillment = model.FulfillmentPickup
	}
	if !c.Fulfillment.Valid() {
		return fmt.Errorf("%w: unknown fulfillment %q", domainErrors.ErrValidation, c.Fulfillment)
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

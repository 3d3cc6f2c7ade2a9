package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// MemoryStore keeps items and orders in memory and implements every repository.
// Setting Err makes all subsequent calls fail with it.
type MemoryStore struct {
	mu     sync.Mutex
	items  map[string]model.MenuItem
	orders []model.Order
	Err    error

	FindAvailableCalls int
	OrderCreateCalls   int
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]model.MenuItem)}
}

// Items returns the catalog repository view.
func (s *MemoryStore) Items() repository.ItemRepository { return (*memoryItems)(s) }

// Orders returns the order repository view.
func (s *MemoryStore) Orders() repository.OrderRepository { return (*memoryOrders)(s) }

// Analytics returns the aggregation view.
func (s *MemoryStore) Analytics() repository.AnalyticsRepository { return (*memoryAnalytics)(s) }

// PutItem seeds a catalog item directly.
func (s *MemoryStore) PutItem(item model.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

// PutOrder seeds an order directly.
func (s *MemoryStore) PutOrder(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, cloneOrder(order))
}

// OrderCount reports how many orders are stored.
func (s *MemoryStore) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type memoryItems MemoryStore

func (r *memoryItems) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	r.items[item.ID] = item
	return &item, nil
}

func (r *memoryItems) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	item, ok := r.items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &item, nil
}

func (r *memoryItems) List(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]model.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if filter.Available != nil && item.Available != *filter.Available {
			continue
		}
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *memoryItems) FindAvailable(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FindAvailableCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	var result []model.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok && item.Available {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *memoryItems) Update(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	existing, ok := r.items[item.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	r.items[item.ID] = item
	return &item, nil
}

func (r *memoryItems) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.items[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memoryOrders MemoryStore

func (r *memoryOrders) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.OrderCreateCalls++
	if r.Err != nil {
		return nil, r.Err
	}
	r.orders = append(r.orders, cloneOrder(order))
	stored := cloneOrder(order)
	return &stored, nil
}

func (r *memoryOrders) GetByID(ctx context.Context, id string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, o := range r.orders {
		if o.ID == id {
			found := cloneOrder(o)
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *memoryOrders) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		result = append(result, cloneOrder(o))
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *memoryOrders) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = updatedAt
			updated := cloneOrder(r.orders[i])
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

type memoryAnalytics MemoryStore

func (r *memoryAnalytics) CountOrders(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.orders)), nil
}

func (r *memoryAnalytics) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return decimal.Zero, r.Err
	}
	total := decimal.Zero
	for _, o := range r.orders {
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}

func (r *memoryAnalytics) RevenueByDay(ctx context.Context, limit int) ([]model.DailyRevenue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	groups := make(map[string]*model.DailyRevenue)
	for _, o := range r.orders {
		day := o.CreatedAt.UTC().Format("2006-01-02")
		g, ok := groups[day]
		if !ok {
			g = &model.DailyRevenue{Date: day, Revenue: decimal.Zero}
			groups[day] = g
		}
		g.Orders++
		g.Revenue = g.Revenue.Add(o.TotalAmount)
	}
	result := make([]model.DailyRevenue, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *memoryAnalytics) TopItems(ctx context.Context, limit int) ([]model.ItemSales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	groups := make(map[string]*model.ItemSales)
	for _, o := range r.orders {
		for _, line := range o.Lines {
			g, ok := groups[line.Name]
			if !ok {
				g = &model.ItemSales{Name: line.Name, Revenue: decimal.Zero}
				groups[line.Name] = g
			}
			g.Quantity += int64(line.Quantity)
			g.Revenue = g.Revenue.Add(line.Subtotal)
		}
	}
	result := make([]model.ItemSales, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Quantity != result[j].Quantity {
			return result[i].Quantity > result[j].Quantity
		}
		return result[i].Name < result[j].Name
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func cloneOrder(o model.Order) model.Order {
	o.Lines = append([]model.OrderLine(nil), o.Lines...)
	return o
}

var _ repository.Factory = (*MemoryStore)(nil)

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
	"github.com/polkiloo/bakery/internal/domain/repository"
)

// MenuCache keeps catalog listings keyed by filter.
type MenuCache interface {
	Get(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, bool, error)
	Set(ctx context.Context, filter model.ItemFilter, items []model.MenuItem) error
	Invalidate(ctx context.Context) error
}

// CatalogUseCase manages menu items.
type CatalogUseCase struct {
	items  repository.ItemRepository
	cache  MenuCache
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	// generation counts catalog writes; a listing read before a write is
	// never stored in the cache after that write's invalidation.
	mu         sync.Mutex
	generation uint64
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(items repository.ItemRepository, cache MenuCache, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{items: items, cache: cache, logger: logger, now: time.Now, newID: NewID}
}

// List returns catalog items sorted by name, served from cache when possible.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error) {
	if cached, ok, err := u.cache.Get(ctx, filter); err != nil {
		u.logger.Warn("menu cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return cached, nil
	}

	u.mu.Lock()
	generation := u.generation
	u.mu.Unlock()

	items, err := u.items.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.generation != generation {
		return items, nil
	}
	if err := u.cache.Set(ctx, filter, items); err != nil {
		u.logger.Warn("menu cache write failed", slog.String("error", err.Error()))
	}
	return items, nil
}

// Get fetches a single item by identifier.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return u.items.GetByID(ctx, id)
}

// Create stores a new catalog item.
func (u *CatalogUseCase) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if err := validateItem(&item); err != nil {
		return nil, err
	}

	now := timestamp(u.now)
	item.ID = u.newID()
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := u.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return created, nil
}

// Update replaces all editable fields of an existing item.
func (u *CatalogUseCase) Update(ctx context.Context, id string, item model.MenuItem) (*model.MenuItem, error) {
	id, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := validateItem(&item); err != nil {
		return nil, err
	}

	item.ID = id
	item.UpdatedAt = timestamp(u.now)

	updated, err := u.items.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return updated, nil
}

// Delete removes an item from the catalog. Placed orders keep their snapshots.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	id, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := u.items.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	return nil
}

func (u *CatalogUseCase) invalidate(ctx context.Context) {
	u.mu.Lock()
	u.generation++
	u.mu.Unlock()

	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("menu cache invalidation failed", slog.String("error", err.Error()))
	}
}

func validateItem(item *model.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", domainErrors.ErrValidation)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price must be greater than or equal to 0", domainErrors.ErrValidation)
	}
	return nil
}

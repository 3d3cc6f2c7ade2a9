package repository

import (
	"context"

	"github.com/polkiloo/bakery/internal/domain/model"
)

// ItemRepository describes persistence operations with catalog items.
type ItemRepository interface {
	Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
	List(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error)
	FindAvailable(ctx context.Context, ids []string) ([]model.MenuItem, error)
	Update(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

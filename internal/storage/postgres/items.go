package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

const itemColumns = `id, name, description, price, image_url, category, available, created_at, updated_at`

func scanItem(row pgx.Row) (*model.MenuItem, error) {
	var item model.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
		&item.Category, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func collectItems(rows pgx.Rows) ([]model.MenuItem, error) {
	defer rows.Close()

	result := []model.MenuItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *itemRepository) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	const query = `INSERT INTO items (` + itemColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.storage.pool.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price,
		item.ImageURL, item.Category, item.Available, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &item, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id=$1`
	item, err := scanItem(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return item, nil
}

func (r *itemRepository) List(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if filter.Available != nil {
		const query = `SELECT ` + itemColumns + ` FROM items WHERE available=$1 ORDER BY name`
		rows, err = r.storage.pool.Query(ctx, query, *filter.Available)
	} else {
		const query = `SELECT ` + itemColumns + ` FROM items ORDER BY name`
		rows, err = r.storage.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, classify(err)
	}
	return collectItems(rows)
}

func (r *itemRepository) FindAvailable(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = ANY($1) AND available`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, classify(err)
	}
	return collectItems(rows)
}

func (r *itemRepository) Update(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	const query = `UPDATE items
                   SET name=$1, description=$2, price=$3, image_url=$4, category=$5, available=$6, updated_at=$7
                   WHERE id=$8
                   RETURNING ` + itemColumns
	updated, err := scanItem(r.storage.pool.QueryRow(ctx, query, item.Name, item.Description, item.Price,
		item.ImageURL, item.Category, item.Available, item.UpdatedAt, item.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return updated, nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

const orderColumns = `id, order_number, items, customer, status, total_amount, created_at, updated_at`

type lineRecord struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type customerRecord struct {
	Name        string            `json:"name"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Address     *string           `json:"address,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	Fulfillment model.Fulfillment `json:"fulfillment"`
}

func encodeOrder(order model.Order) (lines, customer []byte, err error) {
	records := make([]lineRecord, len(order.Lines))
	for i, l := range order.Lines {
		records[i] = lineRecord(l)
	}
	if lines, err = json.Marshal(records); err != nil {
		return nil, nil, fmt.Errorf("encode order lines: %w", err)
	}
	if customer, err = json.Marshal(customerRecord(order.Customer)); err != nil {
		return nil, nil, fmt.Errorf("encode customer: %w", err)
	}
	return lines, customer, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		order    model.Order
		lines    []byte
		customer []byte
	)
	err := row.Scan(&order.ID, &order.Number, &lines, &customer, &order.Status,
		&order.TotalAmount, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	var records []lineRecord
	if err := json.Unmarshal(lines, &records); err != nil {
		return nil, fmt.Errorf("decode order lines: %w", err)
	}
	order.Lines = make([]model.OrderLine, len(records))
	for i, rec := range records {
		order.Lines[i] = model.OrderLine(rec)
	}

	var c customerRecord
	if err := json.Unmarshal(customer, &c); err != nil {
		return nil, fmt.Errorf("decode customer: %w", err)
	}
	order.Customer = model.CustomerInfo(c)
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	lines, customer, err := encodeOrder(order)
	if err != nil {
		return nil, err
	}

	const query = `INSERT INTO orders (` + orderColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.storage.pool.Exec(ctx, query, order.ID, order.Number, lines, customer, order.Status,
		order.TotalAmount, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if filter.Status != nil {
		const query = `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC`
		rows, err = r.storage.pool.Query(ctx, query, *filter.Status)
	} else {
		const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
		rows, err = r.storage.pool.Query(ctx, query)
	}
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus, updatedAt time.Time) (*model.Order, error) {
	const query = `UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3 RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, status, updatedAt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	return order, nil
}

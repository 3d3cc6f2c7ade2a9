package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bakery/internal/domain/model"
)

func (r *analyticsRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, classify(err)
	}
	return count, nil
}

func (r *analyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	const query = `SELECT COALESCE(SUM(total_amount), 0) FROM orders`
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, classify(err)
	}
	return total, nil
}

func (r *analyticsRepository) RevenueByDay(ctx context.Context, limit int) ([]model.DailyRevenue, error) {
	const query = `SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
                          COUNT(*), SUM(total_amount)
                   FROM orders
                   GROUP BY day
                   ORDER BY day
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	result := []model.DailyRevenue{}
	for rows.Next() {
		var d model.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Orders, &d.Revenue); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *analyticsRepository) TopItems(ctx context.Context, limit int) ([]model.ItemSales, error) {
	const query = `SELECT line->>'name' AS name,
                          SUM((line->>'quantity')::BIGINT) AS quantity,
                          SUM((line->>'subtotal')::NUMERIC) AS revenue
                   FROM orders, jsonb_array_elements(items) AS line
                   GROUP BY name
                   ORDER BY quantity DESC, name
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	result := []model.ItemSales{}
	for rows.Next() {
		var s model.ItemSales
		if err := rows.Scan(&s.Name, &s.Quantity, &s.Revenue); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

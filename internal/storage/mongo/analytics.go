package mongo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/polkiloo/bakery/internal/domain/model"
)

func (r *analyticsRepository) CountOrders(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, classify(err)
	}
	return count, nil
}

func (r *analyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}},
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return decimal.Zero, err
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(rows[0].Total), nil
}

func (r *analyticsRepository) RevenueByDay(ctx context.Context, limit int) ([]model.DailyRevenue, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.D{
			{Key: "date", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$created_at"},
				{Key: "timezone", Value: "UTC"},
			}}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$date"},
			{Key: "orders", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total_amount"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	var rows []struct {
		Date    string  `bson:"_id"`
		Orders  int64   `bson:"orders"`
		Revenue float64 `bson:"revenue"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	result := make([]model.DailyRevenue, len(rows))
	for i, row := range rows {
		result[i] = model.DailyRevenue{Date: row.Date, Orders: row.Orders, Revenue: decimal.NewFromFloat(row.Revenue)}
	}
	return result, nil
}

func (r *analyticsRepository) TopItems(ctx context.Context, limit int) ([]model.ItemSales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$items.name"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$items.subtotal"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quantity", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	var rows []struct {
		Name     string  `bson:"_id"`
		Quantity int64   `bson:"quantity"`
		Revenue  float64 `bson:"revenue"`
	}
	if err := r.aggregate(ctx, pipeline, &rows); err != nil {
		return nil, err
	}

	result := make([]model.ItemSales, len(rows))
	for i, row := range rows {
		result[i] = model.ItemSales{Name: row.Name, Quantity: row.Quantity, Revenue: decimal.NewFromFloat(row.Revenue)}
	}
	return result, nil
}

func (r *analyticsRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return classify(err)
	}
	defer cursor.Close(ctx)
	return classify(cursor.All(ctx, out))
}

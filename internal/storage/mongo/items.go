package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/domain/model"
)

func (r *itemRepository) Create(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	if _, err := r.coll.InsertOne(ctx, toItemDocument(item)); err != nil {
		return nil, classify(err)
	}
	return &item, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var doc itemDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	item := doc.model()
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, filter model.ItemFilter) ([]model.MenuItem, error) {
	query := bson.D{}
	if filter.Available != nil {
		query = append(query, bson.E{Key: "available", Value: *filter.Available})
	}
	return r.find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *itemRepository) FindAvailable(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	query := bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
		{Key: "available", Value: true},
	}
	return r.find(ctx, query)
}

func (r *itemRepository) find(ctx context.Context, query bson.D, opts ...*options.FindOptions) ([]model.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, query, opts...)
	if err != nil {
		return nil, classify(err)
	}
	defer cursor.Close(ctx)

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classify(err)
	}

	result := make([]model.MenuItem, len(docs))
	for i, d := range docs {
		result[i] = d.model()
	}
	return result, nil
}

func (r *itemRepository) Update(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	doc := toItemDocument(item)
	set := bson.D{
		{Key: "name", Value: doc.Name},
		{Key: "description", Value: doc.Description},
		{Key: "price", Value: doc.Price},
		{Key: "image_url", Value: doc.ImageURL},
		{Key: "category", Value: doc.Category},
		{Key: "available", Value: doc.Available},
		{Key: "updated_at", Value: doc.UpdatedAt},
	}

	var updated itemDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: item.ID}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, classify(err)
	}
	result := updated.model()
	return &result, nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return classify(err)
	}
	if res.DeletedCount == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

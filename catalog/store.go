package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/halfsy-shop/halfsy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound signals a by-id lookup with no matching record.
	ErrNotFound = errors.New("catalog: product not found")

	// ErrEmptyQuery rejects blank search input before any plan is built.
	ErrEmptyQuery = errors.New("catalog: search query is empty")
)

// Store is the document-store surface the catalog needs: filtered counts,
// filtered-and-sorted page fetches, and staged aggregation for computed
// sorts, facet grouping, and full-text search.
type Store interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.RawProduct, error)
	FindOne(ctx context.Context, filter bson.M) (models.RawProduct, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error)
}

// mongoStore backs Store with a MongoDB collection.
type mongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wraps a products collection as a catalog Store.
func NewMongoStore(coll *mongo.Collection) Store {
	return &mongoStore{coll: coll}
}

func (s *mongoStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (s *mongoStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.RawProduct, error) {
	opts := options.Find().SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	docs := make([]models.RawProduct, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return docs, nil
}

func (s *mongoStore) FindOne(ctx context.Context, filter bson.M) (models.RawProduct, error) {
	var doc models.RawProduct
	err := s.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc, nil
}

func (s *mongoStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate products: %w", err)
	}
	defer cur.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode aggregation: %w", err)
	}
	return docs, nil
}

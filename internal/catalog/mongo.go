package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore serves products from the document database the ingestion
// process writes into.
type MongoStore struct {
	collection *mongo.Collection
}

// ConnectMongo connects to the document database and returns a store over
// the products collection.
func ConnectMongo(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.collection.Database().Client().Disconnect(ctx)
}

// FetchActive returns up to limit active products. The collection is small
// enough (a few thousand rows) that the whole active set comes back in one
// find; pagination happens in memory downstream.
func (s *MongoStore) FetchActive(ctx context.Context, limit int) ([]Product, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	for i := range products {
		products[i].Campaigns = SanitizeCampaigns(products[i].Campaigns)
	}
	return products, nil
}

// GetByID returns a product by id. Soft-deleted products are still served
// here; only the listing query filters them out.
func (s *MongoStore) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}

	p.Campaigns = SanitizeCampaigns(p.Campaigns)
	return &p, nil
}

// Upsert replaces products by id, inserting ones not seen before. This is
// the importer's write path.
func (s *MongoStore) Upsert(ctx context.Context, products []Product) error {
	opts := options.Replace().SetUpsert(true)
	for _, p := range products {
		if p.ID == "" {
			return fmt.Errorf("upsert: product without id")
		}
		p.Campaigns = SanitizeCampaigns(p.Campaigns)
		if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, opts); err != nil {
			return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
		}
	}
	return nil
}

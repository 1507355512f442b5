// Package repository provides data access for location stock snapshots.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// StockDocument represents a stock snapshot row in MongoDB.
// This is the repository-level structure that maps directly to MongoDB.
type StockDocument struct {
	LocationID string           `bson:"location_id" json:"location_id"`
	ProductID  string           `bson:"product_id" json:"product_id"`
	Available  int              `bson:"available" json:"available"`
	UnitWeight float64          `bson:"unit_weight" json:"unit_weight"`
	UnitDims   model.Dimensions `bson:"unit_dims" json:"unit_dims"`
	UpdatedAt  time.Time        `bson:"updated_at" json:"updated_at"`
}

// toModel converts the document into the domain snapshot row.
func (d StockDocument) toModel() model.LocationStock {
	return model.LocationStock{
		LocationID: d.LocationID,
		ProductID:  d.ProductID,
		Available:  d.Available,
		UnitWeight: d.UnitWeight,
		UnitDims:   d.UnitDims,
	}
}

// StockRepository provides methods for stock snapshot operations.
type StockRepository struct {
	collection *mongo.Collection
}

// NewStockRepository creates a new stock repository.
func NewStockRepository(db *MongoDB) *StockRepository {
	return &StockRepository{
		collection: db.LocationStock,
	}
}

// GetByProducts returns stock rows for the given products across all
// locations. Rows with zero availability are skipped.
func (r *StockRepository) GetByProducts(ctx context.Context, productIDs []string) ([]model.LocationStock, error) {
	filter := bson.M{
		"product_id": bson.M{"$in": productIDs},
		"available":  bson.M{"$gt": 0},
	}
	opts := options.Find().SetSort(bson.D{{Key: "location_id", Value: 1}, {Key: "product_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []StockDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rows := make([]model.LocationStock, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, d.toModel())
	}
	return rows, nil
}

// Upsert replaces the snapshot rows for each (location, product) pair.
func (r *StockRepository) Upsert(ctx context.Context, items []model.LocationStock) error {
	if len(items) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(items))
	nowTime := time.Now()
	for _, item := range items {
		doc := StockDocument{
			LocationID: item.LocationID,
			ProductID:  item.ProductID,
			Available:  item.Available,
			UnitWeight: item.UnitWeight,
			UnitDims:   item.UnitDims,
			UpdatedAt:  nowTime,
		}
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"location_id": item.LocationID, "product_id": item.ProductID}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, writes)
	return err
}

// List returns all stock rows, optionally limited.
func (r *StockRepository) List(ctx context.Context, limit int) ([]model.LocationStock, error) {
	opts := options.Find().SetSort(bson.D{{Key: "location_id", Value: 1}, {Key: "product_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []StockDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rows := make([]model.LocationStock, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, d.toModel())
	}
	return rows, nil
}

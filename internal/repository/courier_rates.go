// Package repository provides data access for courier rate slab tables.
package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
)

// courierRateSlabDoc is the stored form of one rate slab. Money is stored as
// a decimal string to avoid float drift in the database.
type courierRateSlabDoc struct {
	CourierID                  string  `bson:"courier_id"`
	OriginLocationID           string  `bson:"origin_location_id"`
	MinWeight                  float64 `bson:"min_weight"`
	MaxWeight                  float64 `bson:"max_weight"`
	Rate                       string  `bson:"rate"`
	CODSurcharge               string  `bson:"cod_surcharge"`
	ServiceablePostcodePattern string  `bson:"serviceable_postcode_pattern"`
	EstimatedDays              int     `bson:"estimated_days,omitempty"`
}

func slabToDoc(s model.CourierRateSlab) courierRateSlabDoc {
	return courierRateSlabDoc{
		CourierID:                  s.CourierID,
		OriginLocationID:           s.OriginLocationID,
		MinWeight:                  s.MinWeight,
		MaxWeight:                  s.MaxWeight,
		Rate:                       s.Rate.String(),
		CODSurcharge:               s.CODSurcharge.String(),
		ServiceablePostcodePattern: s.ServiceablePostcodePattern,
		EstimatedDays:              s.EstimatedDays,
	}
}

func (d courierRateSlabDoc) toModel() (model.CourierRateSlab, error) {
	rate, err := decimal.NewFromString(d.Rate)
	if err != nil {
		return model.CourierRateSlab{}, err
	}
	surcharge, err := decimal.NewFromString(d.CODSurcharge)
	if err != nil {
		return model.CourierRateSlab{}, err
	}
	return model.CourierRateSlab{
		CourierID:                  d.CourierID,
		OriginLocationID:           d.OriginLocationID,
		MinWeight:                  d.MinWeight,
		MaxWeight:                  d.MaxWeight,
		Rate:                       rate,
		CODSurcharge:               surcharge,
		ServiceablePostcodePattern: d.ServiceablePostcodePattern,
		EstimatedDays:              d.EstimatedDays,
	}, nil
}

// NewCourierRateConfig builds an active version-1 rate table document from
// domain slabs.
func NewCourierRateConfig(slabs []model.CourierRateSlab, createdBy string) *CourierRateConfig {
	docs := make([]courierRateSlabDoc, 0, len(slabs))
	for _, s := range slabs {
		docs = append(docs, slabToDoc(s))
	}
	now := time.Now()
	return &CourierRateConfig{
		ID:        primitive.NewObjectID(),
		Slabs:     docs,
		Active:    true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
	}
}

// CourierRateConfig represents a versioned courier rate table document.
type CourierRateConfig struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Slabs     []courierRateSlabDoc `bson:"slabs" json:"-"`
	Active    bool                 `bson:"active" json:"active"`
	Version   int                  `bson:"version" json:"version"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updated_at"`
	CreatedBy string               `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// RateSlabs converts the stored documents back into domain slabs.
func (c *CourierRateConfig) RateSlabs() ([]model.CourierRateSlab, error) {
	slabs := make([]model.CourierRateSlab, 0, len(c.Slabs))
	for _, d := range c.Slabs {
		s, err := d.toModel()
		if err != nil {
			return nil, err
		}
		slabs = append(slabs, s)
	}
	return slabs, nil
}

// CourierRatesRepository provides methods for courier rate table operations.
type CourierRatesRepository struct {
	collection *mongo.Collection
}

// NewCourierRatesRepository creates a new courier rates repository.
func NewCourierRatesRepository(db *MongoDB) *CourierRatesRepository {
	return &CourierRatesRepository{
		collection: db.CourierRates,
	}
}

// GetActive returns the active courier rate table.
func (r *CourierRatesRepository) GetActive(ctx context.Context) (*CourierRateConfig, error) {
	var config CourierRateConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active table found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates the current rate table and inserts a new active one.
func (r *CourierRatesRepository) Create(ctx context.Context, slabs []model.CourierRateSlab, createdBy string) (*CourierRateConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := NewCourierRateConfig(slabs, createdBy)
	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// List returns courier rate tables, newest first.
func (r *CourierRatesRepository) List(ctx context.Context, limit int) ([]CourierRateConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
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

	var configs []CourierRateConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

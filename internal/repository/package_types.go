// Package repository provides data access for package type configurations.
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

// packageTypeDoc is the stored form of one package type. Money is stored as a
// decimal string to avoid float drift in the database.
type packageTypeDoc struct {
	PackageID     string           `bson:"package_id"`
	LocationID    string           `bson:"location_id,omitempty"`
	MaxWeight     float64          `bson:"max_weight"`
	Dims          model.Dimensions `bson:"dims"`
	CapacityUnits int              `bson:"capacity_units"`
	CostPerUse    string           `bson:"cost_per_use"`
}

func packageTypeToDoc(t model.PackageType) packageTypeDoc {
	return packageTypeDoc{
		PackageID:     t.PackageID,
		LocationID:    t.LocationID,
		MaxWeight:     t.MaxWeight,
		Dims:          t.Dims,
		CapacityUnits: t.CapacityUnits,
		CostPerUse:    t.CostPerUse.String(),
	}
}

func (d packageTypeDoc) toModel() (model.PackageType, error) {
	cost, err := decimal.NewFromString(d.CostPerUse)
	if err != nil {
		return model.PackageType{}, err
	}
	return model.PackageType{
		PackageID:     d.PackageID,
		LocationID:    d.LocationID,
		MaxWeight:     d.MaxWeight,
		Dims:          d.Dims,
		CapacityUnits: d.CapacityUnits,
		CostPerUse:    cost,
	}, nil
}

// NewPackageTypeConfig builds an active version-1 configuration document from
// domain package types.
func NewPackageTypeConfig(types []model.PackageType, createdBy string) *PackageTypeConfig {
	docs := make([]packageTypeDoc, 0, len(types))
	for _, t := range types {
		docs = append(docs, packageTypeToDoc(t))
	}
	now := time.Now()
	return &PackageTypeConfig{
		ID:        primitive.NewObjectID(),
		Types:     docs,
		Active:    true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
	}
}

// PackageTypeConfig represents a versioned package type configuration document.
type PackageTypeConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Types     []packageTypeDoc   `bson:"types" json:"-"`
	Active    bool               `bson:"active" json:"active"`
	Version   int                `bson:"version" json:"version"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	CreatedBy string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// PackageTypes converts the stored documents back into domain package types.
func (c *PackageTypeConfig) PackageTypes() ([]model.PackageType, error) {
	types := make([]model.PackageType, 0, len(c.Types))
	for _, d := range c.Types {
		t, err := d.toModel()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// PackageTypesRepository provides methods for package type configuration operations.
type PackageTypesRepository struct {
	collection *mongo.Collection
}

// NewPackageTypesRepository creates a new package types repository.
func NewPackageTypesRepository(db *MongoDB) *PackageTypesRepository {
	return &PackageTypesRepository{
		collection: db.PackageTypes,
	}
}

// GetActive returns the active package type configuration.
func (r *PackageTypesRepository) GetActive(ctx context.Context) (*PackageTypeConfig, error) {
	var config PackageTypeConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active config found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates the current configuration and inserts a new active one.
func (r *PackageTypesRepository) Create(ctx context.Context, types []model.PackageType, createdBy string) (*PackageTypeConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := NewPackageTypeConfig(types, createdBy)
	_, err = r.collection.InsertOne(ctx, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// List returns package type configurations, newest first.
func (r *PackageTypesRepository) List(ctx context.Context, limit int) ([]PackageTypeConfig, error) {
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

	var configs []PackageTypeConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

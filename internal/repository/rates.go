// Package repository provides data access for rate table configurations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// RateConfig represents a versioned rate table configuration document.
// Exactly one configuration is active at a time; older versions are kept
// for history.
type RateConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Rates     model.RateTable        `bson:"rates" json:"rates"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// RatesRepository provides methods for rate configuration operations.
type RatesRepository struct {
	collection *mongo.Collection
}

// NewRatesRepository creates a new rates repository.
func NewRatesRepository(db *MongoDB) *RatesRepository {
	return &RatesRepository{
		collection: db.Rates,
	}
}

// GetActive returns the active rate configuration, or nil when none exists.
func (r *RatesRepository) GetActive(ctx context.Context) (*RateConfig, error) {
	var config RateConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create deactivates any current configuration and inserts a new active one.
func (r *RatesRepository) Create(ctx context.Context, rates model.RateTable, createdBy string) (*RateConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := RateConfig{
		ID:        primitive.NewObjectID(),
		Rates:     rates,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Update replaces the rate table of an existing configuration and bumps its version.
func (r *RatesRepository) Update(ctx context.Context, id primitive.ObjectID, rates model.RateTable, updatedBy string) (*RateConfig, error) {
	var current RateConfig
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"rates":      rates,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config RateConfig
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns rate configurations, newest first.
func (r *RatesRepository) List(ctx context.Context, limit int) ([]RateConfig, error) {
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

	var configs []RateConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// RatesRepositoryInterface defines the interface for rate configuration operations.
type RatesRepositoryInterface interface {
	GetActive(ctx context.Context) (*RateConfig, error)
	Create(ctx context.Context, rates model.RateTable, createdBy string) (*RateConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, rates model.RateTable, updatedBy string) (*RateConfig, error)
	List(ctx context.Context, limit int) ([]RateConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

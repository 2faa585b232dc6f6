package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/domain/model"
)

// RatesRepositoryWithCircuitBreaker wraps RatesRepository with circuit breaker protection.
type RatesRepositoryWithCircuitBreaker struct {
	repo           *RatesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRatesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRatesRepositoryWithCircuitBreaker(repo *RatesRepository, cb *circuitbreaker.CircuitBreaker) *RatesRepositoryWithCircuitBreaker {
	return &RatesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active rate configuration with circuit breaker protection.
// When the circuit is open it returns nil so callers fall back to configured rates.
func (r *RatesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*RateConfig, error) {
	var result *RateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create creates a new rate configuration with circuit breaker protection.
func (r *RatesRepositoryWithCircuitBreaker) Create(ctx context.Context, rates model.RateTable, createdBy string) (*RateConfig, error) {
	var result *RateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, rates, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing rate configuration with circuit breaker protection.
func (r *RatesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, rates model.RateTable, updatedBy string) (*RateConfig, error) {
	var result *RateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, rates, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns rate configurations with circuit breaker protection.
func (r *RatesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]RateConfig, error) {
	var result []RateConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RatesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open the write is silently skipped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open the write is silently skipped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

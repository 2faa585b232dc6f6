//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
	"github.com/guttosm/quote-service/internal/domain/model"
)

func TestRatesRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewRatesRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewRatesRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		config, err := wrappedRepo.Create(ctx, model.DefaultRateTable(), "test")
		require.NoError(t, err)
		assert.NotNil(t, config)

		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("circuit breaker Update", func(t *testing.T) {
		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		rates := active.Rates
		rates.BasePrice = 9
		updatedConfig, err := wrappedRepo.Update(ctx, active.ID, rates, "test-updater")
		require.NoError(t, err)
		assert.Equal(t, active.Version+1, updatedConfig.Version)
	})

	t.Run("circuit breaker List", func(t *testing.T) {
		configs, err := wrappedRepo.List(ctx, 5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(configs), 1)
	})

	t.Run("circuit breaker stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})

	t.Run("circuit breaker GetCircuitBreaker", func(t *testing.T) {
		assert.Equal(t, cb, wrappedRepo.GetCircuitBreaker())
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewLogsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewLogsRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:   "info",
			Message: "Test entry",
		}

		err := wrappedRepo.Create(ctx, entry)
		assert.NoError(t, err)
	})

	t.Run("circuit breaker stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})
}

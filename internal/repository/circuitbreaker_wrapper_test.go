//go:build !integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/circuitbreaker"
)

// openCircuitBreaker returns a circuit breaker forced into the open state.
func openCircuitBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
	})
	_ = cb.Execute(context.Background(), func() error { return assert.AnError })
	require.Equal(t, circuitbreaker.StateOpen, cb.State())
	return cb
}

func TestRatesRepositoryWithCircuitBreaker_OpenCircuitFallsBack(t *testing.T) {
	// With the circuit open, GetActive must not reach the repository and
	// must report "no config" so callers fall back to configured rates.
	wrapped := NewRatesRepositoryWithCircuitBreaker(nil, openCircuitBreaker(t))

	config, err := wrapped.GetActive(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestLogsRepositoryWithCircuitBreaker_OpenCircuitSkipsWrites(t *testing.T) {
	wrapped := NewLogsRepositoryWithCircuitBreaker(nil, openCircuitBreaker(t))
	ctx := context.Background()

	assert.NoError(t, wrapped.Create(ctx, &LogEntryDocument{Level: "info"}))
	assert.NoError(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{Level: "info"}}))
}

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/mocks"
)

func TestAsyncLogger_WritesEntries(t *testing.T) {
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{
		BufferSize:   10,
		NumWorkers:   2,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, al)

	for i := 0; i < 5; i++ {
		ok := al.Log(&model.LogEntry{Level: "info", Message: "request completed"})
		assert.True(t, ok)
	}

	al.Stop()

	enqueued, dropped, written, errors := al.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(5), written)
	assert.Equal(t, int64(0), errors)
	loggingService.AssertNumberOfCalls(t, "CreateLog", 5)
}

func TestAsyncLogger_DropsWhenBufferFull(t *testing.T) {
	loggingService := new(mocks.MockLoggingService)
	blocked := make(chan struct{})
	loggingService.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-blocked }).
		Return(nil)

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{
		BufferSize:   1,
		NumWorkers:   1,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, al)

	// Fill the worker and the buffer, then overflow.
	dropped := 0
	for i := 0; i < 10; i++ {
		if !al.Log(&model.LogEntry{Level: "info", Message: "entry"}) {
			dropped++
		}
	}
	assert.Greater(t, dropped, 0)

	_, droppedCount, _, _ := al.Stats()
	assert.Equal(t, int64(dropped), droppedCount)

	close(blocked)
	al.Stop()
}

func TestAsyncLogger_CountsWriteErrors(t *testing.T) {
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLog", mock.Anything, mock.Anything).Return(assert.AnError)

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{
		BufferSize:   10,
		NumWorkers:   1,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, al)

	al.Log(&model.LogEntry{Level: "error", Message: "failed"})
	al.Stop()

	_, _, written, errors := al.Stats()
	assert.Equal(t, int64(0), written)
	assert.Equal(t, int64(1), errors)
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))
}

func TestAsyncLogger_GlobalLifecycle(t *testing.T) {
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(loggingService, DefaultAsyncLoggerConfig())
	require.NotNil(t, GetAsyncLogger())

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())

	// Stopping again is a no-op
	StopAsyncLogger()
}

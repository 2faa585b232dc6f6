package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/mocks"
	"github.com/guttosm/quote-service/internal/repository"
	"github.com/guttosm/quote-service/internal/service"
)

func TestLoggingService_CreateLog(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	var captured *repository.LogEntryDocument
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.LogEntryDocument)
		}).
		Return(nil)

	entry := &model.LogEntry{
		Level:      "info",
		Message:    "quote calculated",
		RequestID:  "req-1",
		ActionType: "quote",
	}

	err := svc.CreateLog(context.Background(), entry)
	require.NoError(t, err)
	require.NotNil(t, captured)

	// Missing ID and timestamp are filled in before persisting
	assert.False(t, captured.ID.IsZero())
	assert.False(t, captured.Timestamp.IsZero())
	assert.Equal(t, "info", captured.Level)
	assert.Equal(t, "quote calculated", captured.Message)
	assert.Equal(t, "req-1", captured.RequestID)
	assert.Equal(t, "quote", captured.ActionType)
}

func TestLoggingService_CreateLog_PreservesExistingID(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	id := primitive.NewObjectID()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var captured *repository.LogEntryDocument
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*repository.LogEntryDocument)
		}).
		Return(nil)

	err := svc.CreateLog(context.Background(), &model.LogEntry{ID: id, Timestamp: ts, Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, id, captured.ID)
	assert.Equal(t, ts, captured.Timestamp)
}

func TestLoggingService_CreateLogs(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
		return len(docs) == 2
	})).Return(nil)

	err := svc.CreateLogs(context.Background(), []*model.LogEntry{
		{Level: "info", Message: "first"},
		{Level: "error", Message: "second"},
	})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLoggingService_CreateLogs_EmptySliceSkipsRepository(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	err := svc.CreateLogs(context.Background(), nil)
	assert.NoError(t, err)
	repo.AssertNotCalled(t, "CreateMany")
}

func TestLoggingService_QueryLogs(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	docs := []*repository.LogEntryDocument{
		{ID: primitive.NewObjectID(), Level: "info", Message: "one", StatusCode: 200},
		{ID: primitive.NewObjectID(), Level: "error", Message: "two", StatusCode: 500},
	}

	repo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.Level == "info" && opts.Limit == 10
	})).Return(docs, nil)

	entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{Level: "info", Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Message)
	assert.Equal(t, 500, entries[1].StatusCode)
}

func TestLoggingService_QueryLogs_RepositoryError(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	repo.On("Query", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	entries, err := svc.QueryLogs(context.Background(), model.LogQueryOptions{})
	assert.Error(t, err)
	assert.Nil(t, entries)
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	svc := service.NewLoggingService(repo)

	repo.On("Count", mock.Anything, mock.Anything).Return(int64(42), nil)

	count, err := svc.CountLogs(context.Background(), model.LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

type MockRatesRepositoryInterface struct {
	mock.Mock
}

func (m *MockRatesRepositoryInterface) GetActive(ctx context.Context) (*repository.RateConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateConfig), args.Error(1)
}

func (m *MockRatesRepositoryInterface) Create(ctx context.Context, rates model.RateTable, createdBy string) (*repository.RateConfig, error) {
	args := m.Called(ctx, rates, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateConfig), args.Error(1)
}

func (m *MockRatesRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, rates model.RateTable, updatedBy string) (*repository.RateConfig, error) {
	args := m.Called(ctx, id, rates, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateConfig), args.Error(1)
}

func (m *MockRatesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.RateConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RateConfig), args.Error(1)
}

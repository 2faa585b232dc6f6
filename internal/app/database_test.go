//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/mocks"
	"github.com/guttosm/quote-service/internal/repository"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false}, model.DefaultRateTable())
	assert.Nil(t, components)
}

func TestInitializeDefaultRates(t *testing.T) {
	tests := []struct {
		name      string
		defaults  model.RateTable
		setupMock func(*mocks.MockRatesRepositoryInterface)
		wantError bool
	}{
		{
			name:     "no active config creates default",
			defaults: model.DefaultRateTable(),
			setupMock: func(m *mocks.MockRatesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				config := &repository.RateConfig{
					ID:     primitive.NewObjectID(),
					Rates:  model.DefaultRateTable(),
					Active: true,
				}
				m.On("Create", mock.Anything, model.DefaultRateTable(), "system").Return(config, nil).Once()
			},
		},
		{
			name:     "active config exists skips creation",
			defaults: model.DefaultRateTable(),
			setupMock: func(m *mocks.MockRatesRepositoryInterface) {
				activeConfig := &repository.RateConfig{
					ID:     primitive.NewObjectID(),
					Rates:  model.DefaultRateTable(),
					Active: true,
				}
				m.On("GetActive", mock.Anything).Return(activeConfig, nil).Once()
			},
		},
		{
			name:     "invalid defaults fall back to built-in rates",
			defaults: model.RateTable{},
			setupMock: func(m *mocks.MockRatesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				config := &repository.RateConfig{
					ID:     primitive.NewObjectID(),
					Rates:  model.DefaultRateTable(),
					Active: true,
				}
				m.On("Create", mock.Anything, model.DefaultRateTable(), "system").Return(config, nil).Once()
			},
		},
		{
			name:     "get active error",
			defaults: model.DefaultRateTable(),
			setupMock: func(m *mocks.MockRatesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name:     "create error",
			defaults: model.DefaultRateTable(),
			setupMock: func(m *mocks.MockRatesRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				m.On("Create", mock.Anything, mock.Anything, "system").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockRatesRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := initializeDefaultRates(mockRepo, tt.defaults)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// RatesService provides rate table configuration operations.
type RatesService interface {
	GetActive(ctx context.Context) (*repository.RateConfig, error)
	Create(ctx context.Context, rates model.RateTable, createdBy string) (*repository.RateConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, rates model.RateTable, updatedBy string) (*repository.RateConfig, error)
	List(ctx context.Context, limit int) ([]repository.RateConfig, error)
}

// RatesServiceImpl implements RatesService.
type RatesServiceImpl struct {
	ratesRepo repository.RatesRepositoryInterface
}

// NewRatesService creates a new rates service.
func NewRatesService(ratesRepo repository.RatesRepositoryInterface) RatesService {
	if ratesRepo == nil {
		return &RatesServiceImpl{}
	}
	return &RatesServiceImpl{
		ratesRepo: ratesRepo,
	}
}

func (s *RatesServiceImpl) GetActive(ctx context.Context) (*repository.RateConfig, error) {
	if s.ratesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ratesRepo.GetActive(ctx)
}

func (s *RatesServiceImpl) Create(ctx context.Context, rates model.RateTable, createdBy string) (*repository.RateConfig, error) {
	if s.ratesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return s.ratesRepo.Create(ctx, rates, createdBy)
}

func (s *RatesServiceImpl) Update(ctx context.Context, id primitive.ObjectID, rates model.RateTable, updatedBy string) (*repository.RateConfig, error) {
	if s.ratesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return s.ratesRepo.Update(ctx, id, rates, updatedBy)
}

func (s *RatesServiceImpl) List(ctx context.Context, limit int) ([]repository.RateConfig, error) {
	if s.ratesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ratesRepo.List(ctx, limit)
}

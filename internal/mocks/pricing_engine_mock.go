// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/quote-service/internal/domain/model"
)

type MockPricingEngine struct {
	mock.Mock
}

func (m *MockPricingEngine) Quote(pkg model.Package) (model.Quote, error) {
	args := m.Called(pkg)
	return args.Get(0).(model.Quote), args.Error(1)
}

func (m *MockPricingEngine) QuoteWithRates(pkg model.Package, rates model.RateTable) (model.Quote, error) {
	args := m.Called(pkg, rates)
	return args.Get(0).(model.Quote), args.Error(1)
}

func (m *MockPricingEngine) InvalidateCache() {
	m.Called()
}

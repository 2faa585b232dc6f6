// Package app provides service initialization.
package app

import (
	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Engine service.PricingEngine
}

// InitializeServices initializes business logic services.
func InitializeServices(pricing config.PricingConfig, cacheCfg config.CacheConfig) *ServiceComponents {
	opts := []service.Option{
		service.WithRates(pricing.RateTable()),
	}

	if cacheCfg.Size > 0 {
		opts = append(opts, service.WithCache(cacheCfg.Size, cacheCfg.TTL))
	}

	engine := service.NewPricingService(opts...)

	return &ServiceComponents{
		Engine: engine,
	}
}

// Package app provides router configuration.
package app

import (
	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/http"
	"github.com/guttosm/quote-service/internal/repository"
	"github.com/guttosm/quote-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	engine service.PricingEngine,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var ratesRepo repository.RatesRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		ratesRepo = dbComponents.RatesRepo
		loggingService = dbComponents.LoggingService
	}

	// Initialize rates service
	var ratesService service.RatesService
	if ratesRepo != nil {
		ratesService = service.NewRatesService(ratesRepo)
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.RatesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_rates", dbComponents.RatesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		RequestTimeout: cfg.Server.RequestTimeout,
		LoggingService: loggingService,
		RatesService:   ratesService,
		Engine:         engine,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

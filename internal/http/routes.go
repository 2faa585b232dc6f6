package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-service/internal/service"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// QuoteRoutes handles quote-related route registration.
type QuoteRoutes struct {
	handler      *Handler
	ratesHandler *RatesHandler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(engine service.PricingEngine, ratesService service.RatesService) *QuoteRoutes {
	handler := NewHandler(engine, ratesService)

	var ratesHandler *RatesHandler
	if ratesService != nil {
		ratesHandler = NewRatesHandler(ratesService, engine, handler)
	}

	return &QuoteRoutes{
		handler:      handler,
		ratesHandler: ratesHandler,
	}
}

// RegisterRoutes registers quote routes to the given router group.
func (r *QuoteRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate", r.handler.CalculateQuote)

	if r.ratesHandler != nil {
		rg.GET("/rates", r.ratesHandler.GetActiveRates)
		rg.PUT("/rates", r.ratesHandler.UpdateRates)
		rg.GET("/rates/history", r.ratesHandler.ListRates)
	}
}

// GetHandler returns the underlying quote handler.
func (r *QuoteRoutes) GetHandler() *Handler {
	return r.handler
}

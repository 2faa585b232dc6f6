package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/i18n"
	"github.com/guttosm/quote-service/internal/metrics"
	"github.com/guttosm/quote-service/internal/middleware"
	"github.com/guttosm/quote-service/internal/service"
)

// ratesCache provides thread-safe caching of the active rate table.
type ratesCache struct {
	rates     atomic.Value // holds *model.RateTable
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newRatesCache creates a new rate table cache with the given TTL.
func newRatesCache(ttl time.Duration) *ratesCache {
	c := &ratesCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached rate table if valid, or nil if cache is expired/empty.
func (c *ratesCache) get() *model.RateTable {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if rates := c.rates.Load(); rates != nil {
				if r, ok := rates.(*model.RateTable); ok {
					return r
				}
			}
		}
	}
	return nil
}

// set stores a rate table in the cache with TTL.
func (c *ratesCache) set(rates *model.RateTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.rates.Store(rates)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *ratesCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for quote calculation routes.
type Handler struct {
	engine       service.PricingEngine
	ratesService service.RatesService
	ratesCache   *ratesCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithRatesCacheTTL sets the TTL for rate table caching.
func WithRatesCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.ratesCache = newRatesCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(engine service.PricingEngine, ratesService service.RatesService, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:       engine,
		ratesService: ratesService,
		ratesCache:   newRatesCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getRates retrieves the active rate table from cache or database.
// Returns nil when no runtime configuration exists; the engine then uses
// its bound rates.
func (h *Handler) getRates(ctx context.Context) *model.RateTable {
	// Check cache first
	if rates := h.ratesCache.get(); rates != nil {
		return rates
	}

	// Cache miss - fetch from database
	if h.ratesService == nil {
		return nil
	}

	// Use a timeout for database fetch
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.ratesService.GetActive(ctx)
	if err != nil || config == nil {
		return nil
	}

	// Cache the result
	rates := config.Rates
	h.ratesCache.set(&rates)
	return &rates
}

// InvalidateRatesCache invalidates the rate table cache.
// Call this when the active rate table is updated.
func (h *Handler) InvalidateRatesCache() {
	h.ratesCache.invalidate()
}

// CalculateQuote handles POST /api/calculate requests.
//
// @Summary      Calculate a shipping quote
// @Description  Calculates the shipping price for a package from its dimensions, weight, destination and service level. The chargeable weight is the larger of the actual weight and the volumetric weight (volume divided by the volumetric divisor). The response includes handling alerts and an estimated delivery window.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateQuoteRequest true "Package information"
// @Success      200 {object} dto.SuccessResponse "Successful calculation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found - resource not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable"
// @Failure      504 {object} dto.ErrorResponse "Gateway timeout"
// @Router       /api/calculate [post]
func (h *Handler) CalculateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordQuoteCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordQuoteCalculation(0, "validation_error")
		if verr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	pkg := req.ToPackage()

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "calculate", "Quote calculation requested", map[string]interface{}{
				"weight_kg":   pkg.WeightKg,
				"destination": string(pkg.Destination),
				"is_express":  pkg.Express,
			})
		}
	}

	start := time.Now()
	var quote model.Quote
	var err error

	// Use the active rate table from the database when one exists,
	// otherwise fall back to the engine's bound rates.
	if rates := h.getRates(c.Request.Context()); rates != nil {
		quote, err = h.engine.QuoteWithRates(pkg, *rates)
	} else {
		quote, err = h.engine.Quote(pkg)
	}

	duration := time.Since(start)

	if err != nil {
		metrics.RecordQuoteCalculation(duration, "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	for _, alert := range quote.Alerts {
		metrics.RecordQuoteAlert(service.AlertType(alert))
	}

	metrics.RecordQuoteCalculation(duration, "success")
	builder.SuccessOK(quote)
}

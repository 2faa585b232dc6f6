package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/i18n"
	"github.com/guttosm/quote-service/internal/middleware"
	"github.com/guttosm/quote-service/internal/service"
)

// RatesHandler provides HTTP handlers for rate table routes.
type RatesHandler struct {
	ratesService service.RatesService
	engine       service.PricingEngine
	quoteHandler *Handler
}

// NewRatesHandler creates a new RatesHandler instance.
func NewRatesHandler(ratesService service.RatesService, engine service.PricingEngine, quoteHandler *Handler) *RatesHandler {
	return &RatesHandler{
		ratesService: ratesService,
		engine:       engine,
		quoteHandler: quoteHandler,
	}
}

// GetActiveRates handles GET /api/rates requests.
//
// @Summary      Get active rate table
// @Description  Returns the currently active rate table configuration
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active rate table"
// @Failure      404 {object} dto.ErrorResponse "No active rate table found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rates [get]
func (h *RatesHandler) GetActiveRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.ratesService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"rates":      config.Rates,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateRates handles PUT /api/rates requests.
//
// @Summary      Update rate table
// @Description  Activates a new rate table configuration. The previous table is kept in history. Quote caches are invalidated so new calculations use the new rates.
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateRatesRequest true "Rate table configuration"
// @Success      200 {object} dto.SuccessResponse "Updated rate table"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rates [put]
func (h *RatesHandler) UpdateRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Rates.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationRates, err)
		return
	}

	config, err := h.ratesService.Create(c.Request.Context(), req.Rates, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// Cached quotes and the cached rate table are both stale now.
	if h.engine != nil {
		h.engine.InvalidateCache()
	}
	if h.quoteHandler != nil {
		h.quoteHandler.InvalidateRatesCache()
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "update_rates", "Rate table configuration updated", map[string]interface{}{
				"version":    config.Version,
				"base_price": config.Rates.BasePrice,
				"currency":   config.Rates.Currency,
			})
		}
	}

	builder.SuccessOK(map[string]interface{}{
		"rates":      config.Rates,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListRates handles GET /api/rates/history requests.
//
// @Summary      List rate table history
// @Description  Returns all rate table configurations, most recent first
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Rate table history"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rates/history [get]
func (h *RatesHandler) ListRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := parseInt(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.ratesService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

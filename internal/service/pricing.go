package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/service/cache"
)

// Delivery windows for the four service combinations.
const (
	DeliveryNationalStandard      = "5-7 business days"
	DeliveryNationalExpress       = "2-3 business days"
	DeliveryInternationalStandard = "7-14 business days"
	DeliveryInternationalExpress  = "3-5 business days"
)

// Customs alert text for international shipments.
const customsAlert = "International shipment: customs documentation may be required"

// ErrNonFinitePrice is returned when extreme inputs or coefficients produce a
// price that is NaN or infinite. The engine fails closed rather than return a
// nonsensical price.
var ErrNonFinitePrice = errors.New("computed price is not a finite number")

// PricingEngine defines the interface for shipping quote operations.
type PricingEngine interface {
	Quote(pkg model.Package) (model.Quote, error)
	QuoteWithRates(pkg model.Package, rates model.RateTable) (model.Quote, error)
	// InvalidateCache clears the quote cache (useful when rates change)
	InvalidateCache()
}

// Option configures a PricingService.
type Option func(*PricingService)

// PricingService implements PricingEngine as a pure dimensional-weight
// calculation: the chargeable weight is the larger of the actual weight and
// the volume-derived equivalent weight. Identical inputs always produce
// identical outputs; the optional cache only short-circuits the arithmetic.
type PricingService struct {
	rates model.RateTable
	cache cache.Cache
}

// NewPricingService creates a new PricingService with the given options.
func NewPricingService(opts ...Option) *PricingService {
	s := &PricingService{
		rates: model.DefaultRateTable(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithRates sets a custom rate table for the engine.
func WithRates(rates model.RateTable) Option {
	return func(s *PricingService) {
		s.rates = rates
	}
}

// WithCache enables quote caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PricingService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PricingService) {
		s.cache = c
	}
}

// Rates returns the rate table the engine was built with.
func (s *PricingService) Rates() model.RateTable {
	return s.rates
}

// Quote prices the given package using the engine's bound rate table.
func (s *PricingService) Quote(pkg model.Package) (model.Quote, error) {
	if s.cache != nil {
		if quote, ok := s.cache.Get(quoteKey(pkg)); ok {
			return quote, nil
		}
	}

	quote, err := quoteCore(pkg, s.rates)
	if err != nil {
		return model.Quote{}, err
	}

	if s.cache != nil {
		s.cache.Set(quoteKey(pkg), quote)
	}

	return quote, nil
}

// QuoteWithRates prices the package with an explicit rate table, bypassing
// the cache. Used when rates come from a runtime source such as the rates
// configuration store.
func (s *PricingService) QuoteWithRates(pkg model.Package, rates model.RateTable) (model.Quote, error) {
	return quoteCore(pkg, rates)
}

// InvalidateCache clears the quote cache.
func (s *PricingService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}

// quoteCore runs the full pricing pipeline: volume, chargeable weight, base
// price, destination and express multipliers, rounding, alerts, and delivery
// window. Callers guarantee strictly positive dimensions and weight.
func quoteCore(pkg model.Package, rates model.RateTable) (model.Quote, error) {
	volume := pkg.Dimensions.VolumeCm3()

	volumetricWeight := volume / rates.VolumetricDivisorCm3Kg
	chargeableWeight := math.Max(pkg.WeightKg, volumetricWeight)

	price := rates.BasePrice + rates.PricePerKg*chargeableWeight
	if pkg.Destination == model.DestinationInternational {
		price *= rates.InternationalMultiplier
	}
	if pkg.Express {
		price *= rates.ExpressMultiplier
	}

	price = roundToCents(price)
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return model.Quote{}, ErrNonFinitePrice
	}

	return model.Quote{
		TotalPrice:        price,
		Currency:          rates.Currency,
		Alerts:            buildAlerts(pkg, volume, rates),
		EstimatedDelivery: deliveryEstimate(pkg.Destination, pkg.Express),
		PackageSummary: model.PackageSummary{
			Dimensions: pkg.Dimensions,
			WeightKg:   pkg.WeightKg,
		},
	}, nil
}

// roundToCents rounds half away from zero to 2 decimal places.
// Prices are non-negative, so this behaves as round-half-up.
func roundToCents(price float64) float64 {
	return math.Round(price*100) / 100
}

// buildAlerts evaluates the advisory rules in fixed order: heavy, oversized,
// bulky, customs. Each rule contributes zero or one alert; the returned slice
// is never nil.
func buildAlerts(pkg model.Package, volume float64, rates model.RateTable) []string {
	alerts := make([]string, 0, 4)

	if pkg.WeightKg > rates.HeavyWeightKg {
		alerts = append(alerts, fmt.Sprintf("Heavy package (%gkg): special handling may be required", pkg.WeightKg))
	}

	if maxDim := pkg.Dimensions.MaxCm(); maxDim > rates.OversizedCm {
		alerts = append(alerts, fmt.Sprintf("Oversized dimension (%gcm): check transport limits", maxDim))
	}

	if volume > rates.BulkyVolumeCm3 {
		alerts = append(alerts, fmt.Sprintf("Bulky package (%.0fcm³): may require extra space", volume))
	}

	if pkg.Destination == model.DestinationInternational {
		alerts = append(alerts, customsAlert)
	}

	return alerts
}

// AlertType maps an alert message to its stable category name, suitable for
// use as a metric label.
func AlertType(alert string) string {
	switch {
	case strings.HasPrefix(alert, "Heavy package"):
		return "heavy"
	case strings.HasPrefix(alert, "Oversized dimension"):
		return "oversized"
	case strings.HasPrefix(alert, "Bulky package"):
		return "bulky"
	case alert == customsAlert:
		return "customs"
	default:
		return "other"
	}
}

// deliveryEstimate maps the (destination, express) combination to its window.
// The destination enum is closed, so the four cases are exhaustive.
func deliveryEstimate(dest model.Destination, express bool) string {
	if dest == model.DestinationInternational {
		if express {
			return DeliveryInternationalExpress
		}
		return DeliveryInternationalStandard
	}
	if express {
		return DeliveryNationalExpress
	}
	return DeliveryNationalStandard
}

// quoteKey builds the cache key from the full engine input. %g keeps the key
// stable for any float the binding layer can produce.
func quoteKey(pkg model.Package) string {
	return fmt.Sprintf("%g|%g|%g|%g|%s|%t",
		pkg.Dimensions.LengthCm,
		pkg.Dimensions.WidthCm,
		pkg.Dimensions.HeightCm,
		pkg.WeightKg,
		pkg.Destination,
		pkg.Express,
	)
}

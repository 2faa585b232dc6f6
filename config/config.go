// Package config provides configuration management for the quote service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Cache    CacheConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// PricingConfig holds pricing coefficient overrides.
// Each field defaults to the engine's built-in rate table; environment
// variables override individual coefficients without a database.
type PricingConfig struct {
	BasePrice               float64
	PricePerKg              float64
	VolumetricDivisorCm3Kg  float64
	ExpressMultiplier       float64
	InternationalMultiplier float64
	HeavyWeightKg           float64
	OversizedCm             float64
	BulkyVolumeCm3          float64
	Currency                string
}

// RateTable converts the pricing configuration into a rate table.
func (p PricingConfig) RateTable() model.RateTable {
	return model.RateTable{
		BasePrice:               p.BasePrice,
		PricePerKg:              p.PricePerKg,
		VolumetricDivisorCm3Kg:  p.VolumetricDivisorCm3Kg,
		ExpressMultiplier:       p.ExpressMultiplier,
		InternationalMultiplier: p.InternationalMultiplier,
		HeavyWeightKg:           p.HeavyWeightKg,
		OversizedCm:             p.OversizedCm,
		BulkyVolumeCm3:          p.BulkyVolumeCm3,
		Currency:                p.Currency,
	}
}

// CacheConfig holds quote cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Pricing: PricingConfig{
			BasePrice:               getEnvFloat("PRICING_BASE_PRICE", model.DefaultBasePrice),
			PricePerKg:              getEnvFloat("PRICING_PRICE_PER_KG", model.DefaultPricePerKg),
			VolumetricDivisorCm3Kg:  getEnvFloat("PRICING_VOLUMETRIC_DIVISOR", model.DefaultVolumetricDivisorCm3Kg),
			ExpressMultiplier:       getEnvFloat("PRICING_EXPRESS_MULTIPLIER", model.DefaultExpressMultiplier),
			InternationalMultiplier: getEnvFloat("PRICING_INTERNATIONAL_MULTIPLIER", model.DefaultInternationalMultiplier),
			HeavyWeightKg:           getEnvFloat("PRICING_HEAVY_WEIGHT_KG", model.DefaultHeavyWeightKg),
			OversizedCm:             getEnvFloat("PRICING_OVERSIZED_CM", model.DefaultOversizedCm),
			BulkyVolumeCm3:          getEnvFloat("PRICING_BULKY_VOLUME_CM3", model.DefaultBulkyVolumeCm3),
			Currency:                getEnv("PRICING_CURRENCY", model.DefaultCurrency),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "quote_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

package model

import (
	"errors"
	"fmt"
)

// Default rate coefficients and alert thresholds. These are business
// configuration, not algorithm: deployments override them via environment
// variables or the rates endpoint.
const (
	DefaultBasePrice               = 5.0
	DefaultPricePerKg              = 2.0
	DefaultVolumetricDivisorCm3Kg  = 5000.0
	DefaultExpressMultiplier       = 1.5
	DefaultInternationalMultiplier = 2.0
	DefaultHeavyWeightKg           = 20.0
	DefaultOversizedCm             = 100.0
	DefaultBulkyVolumeCm3          = 50000.0
	DefaultCurrency                = "EUR"
)

// RateTable holds every coefficient and threshold the pricing engine uses.
// Keeping them in one explicit structure lets tests override thresholds
// without touching the pricing logic.
//
// @Description Pricing coefficients and alert thresholds
type RateTable struct {
	// BasePrice is the flat charge applied to every shipment
	BasePrice float64 `json:"base_price" bson:"base_price" example:"5.0"`
	// PricePerKg is the rate applied to the chargeable weight
	PricePerKg float64 `json:"price_per_kg" bson:"price_per_kg" example:"2.0"`
	// VolumetricDivisorCm3Kg converts volume to a volumetric weight (cm3 per kg)
	VolumetricDivisorCm3Kg float64 `json:"volumetric_divisor_cm3_kg" bson:"volumetric_divisor_cm3_kg" example:"5000"`
	// ExpressMultiplier is applied when express service is requested
	ExpressMultiplier float64 `json:"express_multiplier" bson:"express_multiplier" example:"1.5"`
	// InternationalMultiplier is applied to international shipments
	InternationalMultiplier float64 `json:"international_multiplier" bson:"international_multiplier" example:"2.0"`
	// HeavyWeightKg is the weight above which the heavy-package alert fires
	HeavyWeightKg float64 `json:"heavy_weight_kg" bson:"heavy_weight_kg" example:"20"`
	// OversizedCm is the single-dimension length above which the oversized alert fires
	OversizedCm float64 `json:"oversized_cm" bson:"oversized_cm" example:"100"`
	// BulkyVolumeCm3 is the volume above which the bulky-package alert fires
	BulkyVolumeCm3 float64 `json:"bulky_volume_cm3" bson:"bulky_volume_cm3" example:"50000"`
	// Currency is the ISO code all prices are quoted in
	Currency string `json:"currency" bson:"currency" example:"EUR"`
} // @name RateTable

// DefaultRateTable returns the built-in rate table.
func DefaultRateTable() RateTable {
	return RateTable{
		BasePrice:               DefaultBasePrice,
		PricePerKg:              DefaultPricePerKg,
		VolumetricDivisorCm3Kg:  DefaultVolumetricDivisorCm3Kg,
		ExpressMultiplier:       DefaultExpressMultiplier,
		InternationalMultiplier: DefaultInternationalMultiplier,
		HeavyWeightKg:           DefaultHeavyWeightKg,
		OversizedCm:             DefaultOversizedCm,
		BulkyVolumeCm3:          DefaultBulkyVolumeCm3,
		Currency:                DefaultCurrency,
	}
}

// ErrInvalidRateTable is returned when a rate table fails validation.
var ErrInvalidRateTable = errors.New("invalid rate table")

// Validate checks that every coefficient keeps pricing monotonic and finite.
// Multipliers below 1.0 would make express or international shipments cheaper
// than their baseline, so they are rejected.
func (r RateTable) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"base_price", r.BasePrice >= 0},
		{"price_per_kg", r.PricePerKg > 0},
		{"volumetric_divisor_cm3_kg", r.VolumetricDivisorCm3Kg > 0},
		{"express_multiplier", r.ExpressMultiplier >= 1},
		{"international_multiplier", r.InternationalMultiplier >= 1},
		{"heavy_weight_kg", r.HeavyWeightKg > 0},
		{"oversized_cm", r.OversizedCm > 0},
		{"bulky_volume_cm3", r.BulkyVolumeCm3 > 0},
		{"currency", r.Currency != ""},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidRateTable, c.name)
		}
	}
	return nil
}

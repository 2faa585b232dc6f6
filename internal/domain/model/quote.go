// Package model defines the core domain entities for the quote service.
package model

import "fmt"

// Destination identifies where a package is shipped relative to the origin country.
type Destination string

const (
	// DestinationNational is a shipment within the origin country.
	DestinationNational Destination = "national"
	// DestinationInternational is a cross-border shipment.
	DestinationInternational Destination = "international"
)

// ParseDestination converts a raw string into a Destination.
// Returns an error for anything other than the two known values.
func ParseDestination(s string) (Destination, error) {
	switch Destination(s) {
	case DestinationNational:
		return DestinationNational, nil
	case DestinationInternational:
		return DestinationInternational, nil
	default:
		return "", fmt.Errorf("unknown destination %q", s)
	}
}

// Dimensions holds the package dimensions in centimeters.
//
// @Description Package dimensions in centimeters
// @Example {"length_cm": 30, "width_cm": 20, "height_cm": 15}
type Dimensions struct {
	LengthCm float64 `json:"length_cm" example:"30"`
	WidthCm  float64 `json:"width_cm" example:"20"`
	HeightCm float64 `json:"height_cm" example:"15"`
}

// VolumeCm3 returns the package volume in cubic centimeters.
func (d Dimensions) VolumeCm3() float64 {
	return d.LengthCm * d.WidthCm * d.HeightCm
}

// MaxCm returns the largest single dimension in centimeters.
func (d Dimensions) MaxCm() float64 {
	m := d.LengthCm
	if d.WidthCm > m {
		m = d.WidthCm
	}
	if d.HeightCm > m {
		m = d.HeightCm
	}
	return m
}

// Package is the pricing engine input: a parcel with its service options.
// All dimension and weight fields must be strictly positive; the HTTP layer
// rejects anything else before the engine is invoked.
type Package struct {
	Dimensions  Dimensions
	WeightKg    float64
	Destination Destination
	Express     bool
}

// PackageSummary echoes the priced package back to the caller for display.
//
// @Description Echo of the quoted package dimensions and weight
type PackageSummary struct {
	Dimensions Dimensions `json:"dimensions"`
	WeightKg   float64    `json:"weight_kg" example:"25"`
}

// Quote represents the complete result of a shipping price calculation.
// It implements JSON serialization for direct use in HTTP responses.
//
// @Description Shipping quote with price, advisory alerts, and delivery estimate
// @Example {"total_price": 72.0, "currency": "EUR", "alerts": [], "estimated_delivery": "5-7 business days"}
type Quote struct {
	// TotalPrice is the rounded shipping price in Currency units
	TotalPrice float64 `json:"total_price" example:"72.00"`
	// Currency is the ISO code the price is denominated in
	Currency string `json:"currency" example:"EUR"`
	// Alerts lists advisory handling conditions, in evaluation order. Never nil.
	Alerts []string `json:"alerts"`
	// EstimatedDelivery is a textual delivery window
	EstimatedDelivery string `json:"estimated_delivery" example:"5-7 business days"`
	// PackageSummary echoes the quoted package
	PackageSummary PackageSummary `json:"package_summary"`
}

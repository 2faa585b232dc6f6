// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/quote-service/internal/domain/model"
)

// CalculateQuoteRequest represents the JSON request body for the quote endpoint.
//
// Dimensions and weight must be strictly positive, and destination must be
// one of "national" or "international". The pricing engine is never invoked
// when any of these checks fails.
//
// @Description Request to calculate a shipping quote for a package
// @Example {"length_cm": 30, "width_cm": 20, "height_cm": 15, "weight_kg": 25, "is_express": true, "destination": "international"}
type CalculateQuoteRequest struct {
	// LengthCm is the package length in centimeters. Must be greater than 0.
	LengthCm float64 `json:"length_cm" binding:"required,gt=0" example:"30" minimum:"0"`
	// WidthCm is the package width in centimeters. Must be greater than 0.
	WidthCm float64 `json:"width_cm" binding:"required,gt=0" example:"20" minimum:"0"`
	// HeightCm is the package height in centimeters. Must be greater than 0.
	HeightCm float64 `json:"height_cm" binding:"required,gt=0" example:"15" minimum:"0"`
	// WeightKg is the package weight in kilograms. Must be greater than 0.
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0" example:"25" minimum:"0"`
	// IsExpress requests express service at a price premium.
	IsExpress bool `json:"is_express" example:"true"`
	// Destination is either "national" or "international".
	Destination string `json:"destination" binding:"required,oneof=national international" example:"international" enums:"national,international"`
} // @name CalculateQuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidLength is returned when length_cm is not strictly positive.
	ErrInvalidLength = &ValidationError{Field: "length_cm", Message: "must be a positive number"}
	// ErrInvalidWidth is returned when width_cm is not strictly positive.
	ErrInvalidWidth = &ValidationError{Field: "width_cm", Message: "must be a positive number"}
	// ErrInvalidHeight is returned when height_cm is not strictly positive.
	ErrInvalidHeight = &ValidationError{Field: "height_cm", Message: "must be a positive number"}
	// ErrInvalidWeight is returned when weight_kg is not strictly positive.
	ErrInvalidWeight = &ValidationError{Field: "weight_kg", Message: "must be a positive number"}
	// ErrInvalidDestination is returned when destination is not a known value.
	ErrInvalidDestination = &ValidationError{Field: "destination", Message: `must be "national" or "international"`}
)

// Validate performs custom validation on the request.
// Returns a *ValidationError for the first failing field, nil otherwise.
// Binding tags cover the same ground for JSON input; Validate also protects
// callers that construct the struct directly.
func (r *CalculateQuoteRequest) Validate() error {
	switch {
	case !(r.LengthCm > 0):
		return ErrInvalidLength
	case !(r.WidthCm > 0):
		return ErrInvalidWidth
	case !(r.HeightCm > 0):
		return ErrInvalidHeight
	case !(r.WeightKg > 0):
		return ErrInvalidWeight
	}
	if _, err := model.ParseDestination(r.Destination); err != nil {
		return ErrInvalidDestination
	}
	return nil
}

// ToPackage converts a validated request into the engine input.
func (r *CalculateQuoteRequest) ToPackage() model.Package {
	dest, _ := model.ParseDestination(r.Destination)
	return model.Package{
		Dimensions: model.Dimensions{
			LengthCm: r.LengthCm,
			WidthCm:  r.WidthCm,
			HeightCm: r.HeightCm,
		},
		WeightKg:    r.WeightKg,
		Destination: dest,
		Express:     r.IsExpress,
	}
}

// UpdateRatesRequest represents the JSON request body for updating the rate table.
type UpdateRatesRequest struct {
	// Rates is the full rate table to activate.
	Rates model.RateTable `json:"rates" binding:"required"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateRatesRequest

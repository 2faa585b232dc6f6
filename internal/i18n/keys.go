// Package i18n provides internationalization support for the quote service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationPackage indicates invalid package fields (dimensions or weight).
	ErrKeyValidationPackage = "error.validation.package"
	// ErrKeyValidationDestination indicates an unrecognized destination value.
	ErrKeyValidationDestination = "error.validation.destination"
	// ErrKeyValidationRates indicates an invalid rate table.
	ErrKeyValidationRates = "error.validation.rates"
	// ErrKeyRatesUnavailable indicates the rates store is not configured or reachable.
	ErrKeyRatesUnavailable = "error.rates_unavailable"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyQuoteCalculated indicates a successful quote calculation.
	SuccessKeyQuoteCalculated = "success.quote_calculated"
)

// Package i18n provides internationalization support for the quote service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.not_found":              "Not found",
			"error.conflict":               "Conflict",
			"error.validation.package":     "Dimensions and weight must be positive numbers",
			"error.validation.destination": `Destination must be "national" or "international"`,
			"error.validation.rates":       "Rate table is invalid",
			"error.rates_unavailable":      "Rates store is not available",
			"error.timeout":                "Request timeout",

			// Success messages
			"success.quote_calculated": "Shipping quote calculated successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":        "Requisição inválida",
			"error.invalid_request_body":   "Corpo da requisição inválido",
			"error.internal_error":         "Ocorreu um erro inesperado",
			"error.not_found":              "Não encontrado",
			"error.conflict":               "Conflito",
			"error.validation.package":     "Dimensões e peso devem ser números positivos",
			"error.validation.destination": `Destino deve ser "national" ou "international"`,
			"error.validation.rates":       "Tabela de tarifas inválida",
			"error.rates_unavailable":      "Armazenamento de tarifas indisponível",
			"error.timeout":                "Tempo limite da requisição excedido",

			// Success messages
			"success.quote_calculated": "Cotação de frete calculada com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":        "Ongeldig verzoek",
			"error.invalid_request_body":   "Ongeldige aanvraag body",
			"error.internal_error":         "Er is een onverwachte fout opgetreden",
			"error.not_found":              "Niet gevonden",
			"error.conflict":               "Conflict",
			"error.validation.package":     "Afmetingen en gewicht moeten positieve getallen zijn",
			"error.validation.destination": `Bestemming moet "national" of "international" zijn`,
			"error.validation.rates":       "Tarieftabel is ongeldig",
			"error.rates_unavailable":      "Tarievenopslag is niet beschikbaar",
			"error.timeout":                "Time-out van verzoek",

			// Success messages
			"success.quote_calculated": "Verzendofferte succesvol berekend",
		},
	}
}

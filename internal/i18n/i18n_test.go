package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTranslate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english error message",
			key:      ErrKeyInvalidRequestBody,
			locale:   "en",
			expected: "Invalid request body",
		},
		{
			name:     "portuguese error message",
			key:      ErrKeyInvalidRequestBody,
			locale:   "pt",
			expected: "Corpo da requisição inválido",
		},
		{
			name:     "dutch error message",
			key:      ErrKeyNotFound,
			locale:   "nl",
			expected: "Niet gevonden",
		},
		{
			name:     "empty locale falls back to english",
			key:      ErrKeyInternalError,
			locale:   "",
			expected: "An unexpected error occurred",
		},
		{
			name:     "unknown locale falls back to english",
			key:      ErrKeyInternalError,
			locale:   "fr",
			expected: "An unexpected error occurred",
		},
		{
			name:     "unknown key returns key",
			key:      "error.does_not_exist",
			locale:   "en",
			expected: "error.does_not_exist",
		},
		{
			name:     "rates validation message",
			key:      ErrKeyValidationRates,
			locale:   "en",
			expected: "Rate table is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{"no header defaults to en", "", "en"},
		{"simple english", "en", "en"},
		{"english with region", "en-US,en;q=0.9", "en"},
		{"portuguese with region", "pt-BR,pt;q=0.9,en;q=0.8", "pt"},
		{"dutch", "nl", "nl"},
		{"unsupported language defaults to en", "fr-FR,fr;q=0.9", "en"},
		{"uppercase language", "PT", "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestGetTranslator_Singleton(t *testing.T) {
	first := GetTranslator()
	second := GetTranslator()
	assert.Same(t, first, second)
}

// TestAllLocalesCoverAllKeys ensures no locale is missing a translation.
func TestAllLocalesCoverAllKeys(t *testing.T) {
	messages := getDefaultMessages()
	english := messages[DefaultLocale]

	for locale, localeMessages := range messages {
		for key := range english {
			_, ok := localeMessages[key]
			assert.True(t, ok, "locale %s missing key %s", locale, key)
		}
	}
}

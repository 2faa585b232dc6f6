package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/quote-service/internal/service"
)

func newTestRouterConfig() RouterConfig {
	cfg := DefaultRouterConfig()
	cfg.Engine = service.NewPricingService()
	return cfg
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	router := NewRouter(NewHealthHandler(), newTestRouterConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"liveness", http.MethodGet, "/healthz", http.StatusOK},
		{"readiness", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_RequestIDExposed(t *testing.T) {
	router := NewRouter(NewHealthHandler(), newTestRouterConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	cfg := newTestRouterConfig()
	cfg.CORSOrigins = []string{"https://example.com"}
	router := NewRouter(NewHealthHandler(), cfg)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/calculate", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_SwaggerWithBasicAuth(t *testing.T) {
	cfg := newTestRouterConfig()
	cfg.SwaggerUser = "admin"
	cfg.SwaggerPass = "secret"
	router := NewRouter(NewHealthHandler(), cfg)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDefaultRouterConfig(t *testing.T) {
	cfg := DefaultRouterConfig()
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

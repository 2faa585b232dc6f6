// Package main is the entry point for the quote-service application.
//
// @title           Quote Service API
// @version         1.0.0
// @description     API for calculating shipping quotes from package dimensions, weight and destination.
//
//	The service prices packages by chargeable weight (the larger of actual and volumetric weight),
//	attaches handling alerts, and estimates a delivery window.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/quote-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Quotes
// @tag.description Shipping quote calculation operations
//
// @tag.name        Rates
// @tag.description Rate table configuration endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/quote-service/docs" // swagger docs

	"github.com/guttosm/quote-service/config"
	"github.com/guttosm/quote-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

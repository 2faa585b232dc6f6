//go:build ignore

// This script seeds an initial rate table configuration into MongoDB.
// Run with: go run scripts/seed_rates.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/repository"
)

func main() {
	fmt.Println("=== Quote Service Rates Seeder ===")
	fmt.Println()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "quote_service"
	}

	db, err := repository.NewMongoDB(uri, dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer func() {
		_ = db.Close(ctx)
	}()

	repo := repository.NewRatesRepository(db)

	active, err := repo.GetActive(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking active rates: %v\n", err)
		os.Exit(1)
	}
	if active != nil {
		fmt.Printf("Active rate config already exists (version %d), nothing to do.\n", active.Version)
		return
	}

	rates := model.DefaultRateTable()
	if err := rates.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Default rate table is invalid: %v\n", err)
		os.Exit(1)
	}

	config, err := repo.Create(ctx, rates, "seed-script")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rate config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded rate config %s (version %d)\n", config.ID.Hex(), config.Version)
	fmt.Printf("  base price:        %.2f %s\n", rates.BasePrice, rates.Currency)
	fmt.Printf("  price per kg:      %.2f\n", rates.PricePerKg)
	fmt.Printf("  volumetric divisor: %.0f cm3/kg\n", rates.VolumetricDivisorCm3Kg)
}

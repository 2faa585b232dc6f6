package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRateTable(t *testing.T) {
	rates := DefaultRateTable()

	assert.NoError(t, rates.Validate())
	assert.Equal(t, 5.0, rates.BasePrice)
	assert.Equal(t, 2.0, rates.PricePerKg)
	assert.Equal(t, 5000.0, rates.VolumetricDivisorCm3Kg)
	assert.Equal(t, "EUR", rates.Currency)
}

func TestRateTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RateTable)
		wantErr bool
	}{
		{
			name:   "default table is valid",
			mutate: func(r *RateTable) {},
		},
		{
			name:   "zero base price is allowed",
			mutate: func(r *RateTable) { r.BasePrice = 0 },
		},
		{
			name:    "negative base price",
			mutate:  func(r *RateTable) { r.BasePrice = -1 },
			wantErr: true,
		},
		{
			name:    "zero price per kg",
			mutate:  func(r *RateTable) { r.PricePerKg = 0 },
			wantErr: true,
		},
		{
			name:    "zero volumetric divisor",
			mutate:  func(r *RateTable) { r.VolumetricDivisorCm3Kg = 0 },
			wantErr: true,
		},
		{
			name:    "express multiplier below one",
			mutate:  func(r *RateTable) { r.ExpressMultiplier = 0.9 },
			wantErr: true,
		},
		{
			name:    "international multiplier below one",
			mutate:  func(r *RateTable) { r.InternationalMultiplier = 0.5 },
			wantErr: true,
		},
		{
			name:   "multiplier exactly one is allowed",
			mutate: func(r *RateTable) { r.ExpressMultiplier = 1; r.InternationalMultiplier = 1 },
		},
		{
			name:    "zero heavy threshold",
			mutate:  func(r *RateTable) { r.HeavyWeightKg = 0 },
			wantErr: true,
		},
		{
			name:    "zero oversized threshold",
			mutate:  func(r *RateTable) { r.OversizedCm = 0 },
			wantErr: true,
		},
		{
			name:    "zero bulky threshold",
			mutate:  func(r *RateTable) { r.BulkyVolumeCm3 = 0 },
			wantErr: true,
		},
		{
			name:    "empty currency",
			mutate:  func(r *RateTable) { r.Currency = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := DefaultRateTable()
			tt.mutate(&rates)

			err := rates.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRateTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/services"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

func TestPriceTransformer_Apply_MultiplierAndAdjustment(t *testing.T) {
	transformer := services.NewPriceTransformer()

	options := []business.PriceOption{
		{
			ID:                 "cargoone:eco",
			ServiceName:        "cargoone_eco",
			CargoCostCents:     1000,
			FuelCostCents:      200,
			AdditionalFeeCents: 50,
			TotalPriceCents:    1250,
		},
	}
	match := business.PricingRuleMatch{
		EffectiveMultiplier:  1.3,
		FixedAdjustmentCents: 100,
		SourceTier:           constants.CountryRuleTier,
	}

	transformed := transformer.Apply(options, match)
	require.Len(t, transformed, 1)

	got := transformed[0]
	// Cargo and fuel are multiplied and rounded; the additional fee is not
	// multiplied; the adjustment lands after multiplication.
	assert.Equal(t, int64(1300), got.CargoCostCents)
	assert.Equal(t, int64(260), got.FuelCostCents)
	assert.Equal(t, int64(50), got.AdditionalFeeCents)
	assert.Equal(t, int64(1710), got.TotalPriceCents)

	// Pre-rule values are retained for audit.
	assert.Equal(t, int64(1000), got.OriginalCargoCostCents)
	assert.Equal(t, int64(200), got.OriginalFuelCostCents)
	assert.Equal(t, int64(1250), got.OriginalTotalCents)
	assert.Equal(t, 1.3, got.AppliedMultiplier)
	assert.Equal(t, int64(100), got.AppliedAdjustmentCents)

	// The input slice is untouched.
	assert.Equal(t, int64(1000), options[0].CargoCostCents)
	assert.Equal(t, int64(1250), options[0].TotalPriceCents)
}

func TestPriceTransformer_Apply_RoundsFractionalCents(t *testing.T) {
	transformer := services.NewPriceTransformer()

	options := []business.PriceOption{
		{CargoCostCents: 999, FuelCostCents: 101},
	}
	match := business.PricingRuleMatch{EffectiveMultiplier: 1.15}

	got := transformer.Apply(options, match)[0]
	assert.Equal(t, int64(1149), got.CargoCostCents) // 1148.85 rounds up
	assert.Equal(t, int64(116), got.FuelCostCents)   // 116.15 rounds down
	assert.Equal(t, int64(1265), got.TotalPriceCents)
}

func TestPriceTransformer_Apply_TotalFlooredAtZero(t *testing.T) {
	transformer := services.NewPriceTransformer()

	options := []business.PriceOption{
		{CargoCostCents: 300, FuelCostCents: 100},
	}
	match := business.PricingRuleMatch{
		EffectiveMultiplier:  1.0,
		FixedAdjustmentCents: -1000,
	}

	got := transformer.Apply(options, match)[0]
	assert.Equal(t, int64(0), got.TotalPriceCents)
	assert.Equal(t, int64(400), got.OriginalTotalCents)
}

func TestPriceTransformer_Apply_PassThroughStillAnnotates(t *testing.T) {
	transformer := services.NewPriceTransformer()

	options := []business.PriceOption{
		{CargoCostCents: 1000, FuelCostCents: 200, AdditionalFeeCents: 50, TotalPriceCents: 1250},
	}
	match := business.PricingRuleMatch{
		EffectiveMultiplier: 1.0,
		SourceTier:          constants.NoRuleTier,
	}

	got := transformer.Apply(options, match)[0]
	assert.Equal(t, int64(1250), got.TotalPriceCents)
	assert.Equal(t, 1.0, got.AppliedMultiplier)
	assert.Equal(t, int64(0), got.AppliedAdjustmentCents)
	assert.Equal(t, int64(1250), got.OriginalTotalCents)
}

func TestPriceTransformer_Apply_EmptyInput(t *testing.T) {
	transformer := services.NewPriceTransformer()

	got := transformer.Apply(nil, business.PricingRuleMatch{EffectiveMultiplier: 1.3})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

package services

import (
	"math"

	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// PriceTransformer applies a resolved pricing rule to carrier options.
// Cargo and fuel costs are multiplied; the additional fee is not. The fixed
// adjustment is added after multiplication and the result is floored at
// zero. Pre-multiplier values are retained on every option for audit.
type PriceTransformer struct{}

// NewPriceTransformer creates a new price transformer
func NewPriceTransformer() *PriceTransformer {
	return &PriceTransformer{}
}

// Apply returns a transformed copy of options. The input slice is not
// mutated. When the match is a pass-through (multiplier 1, adjustment 0)
// the prices are unchanged but the applied-multiplier metadata is still
// annotated for downstream consistency.
func (t *PriceTransformer) Apply(options []business.PriceOption, match business.PricingRuleMatch) []business.PriceOption {
	transformed := make([]business.PriceOption, len(options))

	for i, option := range options {
		option.OriginalCargoCostCents = option.CargoCostCents
		option.OriginalFuelCostCents = option.FuelCostCents
		option.OriginalTotalCents = option.CargoCostCents + option.FuelCostCents + option.AdditionalFeeCents

		option.CargoCostCents = roundCents(float64(option.CargoCostCents) * match.EffectiveMultiplier)
		option.FuelCostCents = roundCents(float64(option.FuelCostCents) * match.EffectiveMultiplier)

		total := option.CargoCostCents + option.FuelCostCents + option.AdditionalFeeCents + match.FixedAdjustmentCents
		if total < 0 {
			total = 0
		}
		option.TotalPriceCents = total

		option.AppliedMultiplier = match.EffectiveMultiplier
		option.AppliedAdjustmentCents = match.FixedAdjustmentCents

		transformed[i] = option
	}

	return transformed
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

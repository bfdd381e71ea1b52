package params

import "github.com/google/uuid"

// QuoteParams contains parameters for a combined quote request.
// Dimensions are centimeters, weight is kilograms.
type QuoteParams struct {
	LengthCm           float64
	WidthCm            float64
	HeightCm           float64
	WeightKg           float64
	DestinationCountry string
	BaseMultiplier     float64
	SkipRules          bool
	UserID             *uuid.UUID
}

// ProviderQuoteRequest is the normalized request handed to every provider
// adapter. DestinationCountry is always a 2-letter ISO code by this point.
type ProviderQuoteRequest struct {
	LengthCm           float64
	WidthCm            float64
	HeightCm           float64
	WeightKg           float64
	ChargeableWeightKg float64
	DestinationCountry string
}

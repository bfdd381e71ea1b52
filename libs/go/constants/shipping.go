package constants

// Shipping and customs domain constants
const (
	// VolumetricDivisor converts cm3 of package volume to kilograms.
	// chargeable weight = max(actual weight, L*W*H / divisor)
	VolumetricDivisor = 5000.0

	// MaxQuoteOptions caps how many priced options a customer is shown
	MaxQuoteOptions = 4

	// DutySurchargeRate is the flat tariff surcharge applied on top of
	// every duty estimate, whether or not a base rate was found
	DutySurchargeRate = 0.15

	// HSCodeDigits is the granularity duty-schedule lookups are keyed at
	HSCodeDigits = 8
)

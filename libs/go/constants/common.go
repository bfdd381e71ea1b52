package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Carrier pricing providers
	CargoOneProvider = "cargoone"
	ShipExProvider   = "shipex"
	PostNovaProvider = "postnova"

	// Pricing rule tiers
	CountryRuleTier = "country"
	WeightRuleTier  = "weight"
	BaseRuleTier    = "base"
	NoRuleTier      = "none"

	// Currencies
	USDCurrency = "USD"
)

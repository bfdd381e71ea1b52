package business

import "github.com/google/uuid"

// ServiceClass is the canonical classification a provider adapter assigns to
// each priced service at normalization time. Downstream selection logic keys
// off this tag instead of sniffing display-name strings.
type ServiceClass string

const (
	ServiceClassEco      ServiceClass = "ECO"
	ServiceClassExpress  ServiceClass = "EXPRESS"
	ServiceClassStandard ServiceClass = "STANDARD"
)

// PriceOption is one carrier service quote, normalized to the common model.
// All monetary amounts are integer minor-currency units (cents).
type PriceOption struct {
	ID               string       `json:"id"`
	ServiceName      string       `json:"service_name"`
	DisplayName      string       `json:"display_name"`
	CargoCostCents   int64        `json:"cargo_cost_cents"`
	FuelCostCents    int64        `json:"fuel_cost_cents"`
	AdditionalFeeCents int64      `json:"additional_fee_cents"`
	TotalPriceCents  int64        `json:"total_price_cents"`
	DeliveryEstimate string       `json:"delivery_estimate"`
	ServiceClass     ServiceClass `json:"service_class"`
	OriginProvider   string       `json:"origin_provider"`

	// Pre-multiplier values retained for audit and admin display.
	// Populated by the price transformer, zero until then.
	OriginalCargoCostCents int64   `json:"original_cargo_cost_cents"`
	OriginalFuelCostCents  int64   `json:"original_fuel_cost_cents"`
	OriginalTotalCents     int64   `json:"original_total_cents"`
	AppliedMultiplier      float64 `json:"applied_multiplier"`
	AppliedAdjustmentCents int64   `json:"applied_adjustment_cents"`
}

// PricingRuleMatch is the result of rule resolution for one quote request.
type PricingRuleMatch struct {
	EffectiveMultiplier  float64    `json:"effective_multiplier"`
	FixedAdjustmentCents int64      `json:"fixed_adjustment_cents"`
	SourceTier           string     `json:"source_tier"` // country | weight | base | none
	RuleID               *uuid.UUID `json:"rule_id,omitempty"`
}

// PricingRule is one user pricing rule as stored. A rule carries either a
// multiplier (replaces the base multiplier outright) or a fixed/per-kg
// adjustment (added after multiplication) - never both.
type PricingRule struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	CountryCode          *string   `json:"country_code,omitempty"`
	MinWeightKg          *float64  `json:"min_weight_kg,omitempty"`
	MaxWeightKg          *float64  `json:"max_weight_kg,omitempty"` // nil = unbounded
	Multiplier           *float64  `json:"multiplier,omitempty"`
	FixedAdjustmentCents *int64    `json:"fixed_adjustment_cents,omitempty"`
	PerKgAdjustmentCents *int64    `json:"per_kg_adjustment_cents,omitempty"`
}

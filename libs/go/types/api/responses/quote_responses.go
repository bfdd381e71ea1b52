package responses

import "github.com/swiftline/swiftline-api/libs/go/types/business"

// CombinedQuoteResult is the final option set returned to the caller.
// Options are sorted ascending by total price; the first option is the
// best one and its ID is echoed in BestOptionID.
type CombinedQuoteResult struct {
	Success      bool                   `json:"success"`
	Options      []business.PriceOption `json:"options"`
	BestOptionID string                 `json:"best_option_id"`
	Currency     string                 `json:"currency"`

	ChargeableWeightKg float64                   `json:"chargeable_weight_kg"`
	AppliedRule        business.PricingRuleMatch `json:"applied_rule"`
}

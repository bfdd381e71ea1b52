package business

// DutyEstimate is the result of a customs duty lookup. Amounts are in
// major-currency units, matching the duty-schedule reference data.
type DutyEstimate struct {
	CommodityCode  string `json:"commodity_code"`
	NormalizedCode string `json:"normalized_code"`

	// BaseRatePercent is nil when the code was not found in reference data.
	// A "Free" schedule entry is a found 0% rate, not an unknown one.
	BaseRatePercent *float64 `json:"base_rate_percent"`
	BaseDutyAmount  float64  `json:"base_duty_amount"`

	SurchargeRatePercent float64 `json:"surcharge_rate_percent"`
	SurchargeAmount      float64 `json:"surcharge_amount"`
	TotalDutyAmount      float64 `json:"total_duty_amount"`

	RateDescription string `json:"rate_description,omitempty"`
}

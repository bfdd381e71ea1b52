package params

// DutyEstimateParams contains parameters for a customs duty estimate.
// CustomsValue is a major-currency amount (not cents), matching the
// duty-schedule reference-data convention.
type DutyEstimateParams struct {
	CommodityCode string
	CustomsValue  float64
}

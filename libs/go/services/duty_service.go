package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// DutyService computes customs-duty estimates from the duty-rate reference
// schedule. The schedule is external data behind db.Querier; the service
// holds no state of its own and is safe for concurrent use.
type DutyService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewDutyService creates a new duty service
func NewDutyService(queries db.Querier) *DutyService {
	return &DutyService{
		queries: queries,
		logger:  logger.Log,
	}
}

// Estimate resolves the base duty percentage for the commodity code and
// adds the flat tariff surcharge. An unmapped code is not an error: the
// base rate stays nil, the base amount is zero and the surcharge is still
// charged, so the total is never silently zero.
func (s *DutyService) Estimate(ctx context.Context, params params.DutyEstimateParams) (*business.DutyEstimate, error) {
	if params.CustomsValue < 0 {
		return nil, fmt.Errorf("customs value must not be negative, got %v", params.CustomsValue)
	}

	normalized := NormalizeCommodityCode(params.CommodityCode)

	estimate := &business.DutyEstimate{
		CommodityCode:        params.CommodityCode,
		NormalizedCode:       normalized,
		SurchargeRatePercent: constants.DutySurchargeRate * 100,
	}

	if ratePercent, description, found := s.lookupRate(ctx, normalized); found {
		estimate.BaseRatePercent = &ratePercent
		estimate.BaseDutyAmount = roundMoney(params.CustomsValue * ratePercent / 100)
		estimate.RateDescription = description
	}

	estimate.SurchargeAmount = roundMoney(params.CustomsValue * constants.DutySurchargeRate)
	estimate.TotalDutyAmount = roundMoney(estimate.BaseDutyAmount + estimate.SurchargeAmount)

	return estimate, nil
}

// lookupRate tries the undotted and dotted representations of the code
// against the reference schedule. Any store failure is treated the same as
// "not found" so one unreachable lookup never fails a whole estimate.
func (s *DutyService) lookupRate(ctx context.Context, normalized string) (float64, string, bool) {
	if normalized == "" {
		return 0, "", false
	}

	for _, candidate := range []string{normalized, dottedCode(normalized)} {
		if candidate == "" {
			continue
		}

		rate, err := s.queries.GetDutyRate(ctx, candidate)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				s.logger.Warn("Duty rate lookup failed",
					zap.String("hs_code", candidate),
					zap.Error(err))
			}
			continue
		}

		percent, ok := parseRateText(rate.RateText)
		if !ok {
			s.logger.Warn("Duty rate has unparsable rate text",
				zap.String("hs_code", candidate),
				zap.String("rate_text", rate.RateText))
			continue
		}

		return percent, rate.Description.String, true
	}

	return 0, "", false
}

// NormalizeCommodityCode strips non-digits from an HS/commodity code and
// truncates it to the 8-digit granularity duty schedules are keyed at.
func NormalizeCommodityCode(code string) string {
	var digits strings.Builder
	for _, c := range code {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}

	normalized := digits.String()
	if len(normalized) > constants.HSCodeDigits {
		normalized = normalized[:constants.HSCodeDigits]
	}
	return normalized
}

// dottedCode renders an 8-digit code in the 4.2.2 dotted form some schedule
// rows are keyed by, e.g. "85287252" -> "8528.72.52".
func dottedCode(normalized string) string {
	if len(normalized) != constants.HSCodeDigits {
		return ""
	}
	return normalized[:4] + "." + normalized[4:6] + "." + normalized[6:8]
}

// parseRateText converts a schedule rate cell to a percentage. A textual
// "Free" entry is a real 0% rate, not an unknown one.
func parseRateText(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}

	if strings.EqualFold(trimmed, "free") {
		return 0, true
	}

	trimmed = strings.TrimSuffix(trimmed, "%")
	percent, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil || percent < 0 {
		return 0, false
	}
	return percent, true
}

// roundMoney rounds a major-currency amount to cents precision.
func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

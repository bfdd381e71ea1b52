package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/helpers"
	"github.com/swiftline/swiftline-api/libs/go/interfaces"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/api/responses"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// QuoteService orchestrates one combined quote: input validation, rule
// resolution, concurrent provider fan-out, price transformation and final
// selection. It is the single entry point the route layer calls.
type QuoteService struct {
	aggregator  *QuoteAggregator
	rules       *PricingRuleService
	transformer *PriceTransformer
	selector    *ServiceSelector
	audit       *QuoteAuditService
	logger      *zap.Logger
}

// NewQuoteService creates a new quote service. The audit service may be
// nil, in which case no quote logs are recorded.
func NewQuoteService(queries db.Querier, providers []interfaces.QuoteProvider, audit *QuoteAuditService) *QuoteService {
	return &QuoteService{
		aggregator:  NewQuoteAggregator(providers),
		rules:       NewPricingRuleService(queries),
		transformer: NewPriceTransformer(),
		selector:    NewServiceSelector(),
		audit:       audit,
		logger:      logger.Log,
	}
}

// GetCombinedQuote returns the ranked option set for one package. An error
// is returned only for invalid input; "every provider is down" is a valid
// outcome reported as Success=false with an empty option list.
func (s *QuoteService) GetCombinedQuote(ctx context.Context, p params.QuoteParams) (*responses.CombinedQuoteResult, error) {
	if err := helpers.ValidatePackage(p.LengthCm, p.WidthCm, p.HeightCm, p.WeightKg); err != nil {
		return nil, err
	}
	if p.BaseMultiplier <= 0 {
		return nil, fmt.Errorf("base multiplier must be positive, got %v", p.BaseMultiplier)
	}
	country, ok := helpers.NormalizeCountry(p.DestinationCountry)
	if !ok {
		return nil, fmt.Errorf("unrecognized destination country %q", p.DestinationCountry)
	}

	chargeableWeight := helpers.ChargeableWeightKg(p.LengthCm, p.WidthCm, p.HeightCm, p.WeightKg)

	s.logger.Info("Computing combined quote",
		zap.String("destination", country),
		zap.Float64("weight_kg", p.WeightKg),
		zap.Float64("chargeable_weight_kg", chargeableWeight),
		zap.Bool("skip_rules", p.SkipRules))

	match := s.rules.Resolve(ctx, p.UserID, country, chargeableWeight, p.BaseMultiplier, p.SkipRules)

	request := params.ProviderQuoteRequest{
		LengthCm:           p.LengthCm,
		WidthCm:            p.WidthCm,
		HeightCm:           p.HeightCm,
		WeightKg:           p.WeightKg,
		ChargeableWeightKg: chargeableWeight,
		DestinationCountry: country,
	}

	result := &responses.CombinedQuoteResult{
		Options:            []business.PriceOption{},
		Currency:           constants.USDCurrency,
		ChargeableWeightKg: chargeableWeight,
		AppliedRule:        match,
	}

	candidates, available := s.aggregator.Aggregate(ctx, request)
	if available {
		transformed := s.transformer.Apply(candidates, match)
		selected := s.selector.Select(transformed)

		result.Options = selected
		result.Success = len(selected) > 0
		if result.Success {
			result.BestOptionID = selected[0].ID
		}
	}

	s.recordAudit(p, country, chargeableWeight, match, result)

	return result, nil
}

// recordAudit hands the computed quote to the audit sink on its own
// goroutine. The quote response never waits on, or fails with, the sink.
func (s *QuoteService) recordAudit(p params.QuoteParams, country string, chargeableWeight float64, match business.PricingRuleMatch, result *responses.CombinedQuoteResult) {
	if s.audit == nil {
		return
	}

	entry := QuoteAuditEntry{
		UserID:             p.UserID,
		DestinationCountry: country,
		ChargeableWeightKg: chargeableWeight,
		BaseMultiplier:     p.BaseMultiplier,
		AppliedRule:        match,
		Success:            result.Success,
		BestOptionID:       result.BestOptionID,
		Options:            result.Options,
	}

	go s.audit.Record(entry)
}

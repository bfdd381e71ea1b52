package services

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// PricingRuleService resolves which user pricing rule applies to a quote
// request. Resolution is a strict three-tier priority scheme: a country rule
// beats a weight rule beats the caller-supplied base multiplier, and the
// tiers are never combined for the same request.
type PricingRuleService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPricingRuleService creates a new pricing rule service
func NewPricingRuleService(queries db.Querier) *PricingRuleService {
	return &PricingRuleService{
		queries: queries,
		logger:  logger.Log,
	}
}

// Resolve evaluates the rule tiers for one request and returns the match.
// It never fails: a rule-store error is treated as "no rule found" so a
// pricing computation always completes with a well-defined multiplier.
func (s *PricingRuleService) Resolve(ctx context.Context, userID *uuid.UUID, destinationCountry string, chargeableWeightKg float64, baseMultiplier float64, skipRules bool) business.PricingRuleMatch {
	if skipRules {
		// Administrative/internal pricing context: bypass all user rules.
		return business.PricingRuleMatch{
			EffectiveMultiplier: 1.0,
			SourceTier:          constants.NoRuleTier,
		}
	}

	match := business.PricingRuleMatch{
		EffectiveMultiplier: baseMultiplier,
		SourceTier:          constants.BaseRuleTier,
	}

	if userID == nil {
		return match
	}

	// Country tier takes strict precedence. A matching country rule means
	// the weight tier is never evaluated, even if a weight rule would have
	// been cheaper for the customer.
	countryRule, err := s.queries.GetUserCountryRule(ctx, db.GetUserCountryRuleParams{
		UserID:      *userID,
		CountryCode: destinationCountry,
	})
	if err == nil {
		s.applyRule(&match, countryRule, constants.CountryRuleTier, chargeableWeightKg)
		return match
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("Country rule lookup failed, using base multiplier",
			zap.String("user_id", userID.String()),
			zap.String("country", destinationCountry),
			zap.Error(err))
		return match
	}

	weightRule, err := s.queries.GetUserWeightRule(ctx, db.GetUserWeightRuleParams{
		UserID:   *userID,
		WeightKg: chargeableWeightKg,
	})
	if err == nil {
		s.applyRule(&match, weightRule, constants.WeightRuleTier, chargeableWeightKg)
		return match
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("Weight rule lookup failed, using base multiplier",
			zap.String("user_id", userID.String()),
			zap.Float64("chargeable_weight_kg", chargeableWeightKg),
			zap.Error(err))
	}

	return match
}

// applyRule folds one matched rule into the match. A multiplier-type rule
// replaces the base multiplier outright; a fixed or per-kg adjustment rule
// keeps the base multiplier and records a signed adjustment added after
// multiplication.
func (s *PricingRuleService) applyRule(match *business.PricingRuleMatch, rule db.UserPricingRule, tier string, chargeableWeightKg float64) {
	ruleID := rule.ID
	match.RuleID = &ruleID
	match.SourceTier = tier

	switch {
	case rule.Multiplier.Valid:
		match.EffectiveMultiplier = rule.Multiplier.Float64
	case rule.PerKgAdjustmentCents.Valid:
		match.FixedAdjustmentCents = int64(math.Round(float64(rule.PerKgAdjustmentCents.Int64) * chargeableWeightKg))
	case rule.FixedAdjustmentCents.Valid:
		match.FixedAdjustmentCents = rule.FixedAdjustmentCents.Int64
	default:
		s.logger.Warn("Pricing rule matched but carries no multiplier or adjustment",
			zap.String("rule_id", rule.ID.String()),
			zap.String("tier", tier))
	}
}

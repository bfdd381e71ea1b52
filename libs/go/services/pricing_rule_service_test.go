package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/mocks"
	"github.com/swiftline/swiftline-api/libs/go/services"
)

func init() {
	logger.InitLogger("test")
}

func TestPricingRuleService_Resolve_SkipRules(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()
	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, true)

	assert.Equal(t, 1.0, match.EffectiveMultiplier)
	assert.Equal(t, int64(0), match.FixedAdjustmentCents)
	assert.Equal(t, constants.NoRuleTier, match.SourceTier)
	assert.Nil(t, match.RuleID)
}

func TestPricingRuleService_Resolve_NoUser(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	match := service.Resolve(context.Background(), nil, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.45, match.EffectiveMultiplier)
	assert.Equal(t, constants.BaseRuleTier, match.SourceTier)
}

func TestPricingRuleService_Resolve_CountryRuleReplacesMultiplier(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()
	ruleID := uuid.New()

	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), db.GetUserCountryRuleParams{UserID: userID, CountryCode: "DE"}).
		Return(db.UserPricingRule{
			ID:         ruleID,
			UserID:     userID,
			RuleType:   "country",
			Multiplier: pgtype.Float8{Float64: 1.3, Valid: true},
		}, nil)

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.3, match.EffectiveMultiplier)
	assert.Equal(t, int64(0), match.FixedAdjustmentCents)
	assert.Equal(t, constants.CountryRuleTier, match.SourceTier)
	assert.Equal(t, ruleID, *match.RuleID)
}

func TestPricingRuleService_Resolve_CountryRuleShadowsWeightRule(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()

	// A matched country rule ends resolution; the weight tier is never
	// queried even if a weight rule would have been cheaper.
	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{
			ID:         uuid.New(),
			Multiplier: pgtype.Float8{Float64: 1.6, Valid: true},
		}, nil)

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.6, match.EffectiveMultiplier)
	assert.Equal(t, constants.CountryRuleTier, match.SourceTier)
}

func TestPricingRuleService_Resolve_WeightRuleWhenNoCountryRule(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()
	ruleID := uuid.New()

	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		GetUserWeightRule(gomock.Any(), db.GetUserWeightRuleParams{UserID: userID, WeightKg: 2.0}).
		Return(db.UserPricingRule{
			ID:                   ruleID,
			RuleType:             "weight",
			FixedAdjustmentCents: pgtype.Int8{Int64: 250, Valid: true},
		}, nil)

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	// An adjustment rule keeps the base multiplier.
	assert.Equal(t, 1.45, match.EffectiveMultiplier)
	assert.Equal(t, int64(250), match.FixedAdjustmentCents)
	assert.Equal(t, constants.WeightRuleTier, match.SourceTier)
	assert.Equal(t, ruleID, *match.RuleID)
}

func TestPricingRuleService_Resolve_PerKgAdjustmentScalesWithWeight(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()

	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		GetUserWeightRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{
			ID:                   uuid.New(),
			RuleType:             "weight",
			PerKgAdjustmentCents: pgtype.Int8{Int64: -50, Valid: true},
		}, nil)

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.45, match.EffectiveMultiplier)
	assert.Equal(t, int64(-100), match.FixedAdjustmentCents)
	assert.Equal(t, constants.WeightRuleTier, match.SourceTier)
}

func TestPricingRuleService_Resolve_NoRuleMatches(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()

	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		GetUserWeightRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, pgx.ErrNoRows)

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.45, match.EffectiveMultiplier)
	assert.Equal(t, constants.BaseRuleTier, match.SourceTier)
	assert.Nil(t, match.RuleID)
}

func TestPricingRuleService_Resolve_CountryLookupFailureFallsBackToBase(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()

	// A store failure is not ErrNoRows: resolution stops at the base tier
	// rather than guessing at the weight tier with a degraded store.
	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, errors.New("connection reset"))

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.45, match.EffectiveMultiplier)
	assert.Equal(t, constants.BaseRuleTier, match.SourceTier)
}

func TestPricingRuleService_Resolve_WeightLookupFailureFallsBackToBase(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewPricingRuleService(mockQuerier)

	userID := uuid.New()

	mockQuerier.EXPECT().
		GetUserCountryRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, pgx.ErrNoRows)
	mockQuerier.EXPECT().
		GetUserWeightRule(gomock.Any(), gomock.Any()).
		Return(db.UserPricingRule{}, errors.New("connection reset"))

	match := service.Resolve(context.Background(), &userID, "DE", 2.0, 1.45, false)

	assert.Equal(t, 1.45, match.EffectiveMultiplier)
	assert.Equal(t, constants.BaseRuleTier, match.SourceTier)
}

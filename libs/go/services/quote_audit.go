package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/db"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

const auditTimeout = 5 * time.Second

// AuditPublisher publishes an audit payload to an external pipeline.
// Implemented by the SQS client; nil when no queue is configured.
type AuditPublisher interface {
	Publish(ctx context.Context, payload interface{}) error
}

// QuoteAuditEntry is the structured record of one computed quote, written
// for later admin inspection.
type QuoteAuditEntry struct {
	UserID               *uuid.UUID                `json:"user_id,omitempty"`
	DestinationCountry   string                    `json:"destination_country"`
	ChargeableWeightKg   float64                   `json:"chargeable_weight_kg"`
	BaseMultiplier       float64                   `json:"base_multiplier"`
	AppliedRule          business.PricingRuleMatch `json:"applied_rule"`
	Success              bool                      `json:"success"`
	BestOptionID         string                    `json:"best_option_id,omitempty"`
	Options              []business.PriceOption    `json:"options"`
}

// QuoteAuditService records computed quotes fire-and-forget: a failed write
// or publish is logged and never affects the quote returned to the caller.
type QuoteAuditService struct {
	queries   db.Querier
	publisher AuditPublisher
	logger    *zap.Logger
}

// NewQuoteAuditService creates a new quote audit service. Both the query
// layer and the publisher are optional.
func NewQuoteAuditService(queries db.Querier, publisher AuditPublisher) *QuoteAuditService {
	return &QuoteAuditService{
		queries:   queries,
		publisher: publisher,
		logger:    logger.Log,
	}
}

// Record persists the entry and publishes it to the audit queue. Intended
// to run on its own goroutine; it derives its own deadline and never
// returns an error.
func (s *QuoteAuditService) Record(entry QuoteAuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	if s.queries != nil {
		if _, err := s.queries.CreateQuoteLog(ctx, s.toCreateParams(entry)); err != nil {
			s.logger.Warn("Failed to persist quote log", zap.Error(err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, entry); err != nil {
			s.logger.Warn("Failed to publish quote audit event", zap.Error(err))
		}
	}
}

func (s *QuoteAuditService) toCreateParams(entry QuoteAuditEntry) db.CreateQuoteLogParams {
	arg := db.CreateQuoteLogParams{
		DestinationCountry:   entry.DestinationCountry,
		ChargeableWeightKg:   entry.ChargeableWeightKg,
		BaseMultiplier:       entry.BaseMultiplier,
		EffectiveMultiplier:  entry.AppliedRule.EffectiveMultiplier,
		FixedAdjustmentCents: entry.AppliedRule.FixedAdjustmentCents,
		SourceTier:           entry.AppliedRule.SourceTier,
		Success:              entry.Success,
		OptionCount:          int32(len(entry.Options)),
	}

	if entry.UserID != nil {
		arg.UserID = pgtype.UUID{Bytes: *entry.UserID, Valid: true}
	}
	if entry.AppliedRule.RuleID != nil {
		arg.RuleID = pgtype.UUID{Bytes: *entry.AppliedRule.RuleID, Valid: true}
	}
	if entry.BestOptionID != "" {
		arg.BestOptionID = pgtype.Text{String: entry.BestOptionID, Valid: true}
	}

	if options, err := json.Marshal(entry.Options); err == nil {
		arg.Options = options
	} else {
		s.logger.Warn("Failed to marshal quote options for audit", zap.Error(err))
		arg.Options = []byte("[]")
	}

	return arg
}

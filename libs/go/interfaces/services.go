package interfaces

import (
	"context"

	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/api/responses"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// QuoteService computes combined carrier quotes
type QuoteService interface {
	GetCombinedQuote(ctx context.Context, p params.QuoteParams) (*responses.CombinedQuoteResult, error)
}

// DutyService computes customs duty estimates
type DutyService interface {
	Estimate(ctx context.Context, p params.DutyEstimateParams) (*business.DutyEstimate, error)
}

package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/swiftline/swiftline-api/libs/go/interfaces"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// QuoteAggregator fans a quote request out to every configured provider
// concurrently and merges whatever succeeds. A single provider outage never
// blocks quotes from the others; a failed provider contributes nothing and
// is logged, not re-raised.
type QuoteAggregator struct {
	providers []interfaces.QuoteProvider
	logger    *zap.Logger
}

// NewQuoteAggregator creates a new quote aggregator
func NewQuoteAggregator(providers []interfaces.QuoteProvider) *QuoteAggregator {
	return &QuoteAggregator{
		providers: providers,
		logger:    logger.Log,
	}
}

type providerResult struct {
	provider string
	options  []business.PriceOption
	err      error
}

// Aggregate invokes all providers concurrently and waits for every one to
// settle. The second return value is false only when every provider failed;
// an empty-but-true result means the providers answered with no services.
// Synthetic fallback pricing is never fabricated.
func (a *QuoteAggregator) Aggregate(ctx context.Context, req params.ProviderQuoteRequest) ([]business.PriceOption, bool) {
	if len(a.providers) == 0 {
		a.logger.Warn("No quote providers configured")
		return []business.PriceOption{}, false
	}

	results := make(chan providerResult, len(a.providers))
	for _, provider := range a.providers {
		go func(p interfaces.QuoteProvider) {
			options, err := p.FetchQuotes(ctx, req)
			results <- providerResult{provider: p.Name(), options: options, err: err}
		}(provider)
	}

	merged := make([]business.PriceOption, 0)
	succeeded := 0
	for range a.providers {
		result := <-results
		if result.err != nil {
			a.logger.Warn("Quote provider unavailable",
				zap.String("provider", result.provider),
				zap.Error(result.err))
			continue
		}

		succeeded++
		for _, option := range result.options {
			if option.OriginProvider == "" {
				option.OriginProvider = result.provider
			}
			merged = append(merged, option)
		}
	}

	if succeeded == 0 {
		a.logger.Error("All quote providers failed",
			zap.Int("provider_count", len(a.providers)),
			zap.String("destination", req.DestinationCountry))
		return []business.PriceOption{}, false
	}

	return merged, true
}

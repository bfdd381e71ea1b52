package interfaces

import (
	"context"

	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

// QuoteProvider is one carrier-pricing backend. Implementations own their
// token lifecycle, never panic past their boundary, and return options
// already normalized to the common model (amounts in cents, canonical
// service class, ISO-2 destination).
type QuoteProvider interface {
	// Name identifies the provider in logs and option tags.
	Name() string

	// FetchQuotes returns every price option the carrier offers for the
	// package. Any network, auth or payload failure is returned as an
	// error; the caller treats it as "provider unavailable".
	FetchQuotes(ctx context.Context, req params.ProviderQuoteRequest) ([]business.PriceOption, error)
}

package postnova

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	httpClient "github.com/swiftline/swiftline-api/libs/go/client/http"
	"github.com/swiftline/swiftline-api/libs/go/constants"
	"github.com/swiftline/swiftline-api/libs/go/helpers"
	"github.com/swiftline/swiftline-api/libs/go/logger"
	"github.com/swiftline/swiftline-api/libs/go/types/api/params"
	"github.com/swiftline/swiftline-api/libs/go/types/business"
)

const (
	defaultBaseURL = "https://api.postnova.com"
	defaultTimeout = 10 * time.Second
)

// Client manages communication with the PostNova quote API. PostNova
// authenticates with a static API key plus a short-lived session token
// minted from /sessions; the session cache is owned by this client.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
	sessions   *httpClient.TokenCache
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.httpClient = httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithTimeout(defaultTimeout),
		)
	}
}

// WithClock injects a clock into the session cache (used by tests).
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.sessions = httpClient.NewTokenCacheWithClock(now)
	}
}

// NewClient creates a new PostNova API client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		httpClient: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(defaultBaseURL),
			httpClient.WithTimeout(defaultTimeout),
		),
		sessions: httpClient.NewTokenCache(),
		logger:   logger.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name identifies this provider in logs and option tags.
func (c *Client) Name() string {
	return constants.PostNovaProvider
}

// --- PostNova API payloads ---

type sessionResponse struct {
	Token      string `json:"token"`
	ValidUntil string `json:"valid_until"` // RFC3339
}

type quoteRequest struct {
	Destination string             `json:"destination"`
	Parcel      quoteRequestParcel `json:"parcel"`
}

type quoteRequestParcel struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

type offerPricing struct {
	CarriageCents int64 `json:"carriage"`
	FuelCents     int64 `json:"fuel"`
	FeesCents     int64 `json:"fees"`
}

type offerEntry struct {
	Code    string       `json:"code"`
	Label   string       `json:"label"`
	Pricing offerPricing `json:"pricing"`
	Eta     string       `json:"eta"`
	Class   string       `json:"class"` // eco | express | standard
}

type quoteResponse struct {
	Offers []offerEntry `json:"offers"`
}

// FetchQuotes returns PostNova's price options for the package, normalized
// to the common model.
func (c *Client) FetchQuotes(ctx context.Context, req params.ProviderQuoteRequest) ([]business.PriceOption, error) {
	country, ok := helpers.NormalizeCountry(req.DestinationCountry)
	if !ok {
		return nil, fmt.Errorf("unrecognized destination country %q", req.DestinationCountry)
	}

	body := quoteRequest{
		Destination: country,
		Parcel: quoteRequestParcel{
			LengthCm: req.LengthCm,
			WidthCm:  req.WidthCm,
			HeightCm: req.HeightCm,
			WeightKg: req.ChargeableWeightKg,
		},
	}

	var quotes quoteResponse
	if err := c.postQuotes(ctx, body, &quotes); err != nil {
		if httpClient.IsAuthError(err) {
			c.sessions.Invalidate()
			if err = c.postQuotes(ctx, body, &quotes); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	options := make([]business.PriceOption, 0, len(quotes.Offers))
	for _, offer := range quotes.Offers {
		options = append(options, normalizeOffer(offer))
	}
	return options, nil
}

func (c *Client) postQuotes(ctx context.Context, body quoteRequest, out *quoteResponse) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(ctx, "/quotes",
		httpClient.WithJSONBody(body),
		httpClient.WithHeader("X-PN-Api-Key", c.apiKey),
		httpClient.WithHeader("X-PN-Session", session),
	)
	if err != nil {
		return errors.Wrap(err, "postnova quote request failed")
	}

	return httpClient.ProcessJSONResponse(resp, out)
}

func (c *Client) session(ctx context.Context) (string, error) {
	return c.sessions.Get(ctx, func(ctx context.Context) (string, time.Time, error) {
		resp, err := c.httpClient.Post(ctx, "/sessions",
			httpClient.WithHeader("X-PN-Api-Key", c.apiKey),
		)
		if err != nil {
			return "", time.Time{}, errors.Wrap(err, "postnova session request failed")
		}

		var sr sessionResponse
		if err := httpClient.ProcessJSONResponse(resp, &sr); err != nil {
			return "", time.Time{}, errors.Wrap(err, "postnova session rejected")
		}
		if sr.Token == "" {
			return "", time.Time{}, errors.New("postnova session response missing token")
		}

		validUntil, err := time.Parse(time.RFC3339, sr.ValidUntil)
		if err != nil {
			return "", time.Time{}, errors.Wrapf(err, "postnova session has unparsable valid_until %q", sr.ValidUntil)
		}

		c.logger.Debug("Opened PostNova session", zap.Time("valid_until", validUntil))
		return sr.Token, validUntil, nil
	})
}

func normalizeOffer(offer offerEntry) business.PriceOption {
	serviceName := "postnova_" + strings.ToLower(strings.ReplaceAll(offer.Code, "-", "_"))

	return business.PriceOption{
		ID:                 fmt.Sprintf("%s:%s", constants.PostNovaProvider, strings.ToLower(offer.Code)),
		ServiceName:        serviceName,
		DisplayName:        offer.Label,
		CargoCostCents:     offer.Pricing.CarriageCents,
		FuelCostCents:      offer.Pricing.FuelCents,
		AdditionalFeeCents: offer.Pricing.FeesCents,
		TotalPriceCents:    offer.Pricing.CarriageCents + offer.Pricing.FuelCents + offer.Pricing.FeesCents,
		DeliveryEstimate:   offer.Eta,
		ServiceClass:       classifyClass(offer.Class),
		OriginProvider:     constants.PostNovaProvider,
	}
}

func classifyClass(class string) business.ServiceClass {
	switch strings.ToLower(class) {
	case "eco", "economy":
		return business.ServiceClassEco
	case "express":
		return business.ServiceClassExpress
	default:
		return business.ServiceClassStandard
	}
}
